package theme

// ttk theme setup for the cropper window. Colour choices live in ui/theme/palette.

import (
	"github.com/soocke/square-crop-go/ui/theme/palette"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// internal flag for current mode
var darkMode bool

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() palette.Snapshot { return palette.For(darkMode) }

// InitStyles (re)applies the base theme for the current mode.
func InitStyles() {
	_ = ActivateTheme(palette.ThemeName(darkMode))
	App.Configure(Background(CurrentPalette().AppBg))
}

// SetDark switches mode and reapplies styles. Returns the new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	InitStyles()
	return darkMode
}
