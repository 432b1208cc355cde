// Package palette resolves colours and the ttk theme name for light and dark mode.
// It has no Tk dependency so the choices can be checked without a display.
package palette

// Palette colours. The viewport is dark so that the square crop stands out
// against the letterbox area around it.
const (
	ColorBg         = "#f7f9fb" // window background
	ColorViewport   = "#1e293b" // area around the drawn crop
	ColorViewportHi = "#0f172a"
	ColorText       = "#1e293b"
	ColorTextMuted  = "#64748b"
)

// Snapshot represents resolved colors for one mode.
type Snapshot struct {
	AppBg     string
	Viewport  string
	Text      string
	TextMuted string
}

// For returns the colors for dark or light mode.
func For(dark bool) Snapshot {
	if dark {
		return Snapshot{
			AppBg:     "#0f172a",
			Viewport:  ColorViewportHi,
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return Snapshot{
		AppBg:     ColorBg,
		Viewport:  ColorViewport,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// ThemeName is the ttk theme activated for the mode.
func ThemeName(dark bool) string {
	if dark {
		return "azure dark"
	}
	return "azure light"
}
