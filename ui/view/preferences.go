package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/soocke/square-crop-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preferences is the settings window for output naming and load behaviour.
type Preferences interface {
	OpenOrFocus()
	ApplyChanges() // parses widget text into the config, persists it and notifies
}

type preferences struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	onApply func(*config.Config)
	win     *ToplevelWidget
	widgets map[string]*TextWidget // keyed by internal field id
}

// NewPreferences creates the window manager bound to cfg. onApply runs after a successful save.
func NewPreferences(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) Preferences {
	return &preferences{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *preferences) OpenOrFocus() {
	if v.win != nil {
		Focus(v.win)
		return
	}
	c := v.cfg
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Preferences")
	v.win = win
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.destroy)

	row := 0
	makeRow := func(id, label, value string) {
		lbl := win.Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := win.Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("outputSuffix", "Output Suffix", c.OutputSuffix)
	makeRow("outputFormat", "Output Format (png, jpg, bmp, tiff, gif)", c.OutputFormat)
	makeRow("atomicSave", "Atomic Save (true/false)", fmt.Sprintf("%t", c.AtomicSave))
	makeRow("autoOrient", "Auto Orient (true/false)", fmt.Sprintf("%t", c.AutoOrient))
	makeRow("smartOnOpen", "Smart Position On Open (true/false)", fmt.Sprintf("%t", c.SmartPositionOnOpen))

	apply := win.Button(Txt("Apply [Enter]"), Command(func() { v.ApplyChanges(); v.destroy() }))
	Grid(apply, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.destroy))
	Grid(cancel, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Bind(win, "<Return>", Command(func() { v.ApplyChanges(); v.destroy() }))
	Bind(win, "<Escape>", Command(v.destroy))
}

func (v *preferences) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
	clear(v.widgets)
}

func (v *preferences) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *preferences) ApplyChanges() {
	if v.cfg == nil || len(v.widgets) == 0 {
		return
	}
	cfg := *v.cfg // copy
	if s, ok := v.text("outputSuffix"); ok && s != "" {
		cfg.OutputSuffix = s
	}
	if s, ok := v.text("outputFormat"); ok && s != "" {
		cfg.OutputFormat = s
	}
	assignBool := func(id string, dst *bool) {
		if s, ok := v.text(id); ok {
			if b, ok := config.ParseBoolLoose(s); ok {
				*dst = b
			}
		}
	}
	assignBool("atomicSave", &cfg.AtomicSave)
	assignBool("autoOrient", &cfg.AutoOrient)
	assignBool("smartOnOpen", &cfg.SmartPositionOnOpen)
	if verr := cfg.Validate(); verr != nil {
		v.logger.Warn("preferences normalized", "error", verr)
		MessageBox(Icon("warning"), Title("Preferences"), Msg("Some values were replaced with defaults."), Detail(verr.Error()))
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		v.logger.Error("config save failed", "error", err)
	} else {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}
