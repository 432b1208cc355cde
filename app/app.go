package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/square-crop-go/config"
	"github.com/soocke/square-crop-go/ui/presenter"
	"github.com/soocke/square-crop-go/ui/theme"
	"github.com/soocke/square-crop-go/ui/view"
)

// Geometry in the config is authored for a 192 ppi display.
const referencePPI = 192

type app struct {
	container *AppContainer
	logger    *slog.Logger
	initial   string // image opened on startup, if any
}

// NewApp prepares the main window. initialPath, when non-empty, is opened once the window is built.
func NewApp(cfg *config.Config, cfgPath string, logger *slog.Logger, initialPath string) *app {
	scale := displayScale()
	side := scaled(cfg.ViewportSize, scale)
	a := &app{
		container: BuildContainer(cfg, cfgPath, logger, side),
		logger:    logger,
		initial:   initialPath,
	}

	App.WmTitle(presenter.AppName)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", scaled(cfg.WindowWidth, scale), scaled(cfg.WindowHeight, scale)))
	return a
}

// Start builds the widgets and runs the Tk event loop until the window closes.
func (a *app) Start() {
	c := a.container
	theme.SetDark(c.Config.DarkMode)

	crop := c.CropPresenter
	files := c.FilePresenter
	c.RootView.Build(c.Viewport.Square().Dx(), presenter.StartHint, viewHandlers(a, crop, files))
	crop.Render()

	if a.initial != "" {
		_ = files.Open(a.initial)
	}
	App.Wait()
}

func viewHandlers(a *app, crop *presenter.CropPresenter, files *presenter.FilePresenter) view.Handlers {
	return view.Handlers{
		Open: func() {
			_ = files.Open(a.container.RootView.AskOpenPath(a.container.Config.LastDir))
		},
		Save:          func() { _, _ = files.Save() },
		SmartPosition: func() { _ = files.SmartPosition() },
		Preferences:   a.container.Preferences.OpenOrFocus,
		About:         files.About,
		Exit:          a.exitHandler,
		Press:         crop.Press,
		Motion:        crop.Motion,
		Release:       crop.Release,
		Leave:         crop.Leave,
		Resize:        crop.Resize,
	}
}

func (a *app) exitHandler() {
	a.logger.Info("exiting")
	Destroy(App)
}

// displayScale returns the factor between the display's pixel density and referencePPI.
func displayScale() float64 {
	ppi := TkScaling() * 72 // Tk scaling is pixels per point
	if ppi <= 0 {
		return 1
	}
	return ppi / referencePPI
}

func scaled(px int, factor float64) int {
	v := int(float64(px) * factor)
	if v < 1 {
		return 1
	}
	return v
}

func dirOf(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}
