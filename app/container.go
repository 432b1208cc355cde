package app

import (
	"log/slog"

	"github.com/soocke/square-crop-go/assets"
	"github.com/soocke/square-crop-go/config"
	"github.com/soocke/square-crop-go/domain/crop"
	"github.com/soocke/square-crop-go/ui/model"
	"github.com/soocke/square-crop-go/ui/presenter"
	"github.com/soocke/square-crop-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	CfgPath  string
	Logger   *slog.Logger
	Codec    *crop.Codec
	Images   *model.ImageModel
	Viewport *model.ViewportModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	CropPresenter *presenter.CropPresenter
	FilePresenter *presenter.FilePresenter
	Preferences   view.Preferences
}

// BuildContainer constructs all components. No widgets are created here; see app.Start.
// viewportSide is the display-scaled side of the initial drawing area.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, viewportSide int) *AppContainer {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Codec = codecFromConfig(cfg)
	c.Images = model.NewImageModel(placeholder(c.Codec, logger))
	c.Viewport = model.NewViewportModel(viewportSide)
	// View
	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView
	// Presenters
	c.CropPresenter = presenter.NewCropPresenter(c.Images, c.Viewport, c.UI, logger)
	c.FilePresenter = presenter.NewFilePresenter(c.Images, c.Codec, c.UI, c.CropPresenter, logger)
	c.FilePresenter.SmartOnOpen = cfg.SmartPositionOnOpen
	c.FilePresenter.OnOpened = c.rememberDir
	c.Preferences = view.NewPreferences(cfg, cfgPath, logger, c.applyConfig)
	return c
}

// placeholder prefers the embedded white.bmp and falls back to a generated blank image.
func placeholder(codec *crop.Codec, logger *slog.Logger) *crop.SquareImage {
	img, err := assets.PlaceholderImage()
	if err != nil {
		logger.Warn("embedded placeholder unavailable", "error", err)
		return codec.Placeholder()
	}
	return crop.New(img, "")
}

func codecFromConfig(cfg *config.Config) *crop.Codec {
	return &crop.Codec{
		Suffix:      cfg.OutputSuffix,
		Format:      cfg.OutputFormat,
		AtomicWrite: cfg.AtomicSave,
		AutoOrient:  cfg.AutoOrient,
	}
}

// applyConfig pushes edited preferences into the live codec and presenters.
func (c *AppContainer) applyConfig(cfg *config.Config) {
	*c.Codec = *codecFromConfig(cfg)
	c.FilePresenter.SmartOnOpen = cfg.SmartPositionOnOpen
}

// rememberDir persists the directory of the last opened image.
func (c *AppContainer) rememberDir(path string) {
	dir := dirOf(path)
	if dir == "" || dir == c.Config.LastDir {
		return
	}
	c.Config.LastDir = dir
	if err := c.Config.Save(c.CfgPath); err != nil {
		c.Logger.Warn("config save failed", "path", c.CfgPath, "error", err)
	}
}
