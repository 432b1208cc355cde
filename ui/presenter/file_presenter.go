package presenter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/square-crop-go/domain/crop"
	"github.com/soocke/square-crop-go/ui/model"
)

const (
	AppName        = "Square Crop"
	AppVersion     = "0.1.0"
	AppDescription = "A program to crop a picture into a square."

	// StartHint is shown in the status bar until the first image is opened.
	StartHint = "Open an image (Ctrl+O) to get started."

	smartTimeout = 15 * time.Second
)

// ImageStore loads source images and saves crops.
type ImageStore interface {
	Load(path string) (*crop.SquareImage, error)
	Save(img *crop.SquareImage) (string, error)
}

// FileView shows the outcome of file actions.
type FileView interface {
	SetStatus(text string)
	ShowError(title, message string)
	ShowAbout(name, version, description string)
}

// Renderer redraws the crop after the image or its offset changed.
type Renderer interface{ Render() }

// SmartFunc suggests a crop offset for img.
type SmartFunc func(ctx context.Context, img *crop.SquareImage) (int, error)

// FilePresenter handles the open, save, smart position and about actions.
type FilePresenter struct {
	images   *model.ImageModel
	store    ImageStore
	view     FileView
	renderer Renderer
	logger   *slog.Logger

	// Smart suggests an offset; defaults to crop.SmartOffset.
	Smart SmartFunc
	// SmartOnOpen applies Smart to every freshly opened image.
	SmartOnOpen bool
	// OnOpened is called with the path of each successfully opened image.
	OnOpened func(path string)
}

func NewFilePresenter(images *model.ImageModel, store ImageStore, view FileView, renderer Renderer, logger *slog.Logger) *FilePresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilePresenter{images: images, store: store, view: view, renderer: renderer, logger: logger, Smart: crop.SmartOffset}
}

// Open loads path and makes it the current image. An empty path (cancelled dialog) is a no-op.
// On failure the previous image stays in place.
func (p *FilePresenter) Open(path string) error {
	if p == nil || p.store == nil || path == "" {
		return nil
	}
	img, err := p.store.Load(path)
	if err != nil {
		p.logger.Error("open failed", "path", path, "error", err)
		p.view.SetStatus(fmt.Sprintf("Could not open %s", path))
		p.view.ShowError("Open", fmt.Sprintf("Could not open %s:\n%v", path, err))
		return err
	}
	p.images.Replace(img)
	p.logger.Info("image opened", "path", path, "width", img.Width(), "height", img.Height(), "direction", img.Direction().String())
	if p.SmartOnOpen {
		if err := p.applySmart(img); err != nil {
			p.logger.Warn("smart position failed", "path", path, "error", err)
		}
	}
	p.view.SetStatus(fmt.Sprintf("Opened %s", path))
	if p.renderer != nil {
		p.renderer.Render()
	}
	if p.OnOpened != nil {
		p.OnOpened(path)
	}
	return nil
}

// Save writes the current crop next to its source file.
func (p *FilePresenter) Save() (string, error) {
	if p == nil || p.store == nil {
		return "", nil
	}
	out, err := p.store.Save(p.images.Current())
	if err != nil {
		p.logger.Error("save failed", "error", err)
		msg := fmt.Sprintf("Could not save the cropped image:\n%v", err)
		if errors.Is(err, crop.ErrNoSourceFile) {
			msg = "Open an image before saving."
		}
		p.view.SetStatus("Save failed")
		p.view.ShowError("Save", msg)
		return "", err
	}
	p.logger.Info("image saved", "path", out)
	p.view.SetStatus(fmt.Sprintf("Saved %s", out))
	return out, nil
}

// SmartPosition moves the crop window to the most interesting region of the image.
func (p *FilePresenter) SmartPosition() error {
	if p == nil {
		return nil
	}
	img := p.images.Current()
	if img == nil {
		return nil
	}
	if err := p.applySmart(img); err != nil {
		p.logger.Error("smart position failed", "error", err)
		p.view.SetStatus("Smart position failed")
		return err
	}
	p.view.SetStatus(fmt.Sprintf("Smart position: offset %d of %d", img.Offset(), img.MaxOffset()))
	return nil
}

func (p *FilePresenter) applySmart(img *crop.SquareImage) error {
	if p.Smart == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), smartTimeout)
	defer cancel()
	off, err := p.Smart(ctx, img)
	if err != nil {
		return err
	}
	img.SetOffset(off)
	if img.ConsumeDirty() && p.renderer != nil {
		p.renderer.Render()
	}
	return nil
}

// About shows the about box.
func (p *FilePresenter) About() {
	if p == nil || p.view == nil {
		return
	}
	p.view.ShowAbout(AppName, AppVersion, AppDescription)
}
