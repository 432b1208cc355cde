package crop

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Extra decoders picked up by image.Decode (imaging already pulls in bmp and tiff).
	_ "golang.org/x/image/webp"
)

const (
	DefaultSuffix = "~cropped"
	DefaultFormat = "png"

	placeholderSide = 512
)

// Codec loads source images and writes cropped results next to them.
// The zero value is usable and behaves like NewCodec with defaults.
type Codec struct {
	Suffix      string // inserted before the output extension
	Format      string // output format / extension, e.g. "png"
	AtomicWrite bool   // write to a temp file and rename over the target
	AutoOrient  bool   // apply EXIF orientation on load
}

// NewCodec returns a Codec with the default suffix and PNG output.
func NewCodec() *Codec {
	return &Codec{Suffix: DefaultSuffix, Format: DefaultFormat, AtomicWrite: true, AutoOrient: true}
}

func (c *Codec) suffix() string {
	if c == nil || c.Suffix == "" {
		return DefaultSuffix
	}
	return c.Suffix
}

func (c *Codec) format() string {
	if c == nil || c.Format == "" {
		return DefaultFormat
	}
	return strings.ToLower(strings.TrimPrefix(c.Format, "."))
}

// Load decodes the image at path. Errors wrap ErrImageLoad.
func (c *Codec) Load(path string) (*SquareImage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrImageLoad)
	}
	autoOrient := c != nil && c.AutoOrient
	img, err := imaging.Open(path, imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageLoad, path, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", ErrImageLoad, path)
	}
	return New(img, path), nil
}

// Placeholder returns the blank image shown before anything is opened. It has no path.
func (c *Codec) Placeholder() *SquareImage {
	return New(imaging.New(placeholderSide, placeholderSide, color.White), "")
}

// OutputPath derives the save location for a source path: the extension is
// replaced by the suffix plus the output format, e.g. photo.jpg -> photo~cropped.png.
func (c *Codec) OutputPath(path string) (string, error) {
	if path == "" {
		return "", ErrNoSourceFile
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + c.suffix() + "." + c.format(), nil
}

// Save encodes img.Cropped() to OutputPath(img.Path()) and returns that path.
func (c *Codec) Save(img *SquareImage) (string, error) {
	if img == nil {
		return "", ErrNoSourceFile
	}
	out, err := c.OutputPath(img.Path())
	if err != nil {
		return "", err
	}
	format, err := imaging.FormatFromExtension(c.format())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if c == nil || !c.AtomicWrite {
		return out, writeDirect(out, img, format)
	}
	return out, writeAtomic(out, img, format)
}

func writeDirect(out string, img *SquareImage, format imaging.Format) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := imaging.Encode(f, img.Cropped(), format); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// targetMode keeps the permissions of an existing output file; new files get 0644.
func targetMode(out string) os.FileMode {
	if fi, err := os.Stat(out); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return 0o644
}

// writeAtomic leaves either the previous file or the complete new one at out.
func writeAtomic(out string, img *SquareImage, format imaging.Format) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = imaging.Encode(tmp, img.Cropped(), format); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err = tmp.Chmod(targetMode(out)); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
