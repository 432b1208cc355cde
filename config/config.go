package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultPath is the config file used when no -config flag is given.
const DefaultPath = "square-crop.json"

// Config holds runtime configuration for the cropper window and output files.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool `json:"debug"`
	DarkMode bool `json:"dark_mode"`

	// Window geometry, in pixels at 192 ppi. Scaled to the display on startup.
	ViewportSize int `json:"viewport_size"`
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Output
	OutputSuffix string `json:"output_suffix"`
	OutputFormat string `json:"output_format"`
	AtomicSave   bool   `json:"atomic_save"`

	// Loading
	AutoOrient          bool `json:"auto_orient"`
	SmartPositionOnOpen bool `json:"smart_position_on_open"`

	// Directory of the last opened image, used as the open dialog start point.
	LastDir string `json:"last_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:               false,
		ViewportSize:        1000,
		WindowWidth:         1026,
		WindowHeight:        1111,
		OutputSuffix:        "~cropped",
		OutputFormat:        "png",
		AtomicSave:          true,
		AutoOrient:          true,
		SmartPositionOnOpen: false,
	}
}

var outputFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "bmp": true, "tif": true, "tiff": true,
}

// ErrInvalidValue marks a field that Validate replaced with a safe value.
var ErrInvalidValue = errors.New("invalid config value")

// Validate clamps/normalizes values to safe ranges. Every field it had to reset
// is reported in the returned error; the config is usable either way.
func (c *Config) Validate() error {
	var errs []error
	reset := func(field string, got any) {
		errs = append(errs, fmt.Errorf("%w: %s=%v", ErrInvalidValue, field, got))
	}
	if c.ViewportSize < 64 {
		reset("viewport_size", c.ViewportSize)
		c.ViewportSize = 1000
	}
	if c.WindowWidth < c.ViewportSize/2 {
		reset("window_width", c.WindowWidth)
		c.WindowWidth = c.ViewportSize + 26
	}
	if c.WindowHeight < c.ViewportSize/2 {
		reset("window_height", c.WindowHeight)
		c.WindowHeight = c.ViewportSize + 111
	}
	c.OutputSuffix = strings.TrimSpace(c.OutputSuffix)
	if c.OutputSuffix == "" || strings.ContainsAny(c.OutputSuffix, `/\`) {
		reset("output_suffix", c.OutputSuffix)
		c.OutputSuffix = "~cropped"
	}
	format := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(c.OutputFormat), "."))
	if !outputFormats[format] {
		reset("output_format", c.OutputFormat)
		format = "png"
	}
	c.OutputFormat = format
	return errors.Join(errs...)
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ParseBoolLoose accepts the usual spellings of yes/no typed into a form field.
func ParseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
