package pixelcam

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("pixelcam: invalid config")
	ErrNotCanvas     = errors.New("pixelcam: entity is not a pixel canvas")
)

// Config sizes a pixel canvas: how many target pixels make up one world
// unit, and how many world units the canvas shows.
type Config struct {
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	Width         float64 `yaml:"display_width"`
	Height        float64 `yaml:"display_height"`
}

// NewConfig returns a Config. It does not validate; see Validate.
func NewConfig(pixelsPerUnit, width, height float64) Config {
	return Config{PixelsPerUnit: pixelsPerUnit, Width: width, Height: height}
}

// Validate reports an error wrapping ErrInvalidConfig unless every field is
// finite and strictly positive.
func (c Config) Validate() error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidConfig, name, v)
		}
		return nil
	}
	if err := check("pixels_per_unit", c.PixelsPerUnit); err != nil {
		return err
	}
	if err := check("display_width", c.Width); err != nil {
		return err
	}
	return check("display_height", c.Height)
}

// TargetSize returns the offscreen target size this config needs.
func (c Config) TargetSize() (w, h int) {
	return TargetExtent(c.PixelsPerUnit, c.Width, c.Height)
}

// ParseConfig decodes and validates a YAML config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pixelcam: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads, decodes and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pixelcam: load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("pixelcam: config %s: %w", path, err)
	}
	return cfg, nil
}
