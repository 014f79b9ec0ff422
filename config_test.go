package pixelcam

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", NewConfig(8, 8, 4), true},
		{"fractional", NewConfig(2.5, 0.1, 100), true},
		{"zero ppu", NewConfig(0, 8, 4), false},
		{"negative width", NewConfig(8, -8, 4), false},
		{"zero height", NewConfig(8, 8, 0), false},
		{"NaN", NewConfig(math.NaN(), 8, 4), false},
		{"Inf", NewConfig(8, math.Inf(1), 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigTargetSize(t *testing.T) {
	w, h := NewConfig(8, 8, 4).TargetSize()
	if w != 66 || h != 34 {
		t.Errorf("TargetSize = (%d, %d), want (66, 34)", w, h)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte("pixels_per_unit: 8\ndisplay_width: 8\ndisplay_height: 4.5\n")
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg != NewConfig(8, 8, 4.5) {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig([]byte("pixels_per_unit: [")); err == nil {
		t.Error("malformed YAML: want error")
	}
	_, err := ParseConfig([]byte("pixels_per_unit: 8\ndisplay_width: 8\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("missing height: err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelcam.yaml")
	if err := os.WriteFile(path, []byte("pixels_per_unit: 4\ndisplay_width: 16\ndisplay_height: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != NewConfig(4, 16, 9) {
		t.Errorf("cfg = %+v", cfg)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
}
