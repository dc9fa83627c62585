package core

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings a drawing session loads at startup. Everything
// has a usable default so a missing file or key is never fatal.
type Config struct {
	LogLevel LogLevel `toml:"log_level"`
	// CurveResolution is the polyline segment count used when measuring
	// spline lengths.
	CurveResolution int `toml:"curve_resolution"`
	// WeldTolerance is the coordinate quantum below which two points are
	// considered the same point.
	WeldTolerance float64 `toml:"weld_tolerance"`
	// Watch re-reads the settings file on change and regenerates the drawing.
	Watch bool `toml:"watch"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:        LogLevelInfo,
		CurveResolution: 1000,
		WeldTolerance:   1e-9,
	}
}

// LoadConfig reads a TOML settings file. Keys absent from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
