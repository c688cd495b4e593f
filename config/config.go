// Package config loads the sandbox settings: window geometry, cell size,
// the UI band height and the frame rate.
//
// Settings are YAML. Keys absent from a file keep their defaults, so an
// empty file (or no file at all) yields Default().
//
//	window_title: Pathfinding
//	window_width: 1600
//	window_height: 1000
//	square_width: 50
//	top_offset: 100
//	fps: 30
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid settings")

// Settings is the complete configuration of one sandbox window.
type Settings struct {
	WindowTitle  string `yaml:"window_title"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	CellWidth    int    `yaml:"square_width"`
	TopOffset    int    `yaml:"top_offset"`
	FPS          int    `yaml:"fps"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		WindowTitle:  "Pathfinding",
		WindowWidth:  1600,
		WindowHeight: 1000,
		CellWidth:    50,
		TopOffset:    100,
		FPS:          30,
	}
}

// Parse overlays YAML data onto Default and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads and parses the file at path. An empty path or a missing file
// yields Default.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every field and that the geometry yields a non-empty grid.
func (s Settings) Validate() error {
	switch {
	case s.WindowWidth <= 0 || s.WindowHeight <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, s.WindowWidth, s.WindowHeight)
	case s.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, s.FPS)
	}
	if _, _, err := s.Geometry().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Geometry converts the settings into grid geometry.
func (s Settings) Geometry() grid.Geometry {
	return grid.Geometry{
		CellWidth:      s.CellWidth,
		TopOffset:      s.TopOffset,
		ViewportWidth:  float64(s.WindowWidth),
		ViewportHeight: float64(s.WindowHeight),
	}
}

// Marshal renders the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
