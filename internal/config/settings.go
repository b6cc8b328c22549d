// internal/config/settings.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"go-bouncing-circles/internal/entity"
)

// Settings are the run parameters shared by every front end.
type Settings struct {
	BodyCount int     `json:"body_count"`
	Width     float32 `json:"width"`
	Height    float32 `json:"height"`
	Seed      uint64  `json:"seed"`    // 0 picks a time based seed
	Workers   int     `json:"workers"` // <= 1 steps on the caller's goroutine
	Sound     bool    `json:"sound"`
	Stroke    bool    `json:"stroke"` // outline bodies (window front ends)
	Debug     bool    `json:"debug"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		BodyCount: DefaultBodyCount,
		Width:     ScreenWidth,
		Height:    ScreenHeight,
		Workers:   1,
	}
}

// LoadSettings reads a JSON settings file on top of the defaults. Fields
// missing from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first setting the simulation cannot run with.
func (s Settings) Validate() error {
	if s.BodyCount <= 0 {
		return fmt.Errorf("%w: body_count must be positive, got %d", entity.ErrInvalidArgument, s.BodyCount)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %gx%g", entity.ErrInvalidArgument, s.Width, s.Height)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", entity.ErrInvalidArgument, s.Workers)
	}
	return nil
}
