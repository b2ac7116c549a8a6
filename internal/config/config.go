package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// DataDir holds the progress database and authored puzzle files.
	DataDir         string        `env:"PITCH_PUZZLE_DATA_DIR" envDefault:".pitch-puzzle"`
	TransitionDelay time.Duration `env:"PITCH_PUZZLE_TRANSITION_DELAY" envDefault:"1500ms"`
	MovementDelay   time.Duration `env:"PITCH_PUZZLE_MOVEMENT_DELAY" envDefault:"2s"`
	Verbose         bool          `env:"PITCH_PUZZLE_VERBOSE"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// PuzzleDir is where authored puzzle YAML files are read from.
func (c *Config) PuzzleDir() string {
	return filepath.Join(c.DataDir, "puzzles")
}

// ProgressDB is the path of the progress database.
func (c *Config) ProgressDB() string {
	return filepath.Join(c.DataDir, "progress.db")
}
