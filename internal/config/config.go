package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	envDataDir = "MULTIDRILL_DATA_DIR"
	envProfile = "MULTIDRILL_PROFILE"

	// DefaultProfile is used when neither the flag nor the environment
	// names one.
	DefaultProfile = "default"
)

// Config carries the resolved persistence locations. Commands resolve
// it once and pass explicit paths down; nothing below the command layer
// reads the environment.
type Config struct {
	DataDir string
	Profile string
}

// Load reads an optional .env file, then the environment, falling back
// to ~/.multidrill and the default profile.
func Load() (Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	cfg := Config{
		DataDir: os.Getenv(envDataDir),
		Profile: os.Getenv(envProfile),
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".multidrill")
	}
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}

	return cfg, nil
}

// ProfilePath returns the database path for the named profile.
func (c Config) ProfilePath(profile string) string {
	return filepath.Join(c.DataDir, profile+".db")
}
