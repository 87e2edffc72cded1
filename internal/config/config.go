// Package config loads the optional focusdeck.yaml. A missing file means
// defaults; a malformed one is a startup error, unlike task data which
// always fails soft.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/focusdeck/internal/store/jsonstore"
)

// DefaultFileName is looked up in the working directory when no -config
// flag is given.
const DefaultFileName = "focusdeck.yaml"

type Config struct {
	// SessionMinutes is the focus-session length. Default 25.
	SessionMinutes int `yaml:"session_minutes"`
	// DataFile is the state-file path. Default focusdeck.json.
	DataFile string `yaml:"data_file"`
	// Theme selects the UI palette: classic or mono.
	Theme string `yaml:"theme"`
}

func Default() Config {
	return Config{
		SessionMinutes: 25,
		DataFile:       jsonstore.DefaultFileName,
		Theme:          "classic",
	}
}

// Load reads the config at path, or the default file when path is empty.
// Absent file → Default(). Unset fields fall back field by field.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SessionMinutes <= 0 {
		return fmt.Errorf("session_minutes must be positive, got %d", c.SessionMinutes)
	}
	if c.DataFile == "" {
		return errors.New("data_file must not be empty")
	}
	return nil
}

// SessionSeconds converts the configured session length for the timer.
func (c Config) SessionSeconds() int { return c.SessionMinutes * 60 }
