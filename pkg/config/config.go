package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/japaniel/abfrag/pkg/apperr"
)

// Config is the root application configuration.
type Config struct {
	Home     string         `yaml:"-"        env:"HOME"`
	DBPath   string         `yaml:"db_path"  env:"ABFRAG_DB_PATH"`
	Log      LogConfig      `yaml:"log"`
	Exercise ExerciseConfig `yaml:"exercise"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ExerciseConfig holds defaults for the verb exercise.
type ExerciseConfig struct {
	WordAmount int32 `yaml:"word_amount" env:"ABFRAG_WORD_AMOUNT" env-default:"10"`
}

// stateSubdir is where the database lives below $HOME.
const stateSubdir = ".local/state/abfrag"

// Load reads configuration from an optional YAML file and the environment.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML path comes from ABFRAG_CONFIG; without it
// $HOME/.config/abfrag/config.yaml is used when present.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("ABFRAG_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		if home := os.Getenv("HOME"); home != "" {
			path = filepath.Join(home, ".config", "abfrag", "config.yaml")
		}
	}

	if _, err := os.Stat(path); path != "" && err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, apperr.E(apperr.KindSerialization, "config: read "+path, err)
		}
	} else if explicitPath {
		return nil, apperr.E(apperr.KindIO, "config: file "+path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, apperr.E(apperr.KindEnv, "config: read env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperr.E(apperr.KindCommand, "config: validate", err)
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot check on its own.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(strings.TrimSpace(c.Log.Level))) {
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	if !slices.Contains([]string{"text", "json"}, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Exercise.WordAmount <= 0 {
		errs = append(errs, fmt.Errorf("exercise.word_amount must be positive, got %d", c.Exercise.WordAmount))
	}
	return errors.Join(errs...)
}

// ResolveDBPath returns the database file path: DBPath when set, otherwise
// $HOME/.local/state/abfrag/db.sqlite. A missing HOME is an env error.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	if c.Home == "" {
		return "", apperr.Errorf(apperr.KindEnv, "resolve database path", "environment variable HOME is not set")
	}
	return filepath.Join(c.Home, stateSubdir, "db.sqlite"), nil
}
