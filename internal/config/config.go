// Package config layers application settings from three sources, later ones
// winning: a YAML config file, HANZIDECK_-prefixed environment variables,
// and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Quiz holds session-building settings.
type Quiz struct {
	Size             int    `koanf:"size"`
	BaselineCategory string `koanf:"baseline_category"`
}

// Config is the full application configuration.
type Config struct {
	DataDir       string        `koanf:"data_dir"`
	DeckFile      string        `koanf:"deck_file"`
	AutosaveDelay time.Duration `koanf:"autosave_delay"`
	HistoryDB     string        `koanf:"history_db"`
	Sources       []string      `koanf:"sources"`
	Quiz          Quiz          `koanf:"quiz"`
}

// Default returns the built-in settings. Data lives under ~/.hanzideck.
func Default() Config {
	dataDir := ".hanzideck"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".hanzideck")
	}
	return Config{
		DataDir:       dataDir,
		DeckFile:      "deck.json",
		AutosaveDelay: 500 * time.Millisecond,
		HistoryDB:     "history.db",
		Quiz: Quiz{
			Size:             10,
			BaselineCategory: "Basics",
		},
	}
}

// RegisterFlags declares the config-backed flags. Flag names double as
// koanf keys, so nested settings use dotted names.
func RegisterFlags(f *pflag.FlagSet) {
	def := Default()
	f.String("data_dir", def.DataDir, "directory holding the deck file and history database")
	f.String("deck_file", def.DeckFile, "deck file name inside the data directory")
	f.Duration("autosave_delay", def.AutosaveDelay, "debounce window for automatic saves")
	f.String("history_db", def.HistoryDB, "review-history database name inside the data directory")
	f.StringSlice("sources", nil, "git repositories to sync deck files from")
	f.Int("quiz.size", def.Quiz.Size, "number of questions per quiz session")
	f.String("quiz.baseline_category", def.Quiz.BaselineCategory, "category drawn from when too few cards have been seen")
}

// Load resolves the configuration. configPath may be empty; a missing file
// is only an error when the path was given explicitly.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else {
		defaultPath := filepath.Join(Default().DataDir, "config.yaml")
		if _, err := os.Stat(defaultPath); err == nil {
			if err := k.Load(file.Provider(defaultPath), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("failed to load config file %s: %w", defaultPath, err)
			}
		}
	}

	// HANZIDECK_QUIZ__SIZE=5 -> quiz.size; single underscores stay part of
	// the key (HANZIDECK_DATA_DIR -> data_dir).
	err := k.Load(env.Provider("HANZIDECK_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "HANZIDECK_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment config: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flag config: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// DeckPath is the absolute location of the persisted deck file.
func (c Config) DeckPath() string {
	return filepath.Join(c.DataDir, c.DeckFile)
}

// HistoryPath is the absolute location of the review-history database.
func (c Config) HistoryPath() string {
	return filepath.Join(c.DataDir, c.HistoryDB)
}

// ReposDir is where synced deck repositories are cached.
func (c Config) ReposDir() string {
	return filepath.Join(c.DataDir, "repos")
}
