package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse(nil); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DeckFile != "deck.json" {
		t.Errorf("Expected default deck file, got %q", cfg.DeckFile)
	}
	if cfg.AutosaveDelay != 500*time.Millisecond {
		t.Errorf("Expected default autosave delay 500ms, got %v", cfg.AutosaveDelay)
	}
	if cfg.Quiz.Size != 10 || cfg.Quiz.BaselineCategory != "Basics" {
		t.Errorf("Unexpected quiz defaults: %+v", cfg.Quiz)
	}
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yaml := "deck_file: from-file.json\nquiz:\n  size: 7\n"
	if err := os.WriteFile(configPath, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HANZIDECK_QUIZ__SIZE", "8")
	t.Setenv("HANZIDECK_HISTORY_DB", "ledger.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse([]string{"--data_dir", dir}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath, flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DeckFile != "from-file.json" {
		t.Errorf("Expected file value for deck_file, got %q", cfg.DeckFile)
	}
	if cfg.Quiz.Size != 8 {
		t.Errorf("Expected env to override file for quiz.size, got %d", cfg.Quiz.Size)
	}
	if cfg.HistoryDB != "ledger.db" {
		t.Errorf("Expected env value for history_db, got %q", cfg.HistoryDB)
	}
	if cfg.DataDir != dir {
		t.Errorf("Expected flag value for data_dir, got %q", cfg.DataDir)
	}
	if got := cfg.DeckPath(); got != filepath.Join(dir, "from-file.json") {
		t.Errorf("Unexpected deck path %q", got)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("Expected an error for an explicitly named missing config file")
	}
}
