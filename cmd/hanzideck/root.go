package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/conlin/hanzideck/internal/config"
	"github.com/conlin/hanzideck/internal/deck"
	"github.com/conlin/hanzideck/internal/history"
	"github.com/conlin/hanzideck/internal/storage"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hanzideck",
	Short: "A Chinese vocabulary flashcard deck with spaced repetition",
	Long: `Hanzideck keeps a deck of Chinese vocabulary cards in a single JSON
file, schedules reviews with a simple difficulty/streak policy, and quizzes
you with multiple-choice questions built from your own deck.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		addCmd, removeCmd, listCmd, dueCmd, categoriesCmd,
		quizCmd, gradeCmd, favoriteCmd, seenCmd,
		shuffleCmd, resetCmd, restoreDefaultsCmd,
		exportCmd, importCmd,
		backupCmd, backupsCmd, restoreCmd,
		statsCmd, syncCmd,
	)
}

// app wires the deck, its persistence, and configuration for one command
// invocation.
type app struct {
	cfg    config.Config
	store  *storage.Store
	saver  *storage.Autosaver
	deck   *deck.Deck
	logger *slog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile, rootCmd.PersistentFlags())
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	logger := slog.Default()
	store := storage.New(cfg.DeckPath(), logger)
	saver := storage.NewAutosaver(store, cfg.AutosaveDelay)
	d := deck.New(store.LoadOrSeed(deck.Seed),
		deck.WithSaver(saver),
		deck.WithBaselineCategory(cfg.Quiz.BaselineCategory),
		deck.WithLogger(logger),
	)

	return &app{cfg: cfg, store: store, saver: saver, deck: d, logger: logger}, nil
}

// close flushes any pending autosave. Called on every command exit so a
// short-lived process never loses the debounced write.
func (a *app) close() {
	if err := a.saver.Close(); err != nil {
		a.logger.Warn("final save failed", "path", a.store.Path(), "error", err)
	}
}

func (a *app) openHistory() (*history.DB, error) {
	return history.Open(a.cfg.HistoryPath())
}

func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid card id %q: %w", arg, err)
	}
	return id, nil
}
