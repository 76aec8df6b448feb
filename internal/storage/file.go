// Package storage persists the card collection as a single JSON document.
// The write path is crash-safe (temp file + rename) and the routine save
// path is debounced so bursts of mutations coalesce into one disk write.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/conlin/hanzideck/internal/domain"
)

// Store reads and writes the deck file at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a store for the deck file at path.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the location of the deck file.
func (s *Store) Path() string {
	return s.path
}

// DecodeCards reads a JSON card array and normalizes every record so that
// fields absent from older files take their documented defaults.
func DecodeCards(r io.Reader) ([]domain.Card, error) {
	var cards []domain.Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("failed to decode card array: %w", err)
	}
	for i := range cards {
		cards[i].Normalize()
	}
	return cards, nil
}

// EncodeCards writes the cards as an indented JSON array in declared field
// order. The same shape round-trips through DecodeCards.
func EncodeCards(w io.Writer, cards []domain.Card) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("failed to encode card array: %w", err)
	}
	return nil
}

// LoadOrSeed reads the persisted collection once at startup. A missing or
// unreadable file is not an error: the built-in seed is returned and
// persisted immediately so the next start finds a valid file.
func (s *Store) LoadOrSeed(seed func() []domain.Card) []domain.Card {
	file, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to open deck file, falling back to seed deck", "path", s.path, "error", err)
		}
		return s.seedAndPersist(seed)
	}
	defer file.Close()

	cards, err := DecodeCards(file)
	if err != nil {
		s.logger.Warn("deck file is unreadable, falling back to seed deck", "path", s.path, "error", err)
		return s.seedAndPersist(seed)
	}
	return cards
}

func (s *Store) seedAndPersist(seed func() []domain.Card) []domain.Card {
	cards := seed()
	if err := s.Save(cards); err != nil {
		s.logger.Warn("failed to persist seed deck", "path", s.path, "error", err)
	}
	return cards
}

// Save writes the whole collection atomically: encode to a temp file in the
// same directory, sync, then rename over the target. A crash mid-write
// leaves the previous file intact.
func (s *Store) Save(cards []domain.Card) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create deck directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp deck file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeCards(tmp, cards); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp deck file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp deck file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace deck file: %w", err)
	}
	return nil
}

// ExportJSON writes the cards to path in the persisted file's shape, so an
// export can be re-imported unchanged.
func ExportJSON(path string, cards []domain.Card) error {
	var buf bytes.Buffer
	if err := EncodeCards(&buf, cards); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ImportJSON reads a card array from path with the same defaulting rules as
// the persisted file.
func ImportJSON(path string) ([]domain.Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()
	return DecodeCards(file)
}

var csvHeader = []string{
	"id", "chinese", "pinyin", "translations", "hint", "category", "level",
	"example", "examplePinyin", "exampleTranslation",
	"isFavorite", "seen", "reviewCount", "lastReviewed", "nextReview",
	"learnedDifficulty", "streak",
}

// ExportCSV writes a flattened projection of the cards. Translations are
// joined with a semicolon inside their cell. There is no CSV import.
func ExportCSV(path string, cards []domain.Card) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv export: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range cards {
		c := &cards[i]
		row := []string{
			c.ID.String(), c.Chinese, c.Pinyin, strings.Join(c.Translations, ";"),
			c.Hint, c.Category, strconv.Itoa(c.Level),
			c.Example, c.ExamplePinyin, c.ExampleTranslation,
			strconv.FormatBool(c.IsFavorite), strconv.FormatBool(c.Seen),
			strconv.Itoa(c.ReviewCount), formatTime(c.LastReviewed), formatTime(c.NextReview),
			strconv.Itoa(c.LearnedDifficulty), strconv.Itoa(c.Streak),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv export: %w", err)
	}
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

const backupTimeLayout = "20060102-150405"

// Backup copies the persisted file to a timestamp-suffixed sibling and
// returns the backup path.
func (s *Store) Backup(now time.Time) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read deck file for backup: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
	name := fmt.Sprintf("%s.%s.json", base, now.Format(backupTimeLayout))
	backupPath := filepath.Join(filepath.Dir(s.path), name)
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return backupPath, nil
}

// Backups lists existing backup files for this deck, newest first.
func (s *Store) Backups() ([]string, error) {
	base := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
	pattern := filepath.Join(filepath.Dir(s.path), base+".*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}

// Restore overwrites the persisted file from the chosen backup and returns
// the reloaded collection.
func (s *Store) Restore(backupPath string) ([]domain.Card, error) {
	file, err := os.Open(backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	cards, err := DecodeCards(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode backup file: %w", err)
	}
	if err := s.Save(cards); err != nil {
		return nil, err
	}
	return cards, nil
}
