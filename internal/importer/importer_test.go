package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conlin/hanzideck/internal/domain"
	"github.com/conlin/hanzideck/internal/storage"
)

func writeDeckFile(t *testing.T, path string, cards []domain.Card) {
	t.Helper()
	if err := storage.ExportJSON(path, cards); err != nil {
		t.Fatalf("Failed to write deck file: %v", err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	water := domain.New(domain.Content{
		Chinese: "水", Pinyin: "shuǐ", Translations: []string{"water", "liquid"}, Category: "Basics", Level: 1,
	})
	fire := domain.New(domain.Content{
		Chinese: "火", Pinyin: "huǒ", Translations: []string{"fire", "flame"}, Category: "Basics", Level: 1,
	})
	writeDeckFile(t, filepath.Join(dir, "a.json"), []domain.Card{water, fire})
	// Same content with a different id in a second file: a duplicate.
	waterCopy := domain.New(water.Content)
	writeDeckFile(t, filepath.Join(dir, "b.json"), []domain.Card{waterCopy})
	// Non-deck files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# decks"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("dedupes against the existing deck and within the batch", func(t *testing.T) {
		existing := map[string]bool{domain.Fingerprint(fire.Content): true}
		res, err := ScanDir(dir, existing)
		if err != nil {
			t.Fatalf("ScanDir failed: %v", err)
		}
		if res.Scanned != 3 {
			t.Errorf("Expected 3 scanned cards, got %d", res.Scanned)
		}
		if len(res.NewCards) != 1 || res.NewCards[0].Chinese != "水" {
			t.Errorf("Expected only the water card as new, got %d cards", len(res.NewCards))
		}
		if len(res.Errors) != 0 {
			t.Errorf("Expected no parse errors, got %v", res.Errors)
		}
	})

	t.Run("bad files are reported, not fatal", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{oops"), 0o644); err != nil {
			t.Fatal(err)
		}
		res, err := ScanDir(dir, nil)
		if err != nil {
			t.Fatalf("ScanDir failed: %v", err)
		}
		if len(res.Errors) != 1 {
			t.Errorf("Expected one parse error, got %d", len(res.Errors))
		}
		if len(res.NewCards) != 2 {
			t.Errorf("Expected healthy files still imported, got %d new cards", len(res.NewCards))
		}
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		if _, err := ScanDir(filepath.Join(dir, "nope"), nil); err == nil {
			t.Error("Expected an error for a missing directory")
		}
	})
}
