// Package importer reconciles deck files from a synced source directory
// against the in-memory collection. Every *.json file is decoded with the
// same defaulting rules as the persisted deck, and cards whose content
// fingerprint is already present are skipped.
package importer

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/conlin/hanzideck/internal/domain"
	"github.com/conlin/hanzideck/internal/storage"
)

// Result is the outcome of scanning one source directory.
type Result struct {
	// NewCards are decoded cards not yet present in the deck, in the order
	// they were found.
	NewCards []domain.Card
	// Scanned counts every card decoded, duplicates included.
	Scanned int
	// Errors holds one entry per file that failed to decode. A bad file
	// never aborts the scan.
	Errors []error
}

// ScanDir walks dir for deck files and returns the cards whose fingerprints
// are absent from existing. Duplicates within the scanned batch itself are
// also dropped.
func ScanDir(dir string, existing map[string]bool) (*Result, error) {
	res := &Result{}
	seen := make(map[string]bool, len(existing))
	for fp := range existing {
		seen[fp] = true
	}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".json") {
			return nil
		}
		cards, err := storage.ImportJSON(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("parsing %s: %w", path, err))
			return nil
		}
		res.Scanned += len(cards)
		for _, card := range cards {
			fp := domain.Fingerprint(card.Content)
			if seen[fp] {
				continue
			}
			seen[fp] = true
			res.NewCards = append(res.NewCards, card)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk source directory %s: %w", dir, walkErr)
	}

	slog.Info("source scan complete",
		"dir", dir,
		"scanned", res.Scanned,
		"new", len(res.NewCards),
		"errors", len(res.Errors),
	)
	return res, nil
}
