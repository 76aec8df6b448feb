package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/conlin/hanzideck/internal/domain"
	"github.com/conlin/hanzideck/internal/gitsource"
	"github.com/conlin/hanzideck/internal/importer"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull configured deck repositories and import new cards",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		if len(a.cfg.Sources) == 0 {
			fmt.Println("No sources configured. Add git URLs under 'sources' in the config file.")
			return
		}
		if err := os.MkdirAll(a.cfg.ReposDir(), 0o755); err != nil {
			fmt.Println("Error:", err)
			return
		}

		existing := a.deck.Fingerprints()
		imported := 0
		for _, src := range a.cfg.Sources {
			localPath, err := gitsource.LocalPath(a.cfg.ReposDir(), src)
			if err != nil {
				a.logger.Error("skipping source", "url", src, "error", err)
				continue
			}
			if err := gitsource.Sync(src, localPath); err != nil {
				a.logger.Error("failed to sync source", "url", src, "error", err)
				continue
			}
			res, err := importer.ScanDir(localPath, existing)
			if err != nil {
				a.logger.Error("failed to scan source", "url", src, "error", err)
				continue
			}
			for _, e := range res.Errors {
				a.logger.Warn("deck file skipped", "error", e)
			}
			if len(res.NewCards) > 0 {
				a.deck.ImportCards(res.NewCards)
				for _, c := range res.NewCards {
					existing[domain.Fingerprint(c.Content)] = true
				}
				imported += len(res.NewCards)
			}
		}
		fmt.Printf("Sync complete at %s: %d new cards, deck now has %d.\n",
			time.Now().Format(time.RFC3339), imported, a.deck.Len())
	},
}
