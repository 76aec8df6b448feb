package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conlin/hanzideck/internal/deck"
	"github.com/conlin/hanzideck/internal/storage"
)

var exportFlags struct {
	format string
	out    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the deck to a JSON or CSV file",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		cards := a.deck.Cards()
		switch exportFlags.format {
		case "json":
			err = storage.ExportJSON(exportFlags.out, cards)
		case "csv":
			err = storage.ExportCSV(exportFlags.out, cards)
		default:
			fmt.Printf("Unknown format %q (want json or csv).\n", exportFlags.format)
			return
		}
		if err != nil {
			fmt.Println("Export failed:", err)
			return
		}
		fmt.Printf("Exported %d cards to %s.\n", len(cards), exportFlags.out)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import cards from a JSON export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		cards, err := storage.ImportJSON(args[0])
		if err != nil {
			fmt.Println("Import failed:", err)
			return
		}
		a.deck.ImportCards(cards)
		fmt.Printf("Imported %d cards; deck now has %d.\n", len(cards), a.deck.Len())
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the deck file to a timestamped backup",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		// Flush first so the backup reflects the current state.
		if err := a.saver.Flush(); err != nil {
			fmt.Println("Backup failed:", err)
			return
		}
		path, err := a.store.Backup(time.Now())
		if err != nil {
			fmt.Println("Backup failed:", err)
			return
		}
		fmt.Println("Backup written to", path)
	},
}

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List existing deck backups, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		backups, err := a.store.Backups()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		if len(backups) == 0 {
			fmt.Println("No backups.")
			return
		}
		for _, b := range backups {
			fmt.Println(b)
		}
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Restore the deck from a backup file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		cards, err := a.store.Restore(args[0])
		if err != nil {
			fmt.Println("Restore failed:", err)
			return
		}
		a.deck.ReplaceAll(cards)
		fmt.Printf("Restored %d cards from %s.\n", len(cards), args[0])
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all learning progress, keeping the cards",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		a.deck.ResetAllProgress()
		fmt.Printf("Progress reset on %d cards.\n", a.deck.Len())
	},
}

var restoreDefaultsCmd = &cobra.Command{
	Use:   "restore-defaults",
	Short: "Replace the deck with the built-in starter cards",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		a.deck.ReplaceAll(deck.Seed())
		fmt.Printf("Deck replaced with %d starter cards.\n", a.deck.Len())
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.format, "format", "json", "export format: json or csv")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "hanzideck-export.json", "output file path")
}
