package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show deck and review-history statistics",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		now := time.Now()
		cards := a.deck.Cards()
		seen, favorites := 0, 0
		for _, c := range cards {
			if c.Seen {
				seen++
			}
			if c.IsFavorite {
				favorites++
			}
		}
		fmt.Printf("Deck: %d cards, %d seen, %d favorites, %d due now, %d categories.\n",
			len(cards), seen, favorites, len(a.deck.DueForReview(now)), len(a.deck.Categories())-1)

		ledger, err := a.openHistory()
		if err != nil {
			a.logger.Warn("review history unavailable", "error", err)
			return
		}
		defer ledger.Close()

		stats, err := ledger.Stats(now)
		if err != nil {
			fmt.Println("Error reading review history:", err)
			return
		}
		fmt.Printf("Reviews: %d total, %d in the last 7 days, %.0f%% correct.\n",
			stats.TotalReviews, stats.ReviewsLast7Days, stats.Accuracy*100)

		if len(stats.CountByDifficulty) > 0 {
			levels := make([]int, 0, len(stats.CountByDifficulty))
			for lvl := range stats.CountByDifficulty {
				levels = append(levels, lvl)
			}
			sort.Ints(levels)
			fmt.Println("Reviews by difficulty:")
			for _, lvl := range levels {
				fmt.Printf("  %d: %d\n", lvl, stats.CountByDifficulty[lvl])
			}
		}
	},
}
