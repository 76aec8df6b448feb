package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/conlin/hanzideck/internal/deck"
	"github.com/conlin/hanzideck/internal/domain"
)

var addFlags struct {
	chinese            string
	pinyin             string
	translations       []string
	hint               string
	category           string
	level              int
	example            string
	examplePinyin      string
	exampleTranslation string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new card to the deck",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		card, err := a.deck.AddCard(domain.Content{
			Chinese:            addFlags.chinese,
			Pinyin:             addFlags.pinyin,
			Translations:       addFlags.translations,
			Hint:               addFlags.hint,
			Category:           addFlags.category,
			Level:              addFlags.level,
			Example:            addFlags.example,
			ExamplePinyin:      addFlags.examplePinyin,
			ExampleTranslation: addFlags.exampleTranslation,
		})
		if err != nil {
			fmt.Println("Invalid card:", err)
			return
		}
		fmt.Printf("Added %s (%s) [%s]\n", card.Chinese, card.Pinyin, card.ID)
	},
}

var listDueOnly bool

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List cards, optionally filtered by category",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		category := deck.CategoryAll
		if len(args) == 1 {
			category = args[0]
		}
		cards := a.deck.CardsForCategory(category)
		if listDueOnly {
			due := a.deck.DueForReview(time.Now())
			dueIDs := make(map[string]bool, len(due))
			for _, c := range due {
				dueIDs[c.ID.String()] = true
			}
			var filtered []domain.Card
			for _, c := range cards {
				if dueIDs[c.ID.String()] {
					filtered = append(filtered, c)
				}
			}
			cards = filtered
		}

		if len(cards) == 0 {
			fmt.Println("No cards.")
			return
		}
		for _, c := range cards {
			printCardLine(c)
		}
	},
}

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List cards due for review",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		cards := a.deck.DueForReview(time.Now())
		if len(cards) == 0 {
			fmt.Println("No cards due for review.")
			return
		}
		fmt.Printf("%d card(s) due:\n", len(cards))
		for _, c := range cards {
			printCardLine(c)
		}
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the deck's categories",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		for _, cat := range a.deck.Categories() {
			fmt.Println(cat)
		}
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <card-id>",
	Short: "Toggle a card's favorite flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		a.deck.ToggleFavorite(id)
		if card, ok := a.deck.Card(id); ok {
			fmt.Printf("%s favorite: %v\n", card.Chinese, card.IsFavorite)
		} else {
			fmt.Println("No such card.")
		}
	},
}

var seenCmd = &cobra.Command{
	Use:   "seen <card-id>",
	Short: "Mark a card as seen",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		a.deck.MarkSeen(id)
		if card, ok := a.deck.Card(id); ok {
			fmt.Printf("%s seen: %v\n", card.Chinese, card.Seen)
		} else {
			fmt.Println("No such card.")
		}
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <card-id>",
	Short: "Delete a card from the deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		card, ok := a.deck.Card(id)
		if !ok {
			fmt.Println("No such card.")
			return
		}
		a.deck.Remove(id)
		fmt.Printf("Removed %s (%s).\n", card.Chinese, card.Pinyin)
	},
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle the deck order",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		a.deck.Shuffle(rand.New(rand.NewSource(time.Now().UnixNano())))
		fmt.Printf("Shuffled %d cards.\n", a.deck.Len())
	},
}

func printCardLine(c domain.Card) {
	markers := ""
	if c.IsFavorite {
		markers += "★"
	}
	if c.Seen {
		markers += "·seen"
	}
	next := "unscheduled"
	if c.NextReview != nil {
		next = c.NextReview.Format("2006-01-02")
	}
	fmt.Printf("%s  %s | %s | %s | lvl %d | next %s %s\n",
		c.ID, c.Chinese, c.Pinyin, strings.Join(c.Translations, ", "), c.LearnedDifficulty, next, markers)
}

func init() {
	addCmd.Flags().StringVar(&addFlags.chinese, "chinese", "", "the word or phrase in Chinese")
	addCmd.Flags().StringVar(&addFlags.pinyin, "pinyin", "", "phonetic transcription")
	addCmd.Flags().StringSliceVar(&addFlags.translations, "translation", nil, "translation (repeat for alternatives; at least two required)")
	addCmd.Flags().StringVar(&addFlags.hint, "hint", "", "romanized pronunciation hint")
	addCmd.Flags().StringVar(&addFlags.category, "category", "", "free-text category")
	addCmd.Flags().IntVar(&addFlags.level, "level", 1, "intrinsic difficulty 1-5")
	addCmd.Flags().StringVar(&addFlags.example, "example", "", "example sentence")
	addCmd.Flags().StringVar(&addFlags.examplePinyin, "example-pinyin", "", "example sentence transcription")
	addCmd.Flags().StringVar(&addFlags.exampleTranslation, "example-translation", "", "example sentence translation")

	listCmd.Flags().BoolVar(&listDueOnly, "due", false, "only cards due for review")
}
