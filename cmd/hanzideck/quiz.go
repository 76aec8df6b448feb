package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/conlin/hanzideck/internal/history"
	"github.com/conlin/hanzideck/internal/quiz"
)

var quizSize int

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a multiple-choice quiz session",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		// A broken ledger must not block studying.
		var ledger *history.DB
		if db, err := a.openHistory(); err != nil {
			a.logger.Warn("review history unavailable", "error", err)
		} else {
			ledger = db
			defer ledger.Close()
		}

		size := quizSize
		if size == 0 {
			size = a.cfg.Quiz.Size
		}
		session := quiz.NewSession(a.deck, size, rand.New(rand.NewSource(time.Now().UnixNano())))
		if session.Len() == 0 {
			fmt.Println("No cards available to quiz.")
			return
		}

		reader := bufio.NewReader(os.Stdin)
		number := 1
		for {
			q, ok := session.Current()
			if !ok {
				break
			}
			fmt.Printf("\n[%d/%d] %s\n", number, session.Len(), q.Prompt)
			if q.Type == quiz.AskPinyin {
				fmt.Println("Pick the pinyin:")
			} else {
				fmt.Println("Pick the translation:")
			}
			for i, opt := range q.Options {
				fmt.Printf("  %d) %s\n", i+1, opt)
			}

			choice, quit := readChoice(reader, len(q.Options))
			if quit {
				break
			}

			now := time.Now()
			correct := session.Answer(q.Options[choice-1], now)
			if correct {
				fmt.Println("Correct!")
			} else {
				fmt.Printf("Wrong. The answer is: %s\n", q.Answer)
			}

			if ledger != nil {
				card, ok := a.deck.Card(q.Card.ID)
				if ok {
					if err := ledger.Record(card.ID, now, correct, card.LearnedDifficulty, card.Streak); err != nil {
						a.logger.Warn("failed to record review history", "card", card.ID, "error", err)
					}
				}
			}
			number++
		}

		score := a.deck.Score()
		fmt.Printf("\nSession complete: %d/%d correct.\n", score.Correct, score.Total)
	},
}

// readChoice prompts until the user enters a valid option number or q.
func readChoice(reader *bufio.Reader, options int) (choice int, quit bool) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, true
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return 0, true
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > options {
			fmt.Printf("Enter a number between 1 and %d (or q to quit).\n", options)
			continue
		}
		return n, false
	}
}

var gradeCmd = &cobra.Command{
	Use:   "grade <card-id> <correct|wrong>",
	Short: "Record a review outcome for a card directly",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		var correct bool
		switch args[1] {
		case "correct":
			correct = true
		case "wrong":
			correct = false
		default:
			fmt.Println("Outcome must be 'correct' or 'wrong'.")
			return
		}

		a, err := newApp()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		defer a.close()

		now := time.Now()
		a.deck.MarkSeen(id)
		a.deck.RecordReview(id, correct, now)
		card, ok := a.deck.Card(id)
		if !ok {
			fmt.Println("No such card.")
			return
		}
		fmt.Printf("%s: difficulty %d, streak %d, next review %s\n",
			card.Chinese, card.LearnedDifficulty, card.Streak, card.NextReview.Format("2006-01-02"))

		if ledger, err := a.openHistory(); err == nil {
			defer ledger.Close()
			if err := ledger.Record(card.ID, now, correct, card.LearnedDifficulty, card.Streak); err != nil {
				a.logger.Warn("failed to record review history", "card", card.ID, "error", err)
			}
		}
	},
}

func init() {
	quizCmd.Flags().IntVar(&quizSize, "size", 0, "questions per session (0 uses the configured size)")
}
