// Package quiz builds multiple-choice review sessions over a deck. A session
// prefers cards the learner has already seen and tops up from the deck's
// baseline category when too few exist.
package quiz

import (
	"math/rand"
	"time"

	"github.com/conlin/hanzideck/internal/deck"
	"github.com/conlin/hanzideck/internal/domain"
)

// DefaultSize is the number of questions in a session unless overridden.
const DefaultSize = 10

// Type is what a question asks for.
type Type int

const (
	// AskPinyin asks for the card's phonetic transcription.
	AskPinyin Type = iota
	// AskTranslation asks for the card's primary translation.
	AskTranslation
)

const optionCount = 4

// Question is one multiple-choice prompt. Options always contains the
// correct answer; with fewer than three distinct wrong values in the deck
// it is shorter than four entries.
type Question struct {
	Card    domain.Card
	Type    Type
	Prompt  string
	Answer  string
	Options []string
}

// Session walks a fixed question list, grading answers against the deck.
type Session struct {
	deck      *deck.Deck
	questions []Question
	pos       int
}

// NewSession selects up to size cards and builds their questions. If at
// least size cards have been seen, the session samples from those alone;
// otherwise every seen card is included and the remainder is drawn from
// unseen cards in the baseline category. A deck too small for size simply
// yields a shorter session.
func NewSession(d *deck.Deck, size int, rng *rand.Rand) *Session {
	if size <= 0 {
		size = DefaultSize
	}

	seen := d.SeenCards()
	var picked []domain.Card
	if len(seen) >= size {
		rng.Shuffle(len(seen), func(i, j int) { seen[i], seen[j] = seen[j], seen[i] })
		picked = seen[:size]
	} else {
		rng.Shuffle(len(seen), func(i, j int) { seen[i], seen[j] = seen[j], seen[i] })
		picked = seen

		fallback := unseenOnly(d.BaselineCards())
		rng.Shuffle(len(fallback), func(i, j int) { fallback[i], fallback[j] = fallback[j], fallback[i] })
		need := size - len(picked)
		if need > len(fallback) {
			need = len(fallback)
		}
		picked = append(picked, fallback[:need]...)
	}

	all := d.Cards()
	questions := make([]Question, 0, len(picked))
	for i, card := range picked {
		qt := AskPinyin
		if i%2 == 1 {
			qt = AskTranslation
		}
		questions = append(questions, buildQuestion(card, qt, all, rng))
	}

	return &Session{deck: d, questions: questions}
}

func unseenOnly(cards []domain.Card) []domain.Card {
	var out []domain.Card
	for _, c := range cards {
		if !c.Seen {
			out = append(out, c)
		}
	}
	return out
}

func answerField(c *domain.Card, qt Type) string {
	if qt == AskPinyin {
		return c.Pinyin
	}
	if len(c.Translations) == 0 {
		return ""
	}
	return c.Translations[0]
}

// buildQuestion assembles the option list: every distinct value of the
// matching field across the whole collection except the correct one,
// shuffled, three taken, the correct value appended, shuffled again.
func buildQuestion(card domain.Card, qt Type, all []domain.Card, rng *rand.Rand) Question {
	answer := answerField(&card, qt)

	distinct := make(map[string]bool)
	var pool []string
	for i := range all {
		v := answerField(&all[i], qt)
		if v == answer || distinct[v] {
			continue
		}
		distinct[v] = true
		pool = append(pool, v)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > optionCount-1 {
		pool = pool[:optionCount-1]
	}
	options := append(pool, answer)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Question{
		Card:    card,
		Type:    qt,
		Prompt:  card.Chinese,
		Answer:  answer,
		Options: options,
	}
}

// Len reports the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

// Questions returns the full question list in order.
func (s *Session) Questions() []Question {
	return s.questions
}

// Current returns the question awaiting an answer, or false when the
// session is finished.
func (s *Session) Current() (Question, bool) {
	if s.pos >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.pos], true
}

// Answer grades choice against the current question, updates the deck's
// session score, records the review outcome for the card, and advances.
// Grading is exact string equality on the expected field value.
func (s *Session) Answer(choice string, now time.Time) bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	correct := choice == q.Answer
	s.deck.RecordAnswer(correct)
	s.deck.MarkSeen(q.Card.ID)
	s.deck.RecordReview(q.Card.ID, correct, now)
	s.pos++
	return correct
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.pos >= len(s.questions)
}
