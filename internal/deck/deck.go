// Package deck owns the card collection and its derived views. The Deck is
// the sole mutator of any card: callers get copies out and request changes
// through the mutation API. Derived views (favorites, seen, per-category
// lists, the baseline subset, the category index) are cached lazily and
// invalidated wholesale by a generation counter that every mutation bumps.
package deck

import (
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/conlin/hanzideck/internal/domain"
	"github.com/conlin/hanzideck/internal/scheduler"
)

// Reserved category names. CategoryAll always heads the category list and
// selects every card; CategoryFavorites selects the favorites view.
const (
	CategoryAll       = "All"
	CategoryFavorites = "Favorites"
)

// Event identifies which aspect of the deck a mutation touched. Observers
// receive the kind only; they re-read whatever views they care about.
type Event string

const (
	EventCards     Event = "cards"
	EventFavorites Event = "favorites"
	EventSeen      Event = "seen"
	EventProgress  Event = "progress"
	EventScore     Event = "score"
)

// Saver receives a snapshot of the collection after every mutation. The
// storage layer debounces and persists it off the mutation path.
type Saver interface {
	ScheduleSave(cards []domain.Card)
}

// Score is the running tally for the active quiz session.
type Score struct {
	Correct int
	Total   int
}

// Deck holds the ordered card collection, its derived caches, and the
// session score. It is built for a single logical owner: mutations are
// expected to come from one goroutine, so there is no internal locking.
type Deck struct {
	cards    []domain.Card
	baseline string
	saver    Saver
	validate *validator.Validate
	logger   *slog.Logger

	observers []func(Event)
	score     Score

	// gen counts mutations; each cache records the gen it was built at and
	// rebuilds on first read after any write. This deliberately invalidates
	// every view on every mutation rather than tracking per-cache dirtiness.
	gen          uint64
	categories   []string
	categoriesAt uint64
	favorites    []domain.Card
	favoritesAt  uint64
	seenCards    []domain.Card
	seenAt       uint64
	byCategory   map[string][]domain.Card
	byCategoryAt uint64
	baselineSet  []domain.Card
	baselineAt   uint64
}

// Option configures a Deck at construction.
type Option func(*Deck)

// WithSaver attaches the persistence sink invoked after every mutation.
func WithSaver(s Saver) Option {
	return func(d *Deck) { d.saver = s }
}

// WithBaselineCategory sets the category the quiz builder falls back to
// when too few cards have been seen.
func WithBaselineCategory(category string) Option {
	return func(d *Deck) { d.baseline = category }
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Deck) { d.logger = l }
}

// New builds a deck around the given cards. The deck takes ownership of the
// slice; callers must not retain it.
func New(cards []domain.Card, opts ...Option) *Deck {
	d := &Deck{
		cards:    cards,
		baseline: "Basics",
		validate: validator.New(),
		logger:   slog.Default(),
		gen:      1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Subscribe registers an observer called after every mutation. Observers run
// synchronously on the mutating goroutine and must not mutate the deck.
func (d *Deck) Subscribe(fn func(Event)) {
	d.observers = append(d.observers, fn)
}

func (d *Deck) notify(ev Event) {
	for _, fn := range d.observers {
		fn(ev)
	}
}

// mutated bumps the generation counter, hands the saver a fresh snapshot,
// and fans the event out. Call after every state change.
func (d *Deck) mutated(ev Event) {
	d.gen++
	if d.saver != nil {
		d.saver.ScheduleSave(d.snapshot())
	}
	d.notify(ev)
}

func (d *Deck) snapshot() []domain.Card {
	return slices.Clone(d.cards)
}

func (d *Deck) indexOf(id uuid.UUID) int {
	for i := range d.cards {
		if d.cards[i].ID == id {
			return i
		}
	}
	return -1
}

// AddCard validates the content, constructs a card with default learning
// state, and appends it. A novel category is created implicitly.
func (d *Deck) AddCard(content domain.Content) (domain.Card, error) {
	if err := d.validate.Struct(content); err != nil {
		return domain.Card{}, err
	}
	card := domain.New(content)
	d.cards = append(d.cards, card)
	d.mutated(EventCards)
	return card, nil
}

// ToggleFavorite flips the favorite flag on the card with the given id.
// A missing id is a no-op: the UI can race a deletion without harm.
func (d *Deck) ToggleFavorite(id uuid.UUID) {
	i := d.indexOf(id)
	if i < 0 {
		return
	}
	d.cards[i].IsFavorite = !d.cards[i].IsFavorite
	d.mutated(EventFavorites)
}

// MarkSeen records that the learner has been shown the card. Idempotent:
// marking an already-seen card changes nothing and schedules no write.
func (d *Deck) MarkSeen(id uuid.UUID) {
	i := d.indexOf(id)
	if i < 0 || d.cards[i].Seen {
		return
	}
	d.cards[i].Seen = true
	d.mutated(EventSeen)
}

// RecordReview grades one review outcome for the card, delegating the
// difficulty/streak/interval transition to the scheduler. Missing ids are
// no-ops.
func (d *Deck) RecordReview(id uuid.UUID, correct bool, now time.Time) {
	i := d.indexOf(id)
	if i < 0 {
		return
	}
	card := &d.cards[i]
	res := scheduler.Grade(card.LearnedDifficulty, card.Streak, correct, now)
	card.LearnedDifficulty = res.Difficulty
	card.Streak = res.Streak
	card.ReviewCount++
	card.LastReviewed = &now
	next := res.Next
	card.NextReview = &next
	d.mutated(EventProgress)
}

// ResetAllProgress clears the learning state of every card and the session
// score, leaving content untouched.
func (d *Deck) ResetAllProgress() {
	for i := range d.cards {
		d.cards[i].ResetProgress()
	}
	d.score = Score{}
	d.mutated(EventProgress)
}

// ImportCards appends the given cards after normalizing each one.
func (d *Deck) ImportCards(cards []domain.Card) {
	if len(cards) == 0 {
		return
	}
	for i := range cards {
		cards[i].Normalize()
	}
	d.cards = append(d.cards, cards...)
	d.logger.Info("imported cards", "count", len(cards), "deck_size", len(d.cards))
	d.mutated(EventCards)
}

// ReplaceAll swaps in a whole new collection. Used by restore-defaults,
// shuffle, and restore-order flows.
func (d *Deck) ReplaceAll(cards []domain.Card) {
	for i := range cards {
		cards[i].Normalize()
	}
	d.cards = cards
	d.mutated(EventCards)
}

// Shuffle randomizes the user-visible card order.
func (d *Deck) Shuffle(rng *rand.Rand) {
	shuffled := d.snapshot()
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	d.ReplaceAll(shuffled)
}

// Remove deletes the card with the given id. Missing ids are no-ops.
func (d *Deck) Remove(id uuid.UUID) {
	i := d.indexOf(id)
	if i < 0 {
		return
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	d.mutated(EventCards)
}

// Card returns a copy of the card with the given id.
func (d *Deck) Card(id uuid.UUID) (domain.Card, bool) {
	i := d.indexOf(id)
	if i < 0 {
		return domain.Card{}, false
	}
	return d.cards[i], true
}

// Cards returns a copy of the whole ordered collection.
func (d *Deck) Cards() []domain.Card {
	return d.snapshot()
}

// Len reports the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Fingerprints returns the content fingerprint set of the current
// collection, for import dedupe.
func (d *Deck) Fingerprints() map[string]bool {
	fps := make(map[string]bool, len(d.cards))
	for i := range d.cards {
		fps[domain.Fingerprint(d.cards[i].Content)] = true
	}
	return fps
}

// Categories returns the sorted distinct category labels, always headed by
// the "All" sentinel.
func (d *Deck) Categories() []string {
	if d.categoriesAt != d.gen {
		distinct := make(map[string]bool)
		for i := range d.cards {
			if d.cards[i].Category != "" {
				distinct[d.cards[i].Category] = true
			}
		}
		cats := make([]string, 0, len(distinct)+1)
		for c := range distinct {
			cats = append(cats, c)
		}
		slices.SortFunc(cats, func(a, b string) int { return strings.Compare(a, b) })
		d.categories = append([]string{CategoryAll}, cats...)
		d.categoriesAt = d.gen
	}
	return slices.Clone(d.categories)
}

// Favorites returns the cards currently flagged as favorites, in deck order.
func (d *Deck) Favorites() []domain.Card {
	if d.favoritesAt != d.gen {
		d.favorites = filterCards(d.cards, func(c *domain.Card) bool { return c.IsFavorite })
		d.favoritesAt = d.gen
	}
	return slices.Clone(d.favorites)
}

// SeenCards returns the cards the learner has been shown, in deck order.
func (d *Deck) SeenCards() []domain.Card {
	if d.seenAt != d.gen {
		d.seenCards = filterCards(d.cards, func(c *domain.Card) bool { return c.Seen })
		d.seenAt = d.gen
	}
	return slices.Clone(d.seenCards)
}

// BaselineCards returns the cards in the configured baseline category.
func (d *Deck) BaselineCards() []domain.Card {
	if d.baselineAt != d.gen {
		baseline := d.baseline
		d.baselineSet = filterCards(d.cards, func(c *domain.Card) bool { return c.Category == baseline })
		d.baselineAt = d.gen
	}
	return slices.Clone(d.baselineSet)
}

// CardsForCategory resolves a category label to its card list: the whole
// collection for "All", the favorites view for "Favorites", and an
// exact-match list otherwise. Unknown categories yield an empty list.
func (d *Deck) CardsForCategory(category string) []domain.Card {
	switch category {
	case CategoryAll:
		return d.snapshot()
	case CategoryFavorites:
		return d.Favorites()
	}
	if d.byCategoryAt != d.gen {
		d.byCategory = make(map[string][]domain.Card)
		d.byCategoryAt = d.gen
	}
	cached, ok := d.byCategory[category]
	if !ok {
		cached = filterCards(d.cards, func(c *domain.Card) bool { return c.Category == category })
		d.byCategory[category] = cached
	}
	return slices.Clone(cached)
}

// DueForReview returns the seen cards whose next review is unset or has
// arrived by asOf, in deck order.
func (d *Deck) DueForReview(asOf time.Time) []domain.Card {
	return filterCards(d.cards, func(c *domain.Card) bool {
		return c.Seen && (c.NextReview == nil || !c.NextReview.After(asOf))
	})
}

// RecordAnswer updates the session score with one graded quiz answer. The
// score is session-local state: observers are notified but nothing is
// persisted and no card view is invalidated.
func (d *Deck) RecordAnswer(correct bool) {
	d.score.Total++
	if correct {
		d.score.Correct++
	}
	d.notify(EventScore)
}

// Score returns the running quiz score.
func (d *Deck) Score() Score {
	return d.score
}

// ResetScore clears the session score.
func (d *Deck) ResetScore() {
	d.score = Score{}
	d.notify(EventScore)
}

func filterCards(cards []domain.Card, keep func(*domain.Card) bool) []domain.Card {
	var out []domain.Card
	for i := range cards {
		if keep(&cards[i]) {
			out = append(out, cards[i])
		}
	}
	return out
}
