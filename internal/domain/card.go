package domain

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MinDifficulty and MaxDifficulty bound both the author-assigned level
	// and the learned difficulty adjusted by review grading.
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Content holds the immutable lexical fields of a card. These are fixed at
// creation; learning progress never touches them.
type Content struct {
	Chinese            string   `json:"chinese" validate:"required"`
	Pinyin             string   `json:"pinyin" validate:"required"`
	Translations       []string `json:"translations" validate:"required,min=2,dive,required"`
	Hint               string   `json:"hint"`
	Category           string   `json:"category" validate:"required"`
	Level              int      `json:"level" validate:"min=1,max=5"`
	Example            string   `json:"example"`
	ExamplePinyin      string   `json:"examplePinyin"`
	ExampleTranslation string   `json:"exampleTranslation"`
}

// Card is a single vocabulary entry: fixed content plus the learning state
// the scheduler mutates. Two cards are the same card iff their IDs match.
type Card struct {
	ID uuid.UUID `json:"id"`
	Content
	IsFavorite        bool       `json:"isFavorite"`
	Seen              bool       `json:"seen"`
	ReviewCount       int        `json:"reviewCount"`
	LastReviewed      *time.Time `json:"lastReviewed,omitempty"`
	NextReview        *time.Time `json:"nextReview,omitempty"`
	LearnedDifficulty int        `json:"learnedDifficulty"`
	Streak            int        `json:"streak"`
}

// New constructs a card from content with fresh learning state.
func New(content Content) Card {
	return Card{
		ID:                uuid.New(),
		Content:           content,
		LearnedDifficulty: MinDifficulty,
	}
}

// Normalize repairs a card decoded from an older or partial record so the
// documented defaults hold: a missing learnedDifficulty becomes 1, counters
// never go negative, and a missing id gets a fresh one. Records from before
// the example-sentence fields existed simply decode those fields as "".
func (c *Card) Normalize() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.LearnedDifficulty < MinDifficulty {
		c.LearnedDifficulty = MinDifficulty
	}
	if c.LearnedDifficulty > MaxDifficulty {
		c.LearnedDifficulty = MaxDifficulty
	}
	if c.ReviewCount < 0 {
		c.ReviewCount = 0
	}
	if c.Streak < 0 {
		c.Streak = 0
	}
}

// ResetProgress clears every mutable learning-state field back to its
// default, leaving content untouched.
func (c *Card) ResetProgress() {
	c.IsFavorite = false
	c.Seen = false
	c.ReviewCount = 0
	c.LastReviewed = nil
	c.NextReview = nil
	c.LearnedDifficulty = MinDifficulty
	c.Streak = 0
}

// normalizePart cleans a content field for fingerprinting: lowercased,
// trimmed, line endings unified.
func normalizePart(part string) string {
	p := strings.ToLower(part)
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\r\n", "\n")
	return p
}

// NormalizedContent concatenates the identifying content fields after
// cleaning each part. Parts are joined with newlines so adjacent fields
// cannot run together and collide.
func NormalizedContent(content Content) string {
	parts := []string{
		normalizePart(content.Chinese),
		normalizePart(content.Pinyin),
	}
	for _, t := range content.Translations {
		parts = append(parts, normalizePart(t))
	}
	parts = append(parts, normalizePart(content.Category))
	return strings.Join(parts, "\n")
}

// Fingerprint returns the SHA-256 of the normalized content as a hex string.
// Used to recognize the same vocabulary entry across imports regardless of
// id, whitespace or casing.
func Fingerprint(content Content) string {
	normalized := NormalizedContent(content)
	hashBytes := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", hashBytes)
}
