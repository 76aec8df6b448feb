package domain

import (
	"encoding/json"
	"testing"
)

func TestNormalizedContent(t *testing.T) {
	content := Content{
		Chinese:      "  你好 \r\n",
		Pinyin:       "Nǐ Hǎo",
		Translations: []string{" hello ", "hi"},
		Category:     "Greetings",
	}
	expected := "你好\nnǐ hǎo\nhello\nhi\ngreetings"
	normalized := NormalizedContent(content)

	if normalized != expected {
		t.Errorf("Expected normalized string to be %q, but got %q", expected, normalized)
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("fingerprint is deterministic", func(t *testing.T) {
		c1 := Content{Chinese: "水", Pinyin: "shuǐ", Translations: []string{"water", "liquid"}, Category: "Basics"}
		c2 := Content{Chinese: "水", Pinyin: "shuǐ", Translations: []string{"water", "liquid"}, Category: "Basics"}
		if Fingerprint(c1) != Fingerprint(c2) {
			t.Error("Expected fingerprints for identical content to be the same")
		}
	})

	t.Run("normalization produces same fingerprint", func(t *testing.T) {
		c1 := Content{Chinese: " 水 ", Pinyin: "SHUǏ", Translations: []string{"Water", "liquid"}, Category: "basics"}
		c2 := Content{Chinese: "水", Pinyin: "shuǐ", Translations: []string{"water", "liquid"}, Category: "Basics"}
		if Fingerprint(c1) != Fingerprint(c2) {
			t.Error("Expected fingerprints to match after normalization, but they were different.")
		}
	})

	t.Run("different content has different fingerprints", func(t *testing.T) {
		c1 := Content{Chinese: "水", Pinyin: "shuǐ", Translations: []string{"water", "liquid"}, Category: "Basics"}
		c2 := Content{Chinese: "火", Pinyin: "huǒ", Translations: []string{"fire", "flame"}, Category: "Basics"}
		if Fingerprint(c1) == Fingerprint(c2) {
			t.Error("Expected fingerprints for different content to be different")
		}
	})
}

func TestNormalizeDefaults(t *testing.T) {
	// A record written by an older build, before review tracking and the
	// example sentence existed.
	raw := `{"chinese":"猫","pinyin":"māo","translations":["cat","kitty"],"category":"Animals","level":2}`

	var card Card
	if err := json.Unmarshal([]byte(raw), &card); err != nil {
		t.Fatalf("Failed to decode legacy record: %v", err)
	}
	card.Normalize()

	if card.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Expected Normalize to assign a fresh id")
	}
	if card.LearnedDifficulty != 1 {
		t.Errorf("Expected learnedDifficulty default 1, got %d", card.LearnedDifficulty)
	}
	if card.ReviewCount != 0 {
		t.Errorf("Expected reviewCount default 0, got %d", card.ReviewCount)
	}
	if card.NextReview != nil {
		t.Errorf("Expected nextReview default nil, got %v", card.NextReview)
	}
	if card.Example != "" || card.ExamplePinyin != "" || card.ExampleTranslation != "" {
		t.Error("Expected missing example-sentence fields to decode as empty strings")
	}
	if card.Seen || card.IsFavorite {
		t.Error("Expected seen and isFavorite defaults to be false")
	}
}

func TestResetProgress(t *testing.T) {
	card := New(Content{Chinese: "狗", Pinyin: "gǒu", Translations: []string{"dog", "hound"}, Category: "Animals", Level: 1})
	card.IsFavorite = true
	card.Seen = true
	card.ReviewCount = 7
	card.LearnedDifficulty = 4
	card.Streak = 3

	card.ResetProgress()

	if card.IsFavorite || card.Seen {
		t.Error("Expected favorite and seen flags cleared")
	}
	if card.ReviewCount != 0 || card.Streak != 0 {
		t.Errorf("Expected counters cleared, got reviewCount=%d streak=%d", card.ReviewCount, card.Streak)
	}
	if card.LearnedDifficulty != 1 {
		t.Errorf("Expected learnedDifficulty reset to 1, got %d", card.LearnedDifficulty)
	}
	if card.NextReview != nil || card.LastReviewed != nil {
		t.Error("Expected review timestamps cleared")
	}
	if card.Chinese != "狗" || card.Level != 1 {
		t.Error("Expected content fields unchanged by progress reset")
	}
}
