package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open history db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndStats(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	cardA := uuid.New()
	cardB := uuid.New()

	if err := db.Record(cardA, now.AddDate(0, 0, -10), true, 2, 1); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := db.Record(cardA, now.AddDate(0, 0, -1), false, 1, 0); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := db.Record(cardB, now, true, 2, 1); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	stats, err := db.Stats(now)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalReviews != 3 {
		t.Errorf("Expected 3 total reviews, got %d", stats.TotalReviews)
	}
	if stats.ReviewsLast7Days != 2 {
		t.Errorf("Expected 2 reviews in the last 7 days, got %d", stats.ReviewsLast7Days)
	}
	if stats.Accuracy < 0.66 || stats.Accuracy > 0.67 {
		t.Errorf("Expected accuracy around 2/3, got %f", stats.Accuracy)
	}
	if stats.CountByDifficulty[2] != 2 || stats.CountByDifficulty[1] != 1 {
		t.Errorf("Unexpected difficulty breakdown: %v", stats.CountByDifficulty)
	}

	count, err := db.CardReviews(cardA)
	if err != nil {
		t.Fatalf("CardReviews failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 reviews for card A, got %d", count)
	}
}

func TestStatsEmptyLedger(t *testing.T) {
	db := openTestDB(t)
	stats, err := db.Stats(time.Now())
	if err != nil {
		t.Fatalf("Stats failed on empty ledger: %v", err)
	}
	if stats.TotalReviews != 0 || stats.Accuracy != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
}
