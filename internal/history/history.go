// Package history keeps a review ledger in sqlite, separate from the deck
// file. Every graded answer appends one row; stats queries aggregate them.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB wraps the ledger database connection.
type DB struct {
	conn *sql.DB
}

// Open creates the ledger connection and ensures the schema exists.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply history schema: %w", err)
	}
	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record appends one graded review to the ledger. The difficulty and streak
// are the card's post-grading values.
func (db *DB) Record(cardID uuid.UUID, reviewedAt time.Time, correct bool, difficulty, streak int) error {
	_, err := db.conn.Exec(`
		INSERT INTO reviews (card_id, reviewed_at, correct, difficulty, streak)
		VALUES (?, ?, ?, ?, ?)
	`, cardID.String(), reviewedAt, correct, difficulty, streak)
	if err != nil {
		return fmt.Errorf("failed to record review for card %s: %w", cardID, err)
	}
	return nil
}

// Stats summarizes the ledger.
type Stats struct {
	TotalReviews      int
	ReviewsLast7Days  int
	Accuracy          float64
	CountByDifficulty map[int]int
}

// Stats aggregates the ledger as of now.
func (db *DB) Stats(now time.Time) (*Stats, error) {
	stats := &Stats{CountByDifficulty: make(map[int]int)}

	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&stats.TotalReviews); err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	weekAgo := now.AddDate(0, 0, -7)
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM reviews WHERE reviewed_at > ?`, weekAgo).Scan(&stats.ReviewsLast7Days); err != nil {
		return nil, fmt.Errorf("failed to count recent reviews: %w", err)
	}

	var avg sql.NullFloat64
	if err := db.conn.QueryRow(`SELECT AVG(correct) FROM reviews`).Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to compute accuracy: %w", err)
	}
	if avg.Valid {
		stats.Accuracy = avg.Float64
	}

	rows, err := db.conn.Query(`
		SELECT difficulty, COUNT(*) FROM reviews GROUP BY difficulty
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to group reviews by difficulty: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var difficulty, count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, fmt.Errorf("failed to scan difficulty row: %w", err)
		}
		stats.CountByDifficulty[difficulty] = count
	}
	return stats, rows.Err()
}

// CardReviews returns how many times a card has been graded, for display.
func (db *DB) CardReviews(cardID uuid.UUID) (int, error) {
	var count int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM reviews WHERE card_id = ?`, cardID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews for card %s: %w", cardID, err)
	}
	return count, nil
}
