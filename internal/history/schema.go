package history

const schema = `
-- The 'reviews' table records every graded review outcome, newest last.
-- It is an append-only ledger: the deck never reads it back, so losing it
-- loses only statistics.
CREATE TABLE IF NOT EXISTS reviews (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    card_id TEXT NOT NULL,
    reviewed_at DATETIME NOT NULL,
    correct INTEGER NOT NULL,
    difficulty INTEGER NOT NULL,
    streak INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_card ON reviews(card_id);
CREATE INDEX IF NOT EXISTS idx_reviews_time ON reviews(reviewed_at);
`
