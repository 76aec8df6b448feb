// Package scheduler computes spaced-repetition transitions for review
// gradings. The policy is deliberately simple: a correct answer raises the
// learned difficulty level and extends the streak, an incorrect answer
// lowers the level and breaks the streak, and the next review lands
// level*(1+streak) days out with the streak contribution capped.
package scheduler

import "time"

const streakCap = 5

const (
	minDifficulty = 1
	maxDifficulty = 5
)

// Result is the new learning state produced by grading one review.
type Result struct {
	Difficulty int
	Streak     int
	Next       time.Time
}

// Grade applies one review outcome to the given learning state and returns
// the new state. Inputs outside the valid ranges are clamped first, so a
// malformed record can never push the state further out of range.
func Grade(difficulty, streak int, correct bool, now time.Time) Result {
	difficulty = clamp(difficulty, minDifficulty, maxDifficulty)
	if streak < 0 {
		streak = 0
	}

	if correct {
		streak++
		difficulty = clamp(difficulty+1, minDifficulty, maxDifficulty)
	} else {
		streak = 0
		difficulty = clamp(difficulty-1, minDifficulty, maxDifficulty)
	}

	return Result{
		Difficulty: difficulty,
		Streak:     streak,
		Next:       now.AddDate(0, 0, IntervalDays(difficulty, streak)),
	}
}

// IntervalDays is the review interval for a given post-grading state.
// The streak contribution is capped so intervals stay bounded by the
// difficulty level: at most difficulty*(1+5) days.
func IntervalDays(difficulty, streak int) int {
	if streak > streakCap {
		streak = streakCap
	}
	return difficulty * (1 + streak)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
