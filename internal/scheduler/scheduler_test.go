package scheduler

import (
	"testing"
	"time"
)

func TestGrade(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("correct answer raises difficulty and streak", func(t *testing.T) {
		res := Grade(2, 1, true, now)
		if res.Difficulty != 3 {
			t.Errorf("Expected difficulty 3, got %d", res.Difficulty)
		}
		if res.Streak != 2 {
			t.Errorf("Expected streak 2, got %d", res.Streak)
		}
		// 3 * (1 + 2) = 9 days
		expected := now.AddDate(0, 0, 9)
		if !res.Next.Equal(expected) {
			t.Errorf("Expected next review %v, got %v", expected, res.Next)
		}
	})

	t.Run("incorrect answer resets streak regardless of prior value", func(t *testing.T) {
		for _, prior := range []int{0, 1, 4, 17} {
			res := Grade(3, prior, false, now)
			if res.Streak != 0 {
				t.Errorf("Expected streak 0 after incorrect answer with prior streak %d, got %d", prior, res.Streak)
			}
		}
	})

	t.Run("incorrect answer lowers difficulty", func(t *testing.T) {
		res := Grade(3, 2, false, now)
		if res.Difficulty != 2 {
			t.Errorf("Expected difficulty 2, got %d", res.Difficulty)
		}
		// 2 * (1 + 0) = 2 days
		expected := now.AddDate(0, 0, 2)
		if !res.Next.Equal(expected) {
			t.Errorf("Expected next review %v, got %v", expected, res.Next)
		}
	})

	t.Run("difficulty stays within bounds under any sequence", func(t *testing.T) {
		difficulty, streak := 1, 0
		outcomes := []bool{true, true, true, true, true, true, true, false, false, false, false, false, true, false, true}
		for i, correct := range outcomes {
			res := Grade(difficulty, streak, correct, now)
			if res.Difficulty < 1 || res.Difficulty > 5 {
				t.Fatalf("Difficulty out of range at step %d: %d", i, res.Difficulty)
			}
			if res.Streak < 0 {
				t.Fatalf("Streak went negative at step %d: %d", i, res.Streak)
			}
			difficulty, streak = res.Difficulty, res.Streak
		}
	})

	t.Run("clamps out-of-range input state", func(t *testing.T) {
		res := Grade(9, -3, true, now)
		if res.Difficulty != 5 {
			t.Errorf("Expected difficulty clamped to 5, got %d", res.Difficulty)
		}
		if res.Streak != 1 {
			t.Errorf("Expected streak 1 from clamped negative input, got %d", res.Streak)
		}
	})
}

func TestIntervalDays(t *testing.T) {
	cases := []struct {
		difficulty, streak, expected int
	}{
		{3, 2, 9},   // 3 * (1 + 2)
		{1, 0, 1},   // fresh card
		{5, 5, 30},  // max state
		{5, 12, 30}, // streak contribution capped at 5
		{2, 6, 12},  // cap applies below max difficulty too
	}
	for _, c := range cases {
		got := IntervalDays(c.difficulty, c.streak)
		if got != c.expected {
			t.Errorf("IntervalDays(%d, %d): expected %d, got %d", c.difficulty, c.streak, c.expected, got)
		}
	}
}
