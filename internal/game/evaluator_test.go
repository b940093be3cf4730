package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   []Verdict
	}{
		{
			name:   "all correct",
			guess:  "CRANE",
			answer: "CRANE",
			want:   []Verdict{VerdictCorrect, VerdictCorrect, VerdictCorrect, VerdictCorrect, VerdictCorrect},
		},
		{
			name:   "no letters shared",
			guess:  "JUMPY",
			answer: "TREES",
			want:   []Verdict{VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent, VerdictAbsent},
		},
		{
			name:   "anagram overlap",
			guess:  "CRANE",
			answer: "TRACE",
			want:   []Verdict{VerdictPresent, VerdictCorrect, VerdictCorrect, VerdictAbsent, VerdictCorrect},
		},
		{
			name:   "guess has two of a letter, answer has one",
			guess:  "SPEED",
			answer: "ABIDE",
			want:   []Verdict{VerdictAbsent, VerdictAbsent, VerdictPresent, VerdictAbsent, VerdictPresent},
		},
		{
			name:   "guess has two of a letter, answer has two",
			guess:  "SPEED",
			answer: "ERASE",
			want:   []Verdict{VerdictPresent, VerdictAbsent, VerdictPresent, VerdictPresent, VerdictAbsent},
		},
		{
			name:   "duplicate consumed by exact match first",
			guess:  "GEESE",
			answer: "THEME",
			want:   []Verdict{VerdictAbsent, VerdictAbsent, VerdictCorrect, VerdictAbsent, VerdictCorrect},
		},
		{
			name:   "triple letter capped at answer count",
			guess:  "EERIE",
			answer: "ELDER",
			want:   []Verdict{VerdictCorrect, VerdictPresent, VerdictPresent, VerdictAbsent, VerdictAbsent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.guess, tt.answer))
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	first := Evaluate("SPEED", "ERASE")
	second := Evaluate("SPEED", "ERASE")
	assert.Equal(t, first, second)
}

// Correct+present marks for any letter must never exceed that letter's
// count in the answer.
func TestEvaluateDuplicateAccounting(t *testing.T) {
	pairs := [][2]string{
		{"SPEED", "ERASE"},
		{"GEESE", "THEME"},
		{"LLAMA", "ALLAY"},
		{"MAMMA", "AMPLE"},
		{"CRANE", "TRACE"},
	}

	for _, pair := range pairs {
		guess, answer := pair[0], pair[1]
		verdicts := Evaluate(guess, answer)
		assert.Len(t, verdicts, WordLength)

		answerCounts := map[byte]int{}
		for i := 0; i < len(answer); i++ {
			answerCounts[answer[i]]++
		}

		marked := map[byte]int{}
		for i, v := range verdicts {
			if v == VerdictCorrect || v == VerdictPresent {
				marked[guess[i]]++
			}
		}
		for letter, n := range marked {
			assert.LessOrEqual(t, n, answerCounts[letter],
				"guess %q answer %q letter %q", guess, answer, string(letter))
		}
	}
}

func TestIsWin(t *testing.T) {
	assert.True(t, IsWin(Evaluate("CRANE", "CRANE")))
	assert.False(t, IsWin(Evaluate("CRANE", "TRACE")))
	assert.False(t, IsWin(nil))
}

func TestKeyboardState(t *testing.T) {
	t.Run("best verdict wins per letter", func(t *testing.T) {
		state := KeyboardState([]string{"CRANE", "TRACK"}, "TRACE")

		assert.Equal(t, VerdictCorrect, state["T"])
		assert.Equal(t, VerdictCorrect, state["R"])
		assert.Equal(t, VerdictCorrect, state["A"])
		// C was present in CRANE, then correct in TRACK.
		assert.Equal(t, VerdictCorrect, state["C"])
		assert.Equal(t, VerdictAbsent, state["N"])
		assert.Equal(t, VerdictCorrect, state["E"])
		assert.Equal(t, VerdictAbsent, state["K"])
	})

	t.Run("present is not downgraded to absent", func(t *testing.T) {
		// ABIDE holds one E. TEPEE marks its first E present and the rest
		// absent; the recorded state must stay present.
		state := KeyboardState([]string{"SPEED", "TEPEE"}, "ABIDE")
		assert.Equal(t, VerdictPresent, state["E"])
	})

	t.Run("unguessed letters are not in the map", func(t *testing.T) {
		state := KeyboardState([]string{"CRANE"}, "TRACE")
		_, ok := state["Z"]
		assert.False(t, ok)
	})
}
