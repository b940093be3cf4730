package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordFile(t *testing.T, name string, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	answers := writeWordFile(t, "answers.txt", "crane\ntrace\n  abide \n")
	guessable := writeWordFile(t, "guessable.txt", "SPEED\nzzzz\ntoolong\nwor1d\n")

	src, err := Load(answers, guessable)
	require.NoError(t, err)

	gotAnswers, gotValid := src.Stats()
	assert.Equal(t, 3, gotAnswers)
	// 3 answers + SPEED; short, long, and non-alphabetic lines dropped.
	assert.Equal(t, 4, gotValid)

	assert.True(t, src.IsValidGuess("CRANE"))
	assert.True(t, src.IsValidGuess("speed"))
	assert.True(t, src.IsValidGuess(" Abide "))
	assert.False(t, src.IsValidGuess("ZZZZ"))
	assert.False(t, src.IsValidGuess("TOOLONG"))
}

func TestLoadMissingFile(t *testing.T) {
	answers := writeWordFile(t, "answers.txt", "crane\n")

	_, err := Load(answers, filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "nope.txt"), answers)
	assert.Error(t, err)
}

func TestLoadEmptyAnswerPool(t *testing.T) {
	answers := writeWordFile(t, "answers.txt", "toolong\nab\n")
	guessable := writeWordFile(t, "guessable.txt", "crane\n")

	_, err := Load(answers, guessable)
	assert.Error(t, err)
}

func TestRandomAnswerMembership(t *testing.T) {
	src := NewSource([]string{"CRANE", "TRACE", "ABIDE"}, nil)

	for range 50 {
		w := src.RandomAnswer()
		assert.True(t, src.IsValidGuess(w))
	}
}

func TestFallback(t *testing.T) {
	src := Fallback()

	answers, valid := src.Stats()
	assert.Equal(t, 5, answers)
	assert.Equal(t, 5, valid)
	assert.True(t, src.IsValidGuess("hello"))
	assert.True(t, src.IsValidGuess(src.RandomAnswer()))
}
