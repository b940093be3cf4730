// Package words supplies the answer pool and valid-guess set for the
// game. Lists are loaded once at startup from newline-delimited files;
// if loading fails the caller should fall back to the small built-in
// set so the server stays up.
package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/samber/lo"
)

// fallbackWords keeps the server operational when no word files can be
// read. They serve as both answer pool and valid-guess set.
var fallbackWords = []string{"HELLO", "WORLD", "GAMES", "PLAYS", "FUNNY"}

// Source holds the answer pool and the valid-guess superset.
type Source struct {
	answers []string
	valid   map[string]struct{}
}

// NewSource builds a Source from explicit lists. Every answer is also a
// valid guess, whether or not it appears in guessable.
func NewSource(answers, guessable []string) *Source {
	answers = normalize(answers)
	valid := make(map[string]struct{}, len(answers)+len(guessable))
	for _, w := range answers {
		valid[w] = struct{}{}
	}
	for _, w := range normalize(guessable) {
		valid[w] = struct{}{}
	}
	return &Source{answers: answers, valid: valid}
}

// Load reads the answer pool from answersPath and additional guessable
// words from guessablePath. It fails if either file is unreadable or
// the answer pool ends up empty.
func Load(answersPath, guessablePath string) (*Source, error) {
	answers, err := readWordFile(answersPath)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	guessable, err := readWordFile(guessablePath)
	if err != nil {
		return nil, fmt.Errorf("load guessable words: %w", err)
	}
	if len(answers) == 0 {
		return nil, errors.New("answer list is empty")
	}
	return NewSource(answers, guessable), nil
}

// Fallback returns the built-in word set.
func Fallback() *Source {
	return NewSource(fallbackWords, nil)
}

// RandomAnswer picks a uniformly random word from the answer pool.
func (s *Source) RandomAnswer() string {
	if len(s.answers) == 0 {
		return fallbackWords[0]
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.answers))))
	if err != nil {
		return s.answers[0]
	}
	return s.answers[n.Int64()]
}

// IsValidGuess reports whether word is guessable, case-insensitively.
func (s *Source) IsValidGuess(word string) bool {
	_, ok := s.valid[strings.ToUpper(strings.TrimSpace(word))]
	return ok
}

// Stats returns the answer pool size and the valid-guess set size.
func (s *Source) Stats() (answers, valid int) {
	return len(s.answers), len(s.valid)
}

// GuessPool returns every valid guess word in no particular order.
func (s *Source) GuessPool() []string {
	return lo.Keys(s.valid)
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return normalize(out), sc.Err()
}

// normalize trims, uppercases, and keeps exactly-5-letter A-Z words.
func normalize(list []string) []string {
	return lo.FilterMap(list, func(raw string, _ int) (string, bool) {
		w := strings.ToUpper(strings.TrimSpace(raw))
		return w, len(w) == 5 && isAlpha(w)
	})
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
