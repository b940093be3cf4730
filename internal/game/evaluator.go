package game

// Verdict is the per-letter outcome of comparing a guess to the answer.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictPresent Verdict = "present"
	VerdictAbsent  Verdict = "absent"
	// VerdictUnknown is used only by KeyboardState for letters never guessed.
	VerdictUnknown Verdict = "unknown"
)

// WordLength is the fixed length of answers and guesses.
const WordLength = 5

// Evaluate scores guess against answer with the standard two-pass
// algorithm. Both inputs must be WordLength uppercase A-Z strings.
//
// Pass 1 marks exact matches and consumes those answer letters. Pass 2
// resolves the rest left to right: a letter is present only while
// unconsumed occurrences remain in the answer, so duplicates in the
// guess never earn more marks than the answer holds.
func Evaluate(guess, answer string) []Verdict {
	result := make([]Verdict, WordLength)

	// Unconsumed answer letters by index A-Z.
	var remaining [26]int
	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			result[i] = VerdictCorrect
		} else {
			remaining[answer[i]-'A']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i] == VerdictCorrect {
			continue
		}
		j := int(guess[i] - 'A')
		if j >= 0 && j < 26 && remaining[j] > 0 {
			result[i] = VerdictPresent
			remaining[j]--
		} else {
			result[i] = VerdictAbsent
		}
	}
	return result
}

// IsWin reports whether every verdict is correct.
func IsWin(verdicts []Verdict) bool {
	for _, v := range verdicts {
		if v != VerdictCorrect {
			return false
		}
	}
	return len(verdicts) == WordLength
}

// KeyboardState folds Evaluate over past guesses, producing each
// letter's best-seen verdict. A letter known correct is never
// downgraded, and a letter known present is not downgraded to absent
// by a later evaluation of the same letter.
func KeyboardState(guesses []string, answer string) map[string]Verdict {
	state := make(map[string]Verdict)
	for _, guess := range guesses {
		verdicts := Evaluate(guess, answer)
		for i := 0; i < len(guess) && i < WordLength; i++ {
			letter := string(guess[i])
			current := state[letter]
			next := verdicts[i]

			if current == VerdictCorrect {
				continue
			}
			if current == VerdictPresent && next == VerdictAbsent {
				continue
			}
			state[letter] = next
		}
	}
	return state
}
