// Package solver implements the feedback, filtering and minimax machinery
// for recommending Wordle guesses.
//
// A guess is scored by the size of the largest candidate set an adversarial
// solution could leave behind; the recommended guess minimizes that worst
// case. The word length is whatever the loaded word list agrees on, it is
// never assumed to be five.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports a word or feedback pair that disagrees with
	// the agreed word length.
	ErrLengthMismatch = errors.New("word length mismatch")
	// ErrEmptyCandidates reports scoring or selection over an empty
	// candidate set.
	ErrEmptyCandidates = errors.New("empty candidate set")
	// ErrEmptyGuessPool reports selection over an empty guess pool.
	ErrEmptyGuessPool = errors.New("empty guess pool")
)

// Word is one dictionary entry. Words are immutable once loaded and all
// words in one run share the same length.
type Word string

// Len returns the number of letters in the word.
func (w Word) Len() int {
	return len(w)
}

// Letter returns the letter at position p.
func (w Word) Letter(p int) rune {
	return rune(w[p])
}

func sameLength(a, b Word) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, a, b)
	}
	return nil
}

// WordsFromStrings converts a slice of strings into Words.
func WordsFromStrings(ss []string) []Word {
	ret := make([]Word, 0, len(ss))
	for _, s := range ss {
		ret = append(ret, Word(s))
	}
	return ret
}

// WordsToStrings converts a slice of Words back into strings.
func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, w := range words {
		ret = append(ret, string(w))
	}
	return ret
}
