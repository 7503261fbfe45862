package solver

import (
	"fmt"
	"iter"
)

// Consistent reports whether word could still be the solution given the
// feedback. All four rules must hold:
//
//   - every green pair's letter matches word at that position,
//   - no yellow pair's letter sits at that pair's position,
//   - every distinct yellow letter occurs somewhere in word,
//   - no gray letter occurs anywhere in word.
//
// A pair referencing a position outside the word is a precondition
// violation and returns ErrLengthMismatch.
func Consistent(word Word, fb Feedback) (bool, error) {
	for _, pl := range fb.Green {
		if pl.Pos < 0 || pl.Pos >= word.Len() {
			return false, fmt.Errorf("%w: green position %d for %q", ErrLengthMismatch, pl.Pos, word)
		}
		if word.Letter(pl.Pos) != pl.Letter {
			return false, nil
		}
	}
	for _, pl := range fb.Yellow {
		if pl.Pos < 0 || pl.Pos >= word.Len() {
			return false, fmt.Errorf("%w: yellow position %d for %q", ErrLengthMismatch, pl.Pos, word)
		}
		if word.Letter(pl.Pos) == pl.Letter {
			return false, nil
		}
		if !contains(word, pl.Letter) {
			return false, nil
		}
	}
	if fb.Gray != nil {
		for _, l := range word {
			if fb.Gray.Contains(l) {
				return false, nil
			}
		}
	}
	return true, nil
}

func contains(word Word, letter rune) bool {
	for _, l := range word {
		if l == letter {
			return true
		}
	}
	return false
}

// Filter yields the candidates consistent with the feedback, in order.
// The sequence is restartable: ranging over it again re-runs the filter.
// A candidate whose length does not match the feedback's positions can
// never be the solution and is skipped.
func Filter(candidates []Word, fb Feedback) iter.Seq[Word] {
	return func(yield func(Word) bool) {
		for _, w := range candidates {
			ok, err := Consistent(w, fb)
			if err != nil || !ok {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// FilterSlice materializes Filter, surfacing length violations as errors.
func FilterSlice(candidates []Word, fb Feedback) ([]Word, error) {
	ret := make([]Word, 0, len(candidates))
	for _, w := range candidates {
		ok, err := Consistent(w, fb)
		if err != nil {
			return nil, err
		}
		if ok {
			ret = append(ret, w)
		}
	}
	return ret, nil
}
