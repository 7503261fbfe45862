package solver

import (
	mapset "github.com/deckarep/golang-set"
)

// PositionLetter ties a letter to a position in the word. It is the unit of
// green and yellow evidence.
type PositionLetter struct {
	Pos    int
	Letter rune
}

// Feedback is the colored response to one guess against one solution.
//
// A position appears in at most one of Green and Yellow. Gray holds letters
// with no unaccounted occurrences in the solution; a letter that appears in
// a green or yellow pair is never in Gray, even when a further duplicate
// occurrence of it in the guess came up gray on the board. Collapsing those
// duplicates into a plain set loses "present at most n times" information
// for 3+ repeats, which slightly loosens filtering but never drops the true
// solution.
type Feedback struct {
	Green  []PositionLetter
	Yellow []PositionLetter
	Gray   mapset.Set
}

// NewFeedback builds a Feedback from explicit pairs and gray letters,
// dropping any gray letter that also appears green or yellow.
func NewFeedback(green, yellow []PositionLetter, gray []rune) Feedback {
	accounted := make(map[rune]bool, len(green)+len(yellow))
	for _, pl := range green {
		accounted[pl.Letter] = true
	}
	for _, pl := range yellow {
		accounted[pl.Letter] = true
	}
	graySet := mapset.NewThreadUnsafeSet()
	for _, l := range gray {
		if !accounted[l] {
			graySet.Add(l)
		}
	}
	return Feedback{Green: green, Yellow: yellow, Gray: graySet}
}

// GenerateFeedback computes the feedback for guessing guess when the
// solution is solution.
//
// Greens are found first, left to right, each consuming one occurrence of
// its letter from the solution's letter counts. Yellows are then found left
// to right against the remaining counts, so a repeated guess letter only
// turns yellow while the solution still has unconsumed copies; any further
// occurrence is gray. This is the standard duplicate-letter rule.
func GenerateFeedback(solution, guess Word) (Feedback, error) {
	if err := sameLength(solution, guess); err != nil {
		return Feedback{}, err
	}

	counts := make(map[rune]int, solution.Len())
	for _, l := range solution {
		counts[l]++
	}

	marked := make([]bool, guess.Len())
	var green []PositionLetter
	for p, l := range guess {
		if solution.Letter(p) == l {
			green = append(green, PositionLetter{Pos: p, Letter: l})
			counts[l]--
			marked[p] = true
		}
	}

	var yellow []PositionLetter
	for p, l := range guess {
		if marked[p] {
			continue
		}
		if counts[l] > 0 {
			yellow = append(yellow, PositionLetter{Pos: p, Letter: l})
			counts[l]--
			marked[p] = true
		}
	}

	var gray []rune
	for p, l := range guess {
		if !marked[p] {
			gray = append(gray, l)
		}
	}
	return NewFeedback(green, yellow, gray), nil
}
