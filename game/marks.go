// Package game drives rounds of the guessing loop around the solver core:
// it turns user-entered mark strings into feedback, tracks the shrinking
// candidate set, and can play whole games against a known solution.
package game

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mkaeder/wordlemax/solver"
)

// Sentinel marks "no information at this position" in a mark string.
const Sentinel = '_'

// ParseMarks converts the three per-round mark strings into a Feedback.
// Each string must be exactly length characters: a letter at position p in
// the green (resp. yellow) string records that letter as green (resp.
// yellow) at p, the sentinel records nothing. Letters in the gray string
// join the gray set regardless of position; a gray letter that also appears
// green or yellow this round is dropped, since those occurrences are
// already accounted for.
func ParseMarks(green, yellow, gray string, length int) (solver.Feedback, error) {
	greenPairs, err := parsePairs(green, length)
	if err != nil {
		return solver.Feedback{}, fmt.Errorf("green marks: %w", err)
	}
	yellowPairs, err := parsePairs(yellow, length)
	if err != nil {
		return solver.Feedback{}, fmt.Errorf("yellow marks: %w", err)
	}
	grayPairs, err := parsePairs(gray, length)
	if err != nil {
		return solver.Feedback{}, fmt.Errorf("gray marks: %w", err)
	}
	grayLetters := make([]rune, 0, len(grayPairs))
	for _, pl := range grayPairs {
		grayLetters = append(grayLetters, pl.Letter)
	}
	return solver.NewFeedback(greenPairs, yellowPairs, grayLetters), nil
}

func parsePairs(marks string, length int) ([]solver.PositionLetter, error) {
	runes := []rune(strings.TrimSpace(marks))
	if len(runes) != length {
		return nil, fmt.Errorf("%w: got %d characters, want %d", solver.ErrLengthMismatch, len(runes), length)
	}
	var pairs []solver.PositionLetter
	for p, r := range runes {
		switch {
		case r == Sentinel:
		case unicode.IsLetter(r):
			pairs = append(pairs, solver.PositionLetter{Pos: p, Letter: unicode.ToLower(r)})
		default:
			return nil, fmt.Errorf("position %d: %q is neither a letter nor %q", p, r, Sentinel)
		}
	}
	return pairs, nil
}
