package game

import (
	"fmt"

	"github.com/mkaeder/wordlemax/solver"
)

// Session tracks one puzzle: the fixed guess pool and the candidate set
// that shrinks as feedback arrives. The candidate slice is replaced, never
// edited in place, so feedback application cannot corrupt a previous state.
type Session struct {
	pool       []solver.Word
	candidates []solver.Word
	workers    int
}

// NewSession starts a session guessing from pool with solutions as the
// initial candidate set. Passing the same list for both is the common case.
func NewSession(pool, solutions []solver.Word) *Session {
	return &Session{pool: pool, candidates: solutions, workers: 1}
}

// SetWorkers makes Recommend fan the minimax scan out over n goroutines.
func (s *Session) SetWorkers(n int) {
	s.workers = n
}

// Candidates returns the current candidate set.
func (s *Session) Candidates() []solver.Word {
	return s.candidates
}

// Remaining returns the current candidate count.
func (s *Session) Remaining() int {
	return len(s.candidates)
}

// WordLen returns the agreed word length.
func (s *Session) WordLen() int {
	if len(s.pool) == 0 {
		return 0
	}
	return s.pool[0].Len()
}

// Recommend returns the minimax guess for the current candidates and its
// worst-case score. progress may be nil.
func (s *Session) Recommend(progress solver.Progress) (solver.Word, int, error) {
	if s.Remaining() == 1 {
		// nothing left to distinguish, guess the answer
		return s.candidates[0], 1, nil
	}
	return solver.SelectGuessParallel(s.pool, s.candidates, s.workers, progress)
}

// ApplyFeedback narrows the candidate set to the words consistent with fb
// and returns the new count. A count of zero means the feedback entered so
// far is self-contradictory and the puzzle is impossible.
func (s *Session) ApplyFeedback(fb solver.Feedback) (int, error) {
	next, err := solver.FilterSlice(s.candidates, fb)
	if err != nil {
		return 0, err
	}
	s.candidates = next
	return len(next), nil
}

// Solved returns the answer when exactly one candidate remains.
func (s *Session) Solved() (solver.Word, bool) {
	if len(s.candidates) == 1 {
		return s.candidates[0], true
	}
	return "", false
}

// Impossible reports a contradicted, empty candidate set.
func (s *Session) Impossible() bool {
	return len(s.candidates) == 0
}

// Simulate plays a whole game against a known solution, generating the
// feedback for each recommended guess itself. opening, when non-empty, is
// played first in place of the expensive opening search. It returns the
// guesses played and whether the solution was reached within maxRounds.
func Simulate(pool, solutions []solver.Word, solution, opening solver.Word, maxRounds, workers int) ([]solver.Word, bool, error) {
	s := NewSession(pool, solutions)
	s.SetWorkers(workers)
	var guesses []solver.Word
	for round := 0; round < maxRounds; round++ {
		var guess solver.Word
		if round == 0 && opening != "" {
			guess = opening
		} else {
			next, _, err := s.Recommend(nil)
			if err != nil {
				return guesses, false, err
			}
			guess = next
		}
		guesses = append(guesses, guess)
		if guess == solution {
			return guesses, true, nil
		}
		fb, err := solver.GenerateFeedback(solution, guess)
		if err != nil {
			return guesses, false, err
		}
		remaining, err := s.ApplyFeedback(fb)
		if err != nil {
			return guesses, false, err
		}
		if remaining == 0 {
			return guesses, false, fmt.Errorf("no candidates left for %q, is it in the word list?", solution)
		}
	}
	return guesses, false, nil
}
