package solver

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// Bound is an optional upper bound threaded through the minimax search:
// either "no bound yet" (the zero value) or "the best known worst case is
// Max".
type Bound struct {
	ok  bool
	max int
}

// NoBound reports no incumbent score.
func NoBound() Bound {
	return Bound{}
}

// BoundOf reports an incumbent worst case of n.
func BoundOf(n int) Bound {
	return Bound{ok: true, max: n}
}

// Exceeded reports whether n proves a guess worse than the incumbent.
func (b Bound) Exceeded(n int) bool {
	return b.ok && n > b.max
}

// Progress is called after each guess in the pool has been scored. It is
// the hook for terminal progress reporting; the solver itself never prints.
// The parallel selector calls it from worker goroutines.
type Progress func(scored, total int)

// ScoreGuess returns the worst-case candidate count remaining after playing
// guess: for every candidate taken as the true solution, the survivors of
// that solution's feedback are counted, and the maximum wins.
//
// If bound is set and some solution leaves more than bound survivors, that
// count is returned immediately. It is then only a lower bound on the true
// score, but enough for the caller to discard the guess.
func ScoreGuess(candidates []Word, guess Word, bound Bound) (int, error) {
	ix, err := NewIndex(candidates)
	if err != nil {
		return 0, err
	}
	return scoreWithIndex(ix, candidates, guess, bound)
}

func scoreWithIndex(ix *Index, candidates []Word, guess Word, bound Bound) (int, error) {
	worst := 0
	for _, soln := range candidates {
		fb, err := GenerateFeedback(soln, guess)
		if err != nil {
			return 0, err
		}
		remaining := ix.CountSurvivors(fb)
		if remaining > worst {
			worst = remaining
		}
		if bound.Exceeded(remaining) {
			return remaining, nil
		}
	}
	return worst, nil
}

// SelectGuess scans pool in order and returns the guess minimizing
// ScoreGuess over candidates, with its score. The incumbent best score is
// threaded into each ScoreGuess call so dominated guesses abort early;
// without that the scan is O(|pool| x |candidates|^2) and intractable for
// real dictionaries. Ties keep the first guess encountered, so the result
// is deterministic. progress may be nil.
func SelectGuess(pool, candidates []Word, progress Progress) (Word, int, error) {
	if len(pool) == 0 {
		return "", 0, ErrEmptyGuessPool
	}
	ix, err := NewIndex(candidates)
	if err != nil {
		return "", 0, err
	}

	best := NoBound()
	var bestGuess Word
	for i, guess := range pool {
		score, err := scoreWithIndex(ix, candidates, guess, best)
		if err != nil {
			return "", 0, err
		}
		if !best.ok || score < best.max {
			best = BoundOf(score)
			bestGuess = guess
		}
		if progress != nil {
			progress(i+1, len(pool))
		}
	}
	return bestGuess, best.max, nil
}

// SelectGuessParallel is SelectGuess fanned out over workers goroutines.
//
// The incumbent bound is shared as a monotonically decreasing atomic. A
// stale read only makes a worker do extra work, never changes the outcome:
// a pruned guess reported score strictly above the bound it observed, and
// the shared bound never rises, so pruned guesses can never tie the final
// minimax. The reduction picks the lowest-indexed minimum, giving the same
// answer as the sequential scan. progress, if non-nil, must be safe to call
// concurrently.
func SelectGuessParallel(pool, candidates []Word, workers int, progress Progress) (Word, int, error) {
	if workers <= 1 || len(pool) < 2 {
		return SelectGuess(pool, candidates, progress)
	}
	ix, err := NewIndex(candidates)
	if err != nil {
		return "", 0, err
	}
	for _, guess := range pool {
		if guess.Len() != ix.WordLen() {
			return "", 0, fmt.Errorf("%w: guess %q in pool of %d-letter words", ErrLengthMismatch, guess, ix.WordLen())
		}
	}
	if workers > len(pool) {
		workers = len(pool)
	}

	var shared atomic.Int64
	shared.Store(math.MaxInt64)
	var scored atomic.Int64
	scores := make([]int, len(pool))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				bound := NoBound()
				if cur := shared.Load(); cur != math.MaxInt64 {
					bound = BoundOf(int(cur))
				}
				// pool and candidates are uniform length, so the only error
				// path was ruled out above
				score, _ := scoreWithIndex(ix, candidates, pool[i], bound)
				scores[i] = score
				for {
					cur := shared.Load()
					if int64(score) >= cur || shared.CompareAndSwap(cur, int64(score)) {
						break
					}
				}
				if progress != nil {
					progress(int(scored.Add(1)), len(pool))
				}
			}
		}()
	}
	for i := range pool {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	bestGuess, bestScore := pool[0], scores[0]
	for i, score := range scores {
		if score < bestScore {
			bestGuess, bestScore = pool[i], score
		}
	}
	return bestGuess, bestScore, nil
}
