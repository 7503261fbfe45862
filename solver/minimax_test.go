package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hand-computed worst cases over {apple, angle, aisle}:
//
//	guess angle: soln apple -> {apple, aisle}; soln angle -> {angle};
//	             soln aisle -> {apple, aisle}; worst 2
//	guess apple: soln angle and aisle both leave {angle, aisle}; worst 2
//	guess aisle: soln apple and angle both leave {apple, angle}; worst 2
func TestScoreGuessHandComputed(t *testing.T) {
	dictionary := []Word{"apple", "angle", "aisle"}
	for _, guess := range dictionary {
		score, err := ScoreGuess(dictionary, guess, NoBound())
		require.NoError(t, err)
		assert.Equal(t, 2, score, "guess %q", guess)
	}
}

func TestScoreGuessEmptyCandidates(t *testing.T) {
	_, err := ScoreGuess(nil, "apple", NoBound())
	assert.ErrorIs(t, err, ErrEmptyCandidates)
}

func TestScoreGuessBound(t *testing.T) {
	dictionary := []Word{"apple", "angle", "aisle"}

	// a generous bound changes nothing
	score, err := ScoreGuess(dictionary, "angle", BoundOf(5))
	require.NoError(t, err)
	assert.Equal(t, 2, score)

	// a beaten bound returns a lower bound on the true score, still large
	// enough for the caller to discard the guess
	score, err = ScoreGuess(dictionary, "angle", BoundOf(1))
	require.NoError(t, err)
	assert.Greater(t, score, 1)
}

func TestSelectGuessFirstEncounteredWinsTies(t *testing.T) {
	dictionary := []Word{"apple", "angle", "aisle"}
	guess, score, err := SelectGuess(dictionary, dictionary, nil)
	require.NoError(t, err)
	assert.Equal(t, Word("apple"), guess)
	assert.Equal(t, 2, score)
}

func TestSelectGuessDeterministic(t *testing.T) {
	guess1, score1, err := SelectGuess(testDictionary, testDictionary, nil)
	require.NoError(t, err)
	guess2, score2, err := SelectGuess(testDictionary, testDictionary, nil)
	require.NoError(t, err)
	assert.Equal(t, guess1, guess2)
	assert.Equal(t, score1, score2)
}

func TestSelectGuessEmptyInputs(t *testing.T) {
	_, _, err := SelectGuess(nil, testDictionary, nil)
	assert.ErrorIs(t, err, ErrEmptyGuessPool)

	_, _, err = SelectGuess(testDictionary, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCandidates)

	_, _, err = SelectGuessParallel(nil, testDictionary, 4, nil)
	assert.ErrorIs(t, err, ErrEmptyGuessPool)

	_, _, err = SelectGuessParallel(testDictionary, nil, 4, nil)
	assert.ErrorIs(t, err, ErrEmptyCandidates)
}

func TestSelectGuessProgress(t *testing.T) {
	var calls int
	var lastScored, lastTotal int
	_, _, err := SelectGuess(testDictionary, testDictionary, func(scored, total int) {
		calls++
		lastScored, lastTotal = scored, total
	})
	require.NoError(t, err)
	assert.Equal(t, len(testDictionary), calls)
	assert.Equal(t, len(testDictionary), lastScored)
	assert.Equal(t, len(testDictionary), lastTotal)
}

func TestSelectGuessParallelMatchesSequential(t *testing.T) {
	wantGuess, wantScore, err := SelectGuess(testDictionary, testDictionary, nil)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 4, 32} {
		guess, score, err := SelectGuessParallel(testDictionary, testDictionary, workers, nil)
		require.NoError(t, err)
		assert.Equal(t, wantGuess, guess, "workers=%d", workers)
		assert.Equal(t, wantScore, score, "workers=%d", workers)
	}
}

func TestSelectGuessParallelLengthMismatch(t *testing.T) {
	pool := append([]Word{"go"}, testDictionary...)
	_, _, err := SelectGuessParallel(pool, testDictionary, 4, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

// The recommended guess must never make things worse: after any solution's
// feedback, the surviving set is at most the selector's reported worst case.
func TestSelectGuessScoreIsAchieved(t *testing.T) {
	guess, score, err := SelectGuess(testDictionary, testDictionary, nil)
	require.NoError(t, err)

	worst := 0
	for _, soln := range testDictionary {
		fb, err := GenerateFeedback(soln, guess)
		require.NoError(t, err)
		remaining, err := FilterSlice(testDictionary, fb)
		require.NoError(t, err)
		if len(remaining) > worst {
			worst = len(remaining)
		}
	}
	assert.Equal(t, score, worst)
}

func BenchmarkSelectGuess(b *testing.B) {
	for b.Loop() {
		_, _, err := SelectGuess(testDictionary, testDictionary, nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectGuessParallel(b *testing.B) {
	for b.Loop() {
		_, _, err := SelectGuessParallel(testDictionary, testDictionary, 4, nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}
