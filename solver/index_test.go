package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRejectsBadInput(t *testing.T) {
	_, err := NewIndex(nil)
	assert.ErrorIs(t, err, ErrEmptyCandidates)

	_, err = NewIndex([]Word{"apple", "go"})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

// The bitset index is an algebraic form of the four consistency rules;
// for every (solution, guess) pair it must survive exactly the words the
// predicate keeps, in the same order.
func TestIndexMatchesPredicate(t *testing.T) {
	ix, err := NewIndex(testDictionary)
	require.NoError(t, err)

	for _, soln := range testDictionary {
		for _, guess := range testDictionary {
			fb, err := GenerateFeedback(soln, guess)
			require.NoError(t, err)

			want, err := FilterSlice(testDictionary, fb)
			require.NoError(t, err)
			assert.Equal(t, want, ix.SurvivorWords(fb),
				"solution %q guess %q", soln, guess)
			assert.Equal(t, len(want), ix.CountSurvivors(fb))
		}
	}
}

func TestIndexHandcraftedFeedback(t *testing.T) {
	ix, err := NewIndex(testDictionary)
	require.NoError(t, err)

	// a green letter no word carries at that position
	fb := NewFeedback([]PositionLetter{{Pos: 0, Letter: 'z'}}, nil, nil)
	assert.Equal(t, 0, ix.CountSurvivors(fb))

	// a yellow letter absent from the whole dictionary
	fb = NewFeedback(nil, []PositionLetter{{Pos: 1, Letter: 'z'}}, nil)
	assert.Equal(t, 0, ix.CountSurvivors(fb))

	// a gray letter absent from the whole dictionary eliminates nothing
	fb = NewFeedback(nil, nil, []rune{'z'})
	assert.Equal(t, len(testDictionary), ix.CountSurvivors(fb))
}

func TestIndexSurvivorsIsFresh(t *testing.T) {
	ix, err := NewIndex(testDictionary)
	require.NoError(t, err)

	fb := NewFeedback(nil, nil, []rune{'s'})
	first := ix.CountSurvivors(fb)
	// the empty feedback must still see every word afterwards
	assert.Equal(t, len(testDictionary), ix.CountSurvivors(Feedback{}))
	assert.Equal(t, first, ix.CountSurvivors(fb))
}
