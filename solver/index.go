package solver

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Index precomputes, for a fixed candidate list, which words carry which
// letter at which position. A word is represented by its index into words.
//
// positions[p][l] is the set of words with letter l at position p;
// contains[l] is the set of words with at least one l anywhere. With those
// two families of sets the consistency rules become intersections and
// differences, so the scorer can count survivors without testing words one
// by one.
type Index struct {
	words     []Word
	length    int
	positions []map[rune]*bitset.BitSet
	contains  map[rune]*bitset.BitSet
	all       *bitset.BitSet
}

// NewIndex builds an Index over words, which must be non-empty and of
// uniform length.
func NewIndex(words []Word) (*Index, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCandidates
	}
	length := words[0].Len()
	ix := &Index{
		words:     words,
		length:    length,
		positions: make([]map[rune]*bitset.BitSet, length),
		contains:  make(map[rune]*bitset.BitSet),
	}
	for p := range ix.positions {
		ix.positions[p] = make(map[rune]*bitset.BitSet)
	}
	n := uint(len(words))
	for w, word := range words {
		if word.Len() != length {
			return nil, fmt.Errorf("%w: %q in list of %d-letter words", ErrLengthMismatch, word, length)
		}
		for p, l := range word {
			set, ok := ix.positions[p][l]
			if !ok {
				set = bitset.New(n)
				ix.positions[p][l] = set
			}
			set.Set(uint(w))

			all, ok := ix.contains[l]
			if !ok {
				all = bitset.New(n)
				ix.contains[l] = all
			}
			all.Set(uint(w))
		}
	}
	ix.all = bitset.New(n).Complement()
	return ix, nil
}

// Len returns the number of indexed words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// WordLen returns the agreed word length.
func (ix *Index) WordLen() int {
	return ix.length
}

func (ix *Index) empty() *bitset.BitSet {
	return bitset.New(uint(len(ix.words)))
}

// Survivors returns the set of indexed words consistent with the feedback,
// as a bitset over word indices. The result is always a fresh set.
func (ix *Index) Survivors(fb Feedback) *bitset.BitSet {
	ret := ix.all.Clone()

	for _, pl := range fb.Green {
		if pl.Pos < 0 || pl.Pos >= ix.length {
			return ix.empty()
		}
		set, ok := ix.positions[pl.Pos][pl.Letter]
		if !ok {
			return ix.empty()
		}
		ret.InPlaceIntersection(set)
	}

	for _, pl := range fb.Yellow {
		if pl.Pos < 0 || pl.Pos >= ix.length {
			return ix.empty()
		}
		// not at this position
		if set, ok := ix.positions[pl.Pos][pl.Letter]; ok {
			ret.InPlaceDifference(set)
		}
		// but somewhere
		set, ok := ix.contains[pl.Letter]
		if !ok {
			return ix.empty()
		}
		ret.InPlaceIntersection(set)
	}

	if fb.Gray != nil {
		fb.Gray.Each(func(item interface{}) bool {
			if set, ok := ix.contains[item.(rune)]; ok {
				ret.InPlaceDifference(set)
			}
			return false
		})
	}
	return ret
}

// CountSurvivors returns the number of indexed words consistent with the
// feedback.
func (ix *Index) CountSurvivors(fb Feedback) int {
	return int(ix.Survivors(fb).Count())
}

// SurvivorWords materializes Survivors back into words, preserving the
// index order.
func (ix *Index) SurvivorWords(fb Feedback) []Word {
	set := ix.Survivors(fb)
	indices := make([]uint, set.Count())
	set.NextSetMany(0, indices)
	ret := make([]Word, len(indices))
	for i, index := range indices {
		ret[i] = ix.words[index]
	}
	return ret
}
