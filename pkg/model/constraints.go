package model

import (
	"slices"

	"github.com/samber/lo"
)

// Size of the candidate groups that must always be connected by at least one edge
const groupSize uint64 = 3

type constraintState struct {
	indexer EdgeIndexer

	candidates uint64
}

// For every pair of professions and every two triples of candidates (one triple per profession) at least one of the 9 edges between the triples exists.
// Clauses are appended to the given slice, which is returned
func coverageClauses(state constraintState, clauses [][]int64) [][]int64 {
	triples := slices.Collect(Combinations(state.candidates, groupSize))

	for _, pair := range professionPairs {
		profession1, profession2 := pair[0], pair[1]
		for _, triple1 := range triples {
			for _, triple2 := range triples {
				clause := lo.FlatMap(triple1, func(candidate1 uint64, _ int) []int64 {
					return lo.Map(triple2, func(candidate2 uint64, _ int) int64 {
						return int64(state.indexer.Index(profession1, candidate1, profession2, candidate2))
					})
				})
				clauses = append(clauses, clause)
			}
		}
	}

	return clauses
}

// For every candidate of profession 0, 1 and 2 respectively, not all three edges among them exist.
// Clauses are appended to the given slice, which is returned
func noCliqueClauses(state constraintState, clauses [][]int64) [][]int64 {
	for candidate0 := range state.candidates {
		for candidate1 := range state.candidates {
			for candidate2 := range state.candidates {
				team := [Professions]uint64{candidate0, candidate1, candidate2}
				clause := lo.Map(professionPairs, func(pair [2]uint64, _ int) int64 {
					return -int64(state.indexer.Index(pair[0], team[pair[0]], pair[1], team[pair[1]]))
				})
				clauses = append(clauses, clause)
			}
		}
	}

	return clauses
}
