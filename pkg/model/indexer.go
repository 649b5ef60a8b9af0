package model

import "fmt"

// Professions is the only profession count the encoding supports
const Professions uint64 = 3

// Canonical order of the profession pairs; the position of a pair is its profession-pair index
var professionPairs = [][2]uint64{{0, 1}, {0, 2}, {1, 2}}

// Edge connects candidate Candidate1 of Profession1 with candidate Candidate2 of Profession2, where Profession1 < Profession2
type Edge struct {
	Profession1 uint64
	Candidate1  uint64
	Profession2 uint64
	Candidate2  uint64
}

func (edge Edge) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", edge.Profession1, edge.Candidate1, edge.Profession2, edge.Candidate2)
}

// EdgeIndexer gives a unique SAT variable to every edge of the tri-partite graph and vice versa
type EdgeIndexer interface {
	// Returns the 1-based variable of the edge. Panics if the professions are not an ordered pair of distinct professions or a candidate is out of range
	Index(profession1, candidate1, profession2, candidate2 uint64) uint64
	// Returns the edge represented by a variable
	Attributes(index uint64) Edge
	// Candidates per profession
	Candidates() uint64
	// Total number of edges, i.e. of variables
	Edges() uint64
}

func NewEdgeIndexer(professions, candidates uint64) (EdgeIndexer, error) {
	if professions != Professions {
		return nil, ConfigurationError{fmt.Sprintf("the edge indexer supports exactly %d professions, got %d", Professions, professions)}
	} else if candidates == 0 {
		return nil, ConfigurationError{"at least one candidate per profession is required"}
	}

	professionPairIndices := make(map[[2]uint64]uint64, len(professionPairs))
	for i, pair := range professionPairs {
		professionPairIndices[pair] = uint64(i)
	}

	return &edgeIndexerImplementation{
		candidates:            candidates,
		professionPairIndices: professionPairIndices,
	}, nil
}
