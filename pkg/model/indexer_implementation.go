package model

import "log"

type edgeIndexerImplementation struct {
	candidates            uint64
	professionPairIndices map[[2]uint64]uint64
}

func (indexer *edgeIndexerImplementation) Index(profession1, candidate1, profession2, candidate2 uint64) uint64 {
	if candidate1 >= indexer.candidates || candidate2 >= indexer.candidates {
		log.Panicf("candidate out of range [0, %d): (%d,%d)-(%d,%d)", indexer.candidates, profession1, candidate1, profession2, candidate2)
	}
	candidatePairs := indexer.candidates * indexer.candidates
	return indexer.professionPairIndex(profession1, profession2)*candidatePairs + indexer.candidatePairIndex(candidate1, candidate2) + 1
}

func (indexer *edgeIndexerImplementation) Attributes(index uint64) Edge {
	if index == 0 || index > indexer.Edges() {
		log.Panicf("edge index %d out of range [1, %d]", index, indexer.Edges())
	}
	candidatePairs := indexer.candidates * indexer.candidates

	index = index - 1
	pair := professionPairs[index/candidatePairs]
	index = index % candidatePairs

	return Edge{
		Profession1: pair[0],
		Candidate1:  index / indexer.candidates,
		Profession2: pair[1],
		Candidate2:  index % indexer.candidates,
	}
}

func (indexer *edgeIndexerImplementation) Candidates() uint64 {
	return indexer.candidates
}

func (indexer *edgeIndexerImplementation) Edges() uint64 {
	return uint64(len(professionPairs)) * indexer.candidates * indexer.candidates
}

func (indexer *edgeIndexerImplementation) professionPairIndex(profession1, profession2 uint64) uint64 {
	index, ok := indexer.professionPairIndices[[2]uint64{profession1, profession2}]
	if !ok {
		log.Panicf("(%d, %d) is not an ordered pair of distinct professions", profession1, profession2)
	}
	return index
}

// Row-major and ordered: the first profession of the pair selects the row
func (indexer *edgeIndexerImplementation) candidatePairIndex(candidate1, candidate2 uint64) uint64 {
	return candidate1*indexer.candidates + candidate2
}
