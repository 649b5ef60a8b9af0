package model

import "fmt"

// VerifyIndexer exhaustively checks that the indexer maps the edges of every profession pair one-to-one onto [1, Edges()].
// It returns a CollisionError naming both edges when two of them share an index
func VerifyIndexer(indexer EdgeIndexer) error {
	candidates := indexer.Candidates()
	witnesses := make(map[uint64]Edge, indexer.Edges())

	for _, pair := range professionPairs {
		for candidate1 := range candidates {
			for candidate2 := range candidates {
				edge := Edge{pair[0], candidate1, pair[1], candidate2}
				index := indexer.Index(edge.Profession1, edge.Candidate1, edge.Profession2, edge.Candidate2)

				if previous, ok := witnesses[index]; ok {
					return CollisionError{Index: index, First: previous, Second: edge}
				} else if index == 0 || index > indexer.Edges() {
					return fmt.Errorf("edge %v has index %d outside [1, %d]", edge, index, indexer.Edges())
				}
				witnesses[index] = edge
			}
		}
	}

	if uint64(len(witnesses)) != indexer.Edges() {
		return fmt.Errorf("%d edges were indexed but the indexer declares %d", len(witnesses), indexer.Edges())
	}
	return nil
}
