package model

import (
	"fmt"
	"io"
	"log"

	"github.com/erelsgl/sat/pkg/sat"
)

// Encoder builds the CNF formula that is satisfiable if and only if there is a tri-partite graph with the given number of candidates per profession
// in which every two triples of candidates of different professions are connected, yet no three candidates of distinct professions form a triangle
type Encoder interface {
	Build(candidates uint64) (sat.SAT, error)

	Verify(instance sat.SAT, candidates uint64) bool
}

type teamEncoder struct {
	professions uint64
	logger      *log.Logger
}

// NewTeamEncoder returns an encoder for the given configuration. Diagnostics are written to logger; a nil logger discards them
func NewTeamEncoder(config Config, logger *log.Logger) (Encoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &teamEncoder{
		professions: config.Professions,
		logger:      logger,
	}, nil
}

func (encoder *teamEncoder) Build(candidates uint64) (sat.SAT, error) {
	indexer, err := NewEdgeIndexer(encoder.professions, candidates)
	if err != nil {
		return sat.SAT{}, err
	}
	encoder.logger.Printf("%v professions, %v candidates per profession, %v edges between candidates of two professions, %v total edges",
		encoder.professions, candidates, candidates*candidates, indexer.Edges())

	if err := VerifyIndexer(indexer); err != nil {
		return sat.SAT{}, fmt.Errorf("edge indexer self-check failed: %w", err)
	}
	encoder.logger.Print("Edge test: OK")

	state := constraintState{
		indexer:    indexer,
		candidates: candidates,
	}

	clauses := make([][]int64, 0, ExpectedClauses(candidates))
	clauses = coverageClauses(state, clauses)
	clauses = noCliqueClauses(state, clauses)
	encoder.logger.Printf("%v clauses", len(clauses))

	return sat.SAT{
		Variables: indexer.Edges(),
		Clauses:   clauses,
	}, nil
}

func (encoder *teamEncoder) Verify(instance sat.SAT, candidates uint64) bool {
	if candidates == 0 {
		return false
	} else if instance.Variables != ExpectedVariables(candidates) {
		encoder.logger.Printf("expected %v variables, the formula declares %v", ExpectedVariables(candidates), instance.Variables)
		return false
	} else if uint64(len(instance.Clauses)) != ExpectedClauses(candidates) {
		encoder.logger.Printf("expected %v clauses, the formula has %v", ExpectedClauses(candidates), len(instance.Clauses))
		return false
	} else if err := sat.Validate(instance); err != nil {
		encoder.logger.Printf("invalid formula: %v", err)
		return false
	}
	return true
}

// ExpectedVariables returns 3·N², one variable per edge
func ExpectedVariables(candidates uint64) uint64 {
	return uint64(len(professionPairs)) * candidates * candidates
}

// ExpectedClauses returns 3·C(N,3)² coverage clauses plus N³ no-clique clauses
func ExpectedClauses(candidates uint64) uint64 {
	triples := Binomial(candidates, groupSize)
	return uint64(len(professionPairs))*triples*triples + candidates*candidates*candidates
}
