package model

import "fmt"

// ConfigurationError is returned when the run parameters cannot describe a valid encoding (e.g. a profession count other than 3 or no candidates)
type ConfigurationError struct {
	Reason string
}

func (err ConfigurationError) Error() string {
	return "configuration error: " + err.Reason
}

// CollisionError is returned by the indexer self-check when two distinct edges share a variable index
type CollisionError struct {
	Index  uint64
	First  Edge
	Second Edge
}

func (err CollisionError) Error() string {
	return fmt.Sprintf("edge index %d assigned twice: %v and %v", err.Index, err.First, err.Second)
}
