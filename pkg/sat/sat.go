package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder) // strings.Builder never fails on write
	return builder.String()
}

// WriteDIMACS streams the instance in DIMACS-CNF format: a "p cnf" header followed by one zero-terminated clause per line
func (s SAT) WriteDIMACS(w io.Writer) error {
	writer := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(writer, "p cnf %d %d\n", s.Variables, len(s.Clauses)); err != nil {
		return fmt.Errorf("cannot write DIMACS header: %w", err)
	}

	buffer := make([]byte, 0, 64)
	for i, clause := range s.Clauses {
		buffer = buffer[:0]
		for _, literal := range clause {
			buffer = strconv.AppendInt(buffer, literal, 10)
			buffer = append(buffer, ' ')
		}
		buffer = append(buffer, '0', '\n')
		if _, err := writer.Write(buffer); err != nil {
			return fmt.Errorf("cannot write clause %d: %w", i, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("cannot flush DIMACS output: %w", err)
	}
	return nil
}
