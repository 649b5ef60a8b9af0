package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Upper bound on the clause slice reserved from the problem line, which is not trusted
const maxPreallocatedClauses = 1 << 16

type malformedError struct {
	line   int
	reason string
}

func (err malformedError) Error() string {
	return fmt.Sprintf("malformed DIMACS at line %d: %v", err.line, err.reason)
}

// ParseDIMACS reads a DIMACS-CNF instance. Comment lines are skipped and the clause count must match the problem line
func ParseDIMACS(r io.Reader) (SAT, error) {
	var (
		sat             SAT
		declaredClauses uint64
		headerSeen      bool
		lineNumber      int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		// Skip comments
		if strings.HasPrefix(line, "c") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p cnf") {
			if headerSeen {
				return SAT{}, malformedError{lineNumber, "duplicated problem line"}
			}
			parts := strings.Fields(line)
			if len(parts) != 4 {
				return SAT{}, malformedError{lineNumber, fmt.Sprintf("invalid problem line: %s", line)}
			}
			vars, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, malformedError{lineNumber, fmt.Sprintf("invalid variable count: %v", err)}
			}
			clauses, err := strconv.ParseUint(parts[3], 10, 64)
			if err != nil {
				return SAT{}, malformedError{lineNumber, fmt.Sprintf("invalid clause count: %v", err)}
			}
			sat.Variables = vars
			sat.Clauses = make([][]int64, 0, min(clauses, maxPreallocatedClauses))
			declaredClauses = clauses
			headerSeen = true
			continue
		}
		// Clause line
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !headerSeen {
			return SAT{}, malformedError{lineNumber, "clause found before problem line"}
		}
		if fields[len(fields)-1] != "0" {
			return SAT{}, malformedError{lineNumber, "clause is not terminated by 0"}
		}

		clause := make([]int64, 0, len(fields)-1)
		for _, literalStr := range fields[:len(fields)-1] {
			literal, err := strconv.ParseInt(literalStr, 10, 64)
			if err != nil {
				return SAT{}, malformedError{lineNumber, fmt.Sprintf("invalid literal '%s': %v", literalStr, err)}
			}
			if literal == 0 {
				return SAT{}, malformedError{lineNumber, "unexpected 0 inside clause"}
			}
			clause = append(clause, literal)
		}
		sat.Clauses = append(sat.Clauses, clause)
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("error reading DIMACS input: %w", err)
	}
	if !headerSeen {
		return SAT{}, malformedError{lineNumber, "missing problem line"}
	}
	if uint64(len(sat.Clauses)) != declaredClauses {
		return SAT{}, malformedError{lineNumber, fmt.Sprintf("problem line declares %d clauses but %d were found", declaredClauses, len(sat.Clauses))}
	}

	return sat, nil
}

// Validate reports the first structural defect of the instance: an empty clause, a literal out of [1, Variables] or a variable repeated inside a clause
func Validate(sat SAT) error {
	for i, clause := range sat.Clauses {
		if len(clause) == 0 {
			return fmt.Errorf("clause %d is empty", i)
		}

		outOfRange, ok := lo.Find(clause, func(literal int64) bool {
			return literal == 0 || uint64(abs(literal)) > sat.Variables
		})
		if ok {
			return fmt.Errorf("clause %d references literal %d outside [1, %d]", i, outOfRange, sat.Variables)
		}

		variables := lo.Map(clause, func(literal int64, _ int) int64 { return abs(literal) })
		if duplicates := lo.FindDuplicates(variables); len(duplicates) > 0 {
			return fmt.Errorf("clause %d repeats variable %d", i, duplicates[0])
		}
	}
	return nil
}

func abs(literal int64) int64 {
	if literal < 0 {
		return -literal
	}
	return literal
}
