package sat

import "github.com/samber/lo"

// SolutionFromAssignment turns a truth assignment indexed by variable (assignment[0] is variable 1) into a complete solution
func SolutionFromAssignment(assignment []bool) SATSolution {
	return lo.Map(assignment, func(value bool, i int) int64 {
		if value {
			return int64(i + 1)
		}
		return -int64(i + 1)
	})
}

// Satisfies reports whether the solution is consistent (no variable listed twice, with either sign) and makes every clause of the instance true.
// Variables absent from the solution are unassigned, so a clause only holds when one of its literals is listed explicitly
func Satisfies(instance SAT, solution SATSolution) bool {
	assigned := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if _, ok := assigned[abs(literal)]; ok {
			return false
		}
		assigned[abs(literal)] = literal > 0
	}

	return lo.EveryBy(instance.Clauses, func(clause []int64) bool {
		return lo.SomeBy(clause, func(literal int64) bool {
			value, ok := assigned[abs(literal)]
			return ok && value == (literal > 0)
		})
	})
}
