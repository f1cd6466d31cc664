package solver

// The MOM branching rule: pick the literal with Maximum Occurrences in
// Minimum-sized unsatisfied clauses. Targeting the tightest clauses
// maximizes the chance of forcing a unit propagation or an early conflict.

// SelectLiteral returns the next literal to branch on, or LitUndef when no
// unassigned variable participates in any unsatisfied clause (the formula
// is satisfied, or trivially free, under asg).
//
// Ties between equally frequent literals are broken by first occurrence in
// clause order, so the choice is reproducible for a given formula.
func SelectLiteral(fm *Formula, asg Assignment) Lit {
	// Residual size of each unsatisfied clause: its nb of unassigned lits.
	minSize := -1
	residual := make([]int, 0, len(fm.Clauses))
	unsat := make([][]Lit, 0, len(fm.Clauses))
	for _, clause := range fm.Clauses {
		satisfied := false
		size := 0
		for _, lit := range clause {
			if lit.SatisfiedBy(asg) {
				satisfied = true
				break
			}
			if asg.Value(lit.Var()) == Unassigned {
				size++
			}
		}
		if satisfied {
			continue
		}
		unsat = append(unsat, clause)
		residual = append(residual, size)
		if minSize == -1 || size < minSize {
			minSize = size
		}
	}
	if len(unsat) == 0 {
		return LitUndef
	}

	// Count each signed literal over the unassigned positions of the
	// minimum-sized clauses, remembering first-seen order for tie-breaks.
	counts := make(map[Lit]int)
	var order []Lit
	for i, clause := range unsat {
		if residual[i] != minSize {
			continue
		}
		for _, lit := range clause {
			if asg.Value(lit.Var()) != Unassigned {
				continue
			}
			if _, seen := counts[lit]; !seen {
				order = append(order, lit)
			}
			counts[lit]++
		}
	}
	if len(order) == 0 {
		return LitUndef
	}

	best := order[0]
	for _, lit := range order[1:] {
		if counts[lit] > counts[best] {
			best = lit
		}
	}
	return best
}
