package solver

// Describes basic types and constants that are used in the solver

// Status is the result of a propagation round, as reported by the oracle
// for the problem at a given decision level.
type Status byte

const (
	// Continue means the problem is not proven sat or unsat yet: more decisions are needed.
	Continue = Status(iota)
	// Sat means the problem is satisfied by the current assignment.
	Sat
	// Unsat means the current branch is conflicting. The oracle's CONFLICT
	// and UNSAT statuses both map here since the search treats them identically.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "CONTINUE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// Var start at 0 ; thus the CNF variable 1 is encoded as the Var 0.
type Var int32

// Lit start at 0 and are positive ; the sign is the last bit.
// Thus the CNF literal -3 is encoded as 2 * (3-1) + 1 = 5.
type Lit int32

// LitUndef means "no literal". It is used for the seeding call at decision
// level 0, before any branching happened.
const LitUndef = Lit(-1)

// IntToLit converts a CNF literal to a Lit. A 0 value yields LitUndef.
func IntToLit(i int) Lit {
	if i == 0 {
		return LitUndef
	}
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// Lit returns the positive Lit associated to v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent CNF literal. LitUndef yields 0.
func (l Lit) Int() int {
	if l == LitUndef {
		return 0
	}
	sign := l&1 == 1
	res := int(l/2 + 1)
	if sign {
		return -res
	}
	return res
}

// IsPositive is true iff l is an unnegated literal.
func (l Lit) IsPositive() bool {
	return l%2 == 0
}

// Negation returns -l, i.e the positive version of l if it is negative,
// or the negative version otherwise.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// A Binding is the value of one variable in a partial assignment.
type Binding int8

const (
	// Unassigned means the variable is still free.
	Unassigned = Binding(0)
	// True means the variable is bound to true.
	True = Binding(1)
	// False means the variable is bound to false.
	False = Binding(-1)
)

func (b Binding) String() string {
	switch b {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "UNASSIGNED"
	}
}

// An Assignment is the current partial model: for each var, in order, its
// binding. The search engine never mutates an assignment itself: it adopts,
// wholesale, the assignment carried by each oracle response.
type Assignment []Binding

// Value returns the binding of v, Unassigned if v is out of range.
func (a Assignment) Value(v Var) Binding {
	if int(v) >= len(a) {
		return Unassigned
	}
	return a[v]
}

// SatisfiedBy is true iff l is true under a.
func (l Lit) SatisfiedBy(a Assignment) bool {
	val := a.Value(l.Var())
	if val == Unassigned {
		return false
	}
	return (val == True) == l.IsPositive()
}

// Model returns the bound variables of a as a CNF-variable map.
func (a Assignment) Model() map[int]bool {
	m := make(map[int]bool)
	for v, val := range a {
		if val != Unassigned {
			m[v+1] = val == True
		}
	}
	return m
}
