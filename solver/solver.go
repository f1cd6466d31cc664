package solver

import (
	"fmt"

	"go.uber.org/zap"
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions  int // How many branching decisions were made
	NbBacktracks int // How many times a polarity was reverted after a conflict
}

// A Solver runs the DPLL search over one formula. It is the main data structure.
type Solver struct {
	Tracer Tracer      // Receives every search event. NopTracer by default.
	Logger *zap.Logger // Diagnostic logger. Nop by default.
	Stats  Stats       // Statistics about the solving process.
	fm     *Formula
	oracle Oracle
}

// New makes a solver for the given formula, delegating propagation to o.
func New(fm *Formula, o Oracle) *Solver {
	return &Solver{
		Tracer: NopTracer{},
		Logger: zap.NewNop(),
		fm:     fm,
		oracle: o,
	}
}

// Solve decides the satisfiability of the formula. On success the returned
// model binds every variable assigned on the winning path. A nil error with
// sat == false means the search space was exhausted; a non-nil error means
// the oracle failed and no verdict could be reached.
func (s *Solver) Solve() (sat bool, model map[int]bool, err error) {
	s.Stats = Stats{}
	s.Tracer.StartRun(s.fm)
	s.Tracer.EnterLevel(0)

	// Seed call: captures any unconditional unit propagations before the
	// first branching decision.
	resp, err := s.oracle.Propagate(0, LitUndef)
	if err != nil {
		return false, nil, fmt.Errorf("initial propagation: %w", err)
	}
	sat, asg, err := s.search(0, resp)
	if err != nil {
		return false, nil, err
	}
	if sat {
		model = asg.Model()
	}
	s.Tracer.Final(sat, model, s.Stats)
	return sat, model, nil
}

// search is one frame of the DPLL recursion. resp is the oracle's response
// to the decision (or seed call) that entered level dl. Each frame makes at
// most one new decision and tries both of its polarities at level dl+1
// before reporting failure upward.
func (s *Solver) search(dl int, resp *Response) (bool, Assignment, error) {
	s.Tracer.OracleResult(dl, resp.Status, resp.ConflictID)
	s.Tracer.Propagations(resp.Narrative)
	s.Tracer.VariableState(resp.Assignment, resp.Unassigned)

	switch resp.Status {
	case Sat:
		s.Logger.Info("satisfiable", zap.Int("dl", dl))
		return true, resp.Assignment, nil
	case Unsat:
		s.Logger.Debug("conflict", zap.Int("dl", dl), zap.String("clause", resp.ConflictID))
		return false, nil, nil
	}

	lit := SelectLiteral(s.fm, resp.Assignment)
	if lit == LitUndef {
		// No unassigned variable participates in any unsatisfied clause:
		// the current assignment already satisfies the formula.
		s.Logger.Info("no literal left to branch on", zap.Int("dl", dl))
		return true, resp.Assignment, nil
	}

	next := dl + 1
	if next > s.fm.NbVars {
		// A sane oracle assigns at least the trigger literal per round, so
		// the search tree is never deeper than the variable count.
		return false, nil, fmt.Errorf("decision level %d exceeds the %d problem variables: oracle does not converge", next, s.fm.NbVars)
	}
	s.Stats.NbDecisions++
	s.Tracer.EnterLevel(next)
	s.Tracer.Decision(next, lit)
	s.Logger.Debug("decide", zap.Int("dl", next), zap.Int("lit", lit.Int()))

	r, err := s.oracle.Propagate(next, lit)
	if err != nil {
		return false, nil, fmt.Errorf("propagation at DL %d: %w", next, err)
	}
	if sat, asg, err := s.search(next, r); err != nil || sat {
		return sat, asg, err
	}

	// First polarity failed. Both polarities of one decision point share
	// the same level, so the retry stays at next.
	neg := lit.Negation()
	s.Stats.NbBacktracks++
	s.Tracer.Backtrack(next, lit, neg)
	s.Tracer.Decision(next, neg)
	s.Logger.Debug("backtrack", zap.Int("dl", next), zap.Int("lit", neg.Int()))

	r, err = s.oracle.Propagate(next, neg)
	if err != nil {
		return false, nil, fmt.Errorf("propagation at DL %d: %w", next, err)
	}
	if sat, asg, err := s.search(next, r); err != nil || sat {
		return sat, asg, err
	}

	s.Tracer.Exhausted(next)
	return false, nil, nil
}
