package solver

// A Tracer receives every event of one solve run, in order. Calls are
// append-only: the search engine emits each logical event exactly once and
// never rewrites earlier entries.
type Tracer interface {
	// StartRun opens the trace for a new solve over the given formula.
	StartRun(fm *Formula)
	// EnterLevel marks the start of a decision level section.
	EnterLevel(dl int)
	// Decision records a branching decision at dl. Both polarities of one
	// decision point are recorded at the same dl.
	Decision(dl int, lit Lit)
	// OracleResult records the status the oracle reported at dl.
	OracleResult(dl int, status Status, conflictID string)
	// Propagations records the oracle's propagation narrative for audit.
	Propagations(lines []string)
	// VariableState records the complete variable state after a round.
	VariableState(asg Assignment, unassigned []Var)
	// Backtrack records that tried failed at dl and next is attempted.
	Backtrack(dl int, tried, next Lit)
	// Exhausted records that both polarities failed at dl.
	Exhausted(dl int)
	// Final closes the trace with the run's outcome and statistics.
	Final(success bool, model map[int]bool, stats Stats)
}

// NopTracer is a Tracer that discards everything.
type NopTracer struct{}

func (NopTracer) StartRun(*Formula)                {}
func (NopTracer) EnterLevel(int)                   {}
func (NopTracer) Decision(int, Lit)                {}
func (NopTracer) OracleResult(int, Status, string) {}
func (NopTracer) Propagations([]string)            {}
func (NopTracer) VariableState(Assignment, []Var)  {}
func (NopTracer) Backtrack(int, Lit, Lit)          {}
func (NopTracer) Exhausted(int)                    {}
func (NopTracer) Final(bool, map[int]bool, Stats)  {}
