package solver

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// A TraceWriter renders the master execution trace of one solve run to an
// underlying writer, as a sequential human-readable record: banner header,
// per-level sections, propagation narratives, variable states, backtrack
// banners and a final-result section with statistics.
type TraceWriter struct {
	w     io.Writer
	runID string
	name  string // Label for the formula source, e.g. its file path
}

var _ Tracer = (*TraceWriter)(nil)

// NewTraceWriter makes a TraceWriter rendering to w. The name labels the
// formula source in the trace header.
func NewTraceWriter(w io.Writer, name string) *TraceWriter {
	return &TraceWriter{w: w, runID: uuid.NewString(), name: name}
}

// RunID returns the unique identifier stamped into this trace's header.
func (t *TraceWriter) RunID() string {
	return t.runID
}

func (t *TraceWriter) StartRun(fm *Formula) {
	bar := strings.Repeat("=", 80)
	fmt.Fprintf(t.w, "%s\n", bar)
	fmt.Fprintf(t.w, "%24sMASTER EXECUTION TRACE\n", "")
	fmt.Fprintf(t.w, "%24sRun ID: %s\n", "", t.runID)
	fmt.Fprintf(t.w, "%s\n\n", bar)
	fmt.Fprintf(t.w, "CNF source: %s (%d vars, %d clauses)\n", t.name, fm.NbVars, len(fm.Clauses))
	fmt.Fprintf(t.w, "%s\n", strings.Repeat("-", 40))
}

func (t *TraceWriter) EnterLevel(dl int) {
	bar := strings.Repeat("=", 60)
	fmt.Fprintf(t.w, "\n%s\n--- DECISION LEVEL %d ---\n%s\n", bar, dl, bar)
}

func (t *TraceWriter) Decision(dl int, lit Lit) {
	v := int(lit.Var()) + 1
	val := False
	if lit.IsPositive() {
		val = True
	}
	fmt.Fprintf(t.w, "[DL%d] DECIDE      L=%4d  | Var %d = %s\n", dl, lit.Int(), v, val)
}

func (t *TraceWriter) OracleResult(dl int, status Status, conflictID string) {
	switch status {
	case Sat:
		fmt.Fprintf(t.w, "[DL%d] BCP_RESULT        | STATUS: SAT - all clauses satisfied\n", dl)
	case Unsat:
		conflict := ""
		if conflictID != "" {
			conflict = fmt.Sprintf(" (clause: %s)", conflictID)
		}
		fmt.Fprintf(t.w, "[DL%d] BCP_RESULT        | STATUS: CONFLICT%s\n", dl, conflict)
	default:
		fmt.Fprintf(t.w, "[DL%d] BCP_RESULT        | STATUS: CONTINUE\n", dl)
	}
}

func (t *TraceWriter) Propagations(lines []string) {
	for _, line := range lines {
		fmt.Fprintf(t.w, "  %s\n", line)
	}
}

func (t *TraceWriter) VariableState(asg Assignment, unassigned []Var) {
	fmt.Fprintf(t.w, "\n--- CURRENT VARIABLE STATE ---\n")
	for v := range asg {
		fmt.Fprintf(t.w, "  %4d  | %s\n", v+1, asg[Var(v)])
	}
	for _, v := range unassigned {
		if int(v) >= len(asg) {
			fmt.Fprintf(t.w, "  %4d  | %s\n", int(v)+1, Unassigned)
		}
	}
}

func (t *TraceWriter) Backtrack(dl int, tried, next Lit) {
	bar := strings.Repeat("*", 60)
	fmt.Fprintf(t.w, "\n%s\n", bar)
	fmt.Fprintf(t.w, "*** BACKTRACK at DL %d ***\n", dl)
	fmt.Fprintf(t.w, "    failed literal: %d\n", tried.Int())
	fmt.Fprintf(t.w, "    trying opposite: %d\n", next.Int())
	fmt.Fprintf(t.w, "%s\n\n", bar)
}

func (t *TraceWriter) Exhausted(dl int) {
	fmt.Fprintf(t.w, "[DL%d] EXHAUSTED         | both branches failed, propagating failure upward\n", dl)
}

func (t *TraceWriter) Final(success bool, model map[int]bool, stats Stats) {
	bar := strings.Repeat("=", 80)
	fmt.Fprintf(t.w, "\n%s\n%30sFINAL RESULT\n%s\n\n", bar, "", bar)
	if success {
		fmt.Fprintf(t.w, "RESULT: SATISFIABLE\n\n")
		if len(model) == 0 {
			fmt.Fprintf(t.w, "  (empty model - trivially SAT)\n")
		} else {
			fmt.Fprintf(t.w, "SATISFYING ASSIGNMENT:\n")
			vars := make([]int, 0, len(model))
			for v := range model {
				vars = append(vars, v)
			}
			sort.Ints(vars)
			for _, v := range vars {
				val := False
				if model[v] {
					val = True
				}
				fmt.Fprintf(t.w, "  Variable %d = %s\n", v, val)
			}
		}
	} else {
		fmt.Fprintf(t.w, "RESULT: UNSATISFIABLE\n\nNo satisfying assignment exists.\n")
	}
	fmt.Fprintf(t.w, "\nSTATISTICS:\n")
	fmt.Fprintf(t.w, "  Decisions made: %d\n", stats.NbDecisions)
	fmt.Fprintf(t.w, "  Backtracks: %d\n", stats.NbBacktracks)
	fmt.Fprintf(t.w, "\n%s\n", bar)
}
