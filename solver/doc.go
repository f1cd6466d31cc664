/*
Package solver implements a DPLL search engine over CNF formulas.

The solver does not run boolean constraint propagation itself: propagation
is delegated to an Oracle, called once per decision, whose response carries
the complete resulting variable state. The engine's job is the search
discipline around that oracle: decision-level tracking, branching via the
MOM heuristic, chronological backtracking and terminal-state detection,
with every step reported to a Tracer.

A formula is loaded once from a CNF source:

	fm, err := solver.LoadCNF("problem.cnf")

and solved by wiring a solver to an oracle:

	s := solver.New(fm, oracle)
	sat, model, err := s.Solve()

If sat is true, model binds every variable reached on the winning path.
To obtain the master execution trace of the run, set a TraceWriter before
solving:

	s.Tracer = solver.NewTraceWriter(w, "problem.cnf")
*/
package solver
