package solver

// An Oracle runs boolean constraint propagation on behalf of the search
// engine. Production oracles drive an external propagation procedure; tests
// use scripted implementations. The search engine never special-cases one
// or the other.
//
// The contract is stateless per call: each Propagate request names the
// decision level and the trigger literal (LitUndef for the seeding call at
// level 0), and each response carries the complete resulting variable
// state. Retrying the opposite polarity at the same level therefore needs
// no reset step on the engine side; reverting the previous trial's
// propagations is entirely the oracle's concern.
type Oracle interface {
	Propagate(dl int, trigger Lit) (*Response, error)
}

// A Response is the outcome of one propagation round. It is created fresh
// by every oracle call and owned by the search engine for the duration of
// one recursive frame.
type Response struct {
	Status     Status
	DL         int        // Decision level the oracle ran at
	ConflictID string     // Identifier of the conflicting clause, if any
	Assignment Assignment // Complete variable state after propagation
	Unassigned []Var      // Vars still free after propagation
	Narrative  []string   // Ordered propagation log lines, audit only
}
