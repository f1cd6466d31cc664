package oracle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/satkit/dpll/solver"
)

var (
	// ErrUnavailable means the propagation engine could not be launched or
	// reported a failure exit status. No verdict can be derived from such a
	// round, so the solve must abort.
	ErrUnavailable = errors.New("propagation engine unavailable")
	// ErrProtocol means a request or response record was missing required
	// fields. Recovered locally with safe defaults, never fatal mid-search.
	ErrProtocol = errors.New("propagation protocol error")
)

// Section headers of the response record.
const (
	sectionStatus    = "STATUS"
	sectionNarrative = "BCP EXECUTION LOG"
	sectionVarState  = "CURRENT VARIABLE STATE"
)

// A Request is the trigger record the engine writes before each
// propagation round.
type Request struct {
	DL      int
	Trigger int // CNF literal, 0 for the initial no-decision call
}

// Encode renders r as the textual trigger record.
func (r Request) Encode() []byte {
	return []byte(fmt.Sprintf("DL: %d\nTRIGGER_LITERAL: %d\n", r.DL, r.Trigger))
}

// ParseRequest parses a trigger record. Missing or unparsable fields
// default to DL 0 and literal 0, the tolerant policy of the protocol.
func ParseRequest(data []byte) Request {
	var req Request
	for _, line := range strings.Split(string(data), "\n") {
		if dl, ok := intField(line, "DL:"); ok {
			req.DL = dl
		}
		if lit, ok := intField(line, "TRIGGER_LITERAL:"); ok {
			req.Trigger = lit
		}
	}
	return req
}

// ParseResponse parses a propagation response record. The returned response
// is always usable: when the status block is missing or unreadable the
// status resolves to Unsat, never to Continue, so a corrupt engine cannot
// loop the search forever; in that case the error wraps ErrProtocol and the
// caller may log it. nbVars sizes the assignment when the variable-state
// block mentions fewer variables than the formula has.
func ParseResponse(data []byte, nbVars int) (*solver.Response, error) {
	resp := &solver.Response{Assignment: make(solver.Assignment, nbVars)}
	statusSeen := false
	section := sectionStatus
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if name, ok := sectionHeader(line); ok {
			section = name
			continue
		}
		switch section {
		case sectionVarState:
			v, b, ok := parseBinding(line)
			if !ok {
				continue
			}
			for int(v) >= len(resp.Assignment) {
				resp.Assignment = append(resp.Assignment, solver.Unassigned)
			}
			resp.Assignment[v] = b
			if b == solver.Unassigned {
				resp.Unassigned = append(resp.Unassigned, v)
			}
		case sectionNarrative:
			if strings.HasPrefix(line, "[") {
				resp.Narrative = append(resp.Narrative, line)
			}
		default:
			if val, found := strField(line, "STATUS:"); found {
				status, ok := parseStatus(val)
				if ok {
					resp.Status = status
					statusSeen = true
				}
			}
			if dl, ok := intField(line, "DL:"); ok {
				resp.DL = dl
			}
			if id, found := strField(line, "CONFLICT_ID:"); found {
				if !strings.EqualFold(id, "none") {
					resp.ConflictID = id
				}
			}
		}
	}
	if !statusSeen {
		resp.Status = solver.Unsat
		return resp, fmt.Errorf("%w: response has no readable STATUS field", ErrProtocol)
	}
	return resp, nil
}

// sectionHeader recognizes lines like "--- STATUS ---".
func sectionHeader(line string) (string, bool) {
	if !strings.HasPrefix(line, "---") {
		return "", false
	}
	name := strings.TrimSpace(strings.Trim(line, "- "))
	switch {
	case strings.Contains(name, sectionNarrative):
		return sectionNarrative, true
	case strings.Contains(name, sectionVarState):
		return sectionVarState, true
	case strings.Contains(name, sectionStatus):
		return sectionStatus, true
	}
	return "", false
}

func parseStatus(val string) (solver.Status, bool) {
	switch strings.ToUpper(val) {
	case "SAT":
		return solver.Sat, true
	case "UNSAT", "CONFLICT":
		return solver.Unsat, true
	case "CONTINUE":
		return solver.Continue, true
	}
	return solver.Unsat, false
}

// parseBinding parses a variable-state line like "  3  | TRUE".
func parseBinding(line string) (solver.Var, solver.Binding, bool) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 {
		return 0, solver.Unassigned, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || id <= 0 {
		return 0, solver.Unassigned, false
	}
	v := solver.Var(id - 1)
	switch strings.ToUpper(strings.TrimSpace(parts[1])) {
	case "TRUE":
		return v, solver.True, true
	case "FALSE":
		return v, solver.False, true
	case "UNASSIGNED":
		return v, solver.Unassigned, true
	}
	return 0, solver.Unassigned, false
}

func strField(line, key string) (string, bool) {
	if !strings.HasPrefix(line, key) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, key)), true
}

func intField(line, key string) (int, bool) {
	val, found := strField(line, key)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
