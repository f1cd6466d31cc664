package oracle

import (
	"testing"

	"github.com/satkit/dpll/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRoundTrip(t *testing.T) {
	req := Request{DL: 3, Trigger: -7}
	assert.Equal(t, "DL: 3\nTRIGGER_LITERAL: -7\n", string(req.Encode()))
	assert.Equal(t, req, ParseRequest(req.Encode()))
}

func TestParseRequestTolerant(t *testing.T) {
	// Missing or garbled fields default to DL 0 / literal 0.
	assert.Equal(t, Request{}, ParseRequest(nil))
	assert.Equal(t, Request{}, ParseRequest([]byte("DL: soon\nTRIGGER_LITERAL:\n")))
	assert.Equal(t, Request{DL: 2}, ParseRequest([]byte("DL: 2\nsomething else\n")))
}

const continueRecord = `--- STATUS ---
STATUS: CONTINUE
DL: 1
CONFLICT_ID: None

--- BCP EXECUTION LOG ---
[DL1] DECIDE 2=TRUE
[DL1] IMPLIED 3=TRUE by C3
not a log line

--- CURRENT VARIABLE STATE ---
  1  | UNASSIGNED
  2  | TRUE
  3  | TRUE
`

func TestParseResponseContinue(t *testing.T) {
	resp, err := ParseResponse([]byte(continueRecord), 3)
	require.NoError(t, err)
	assert.Equal(t, solver.Continue, resp.Status)
	assert.Equal(t, 1, resp.DL)
	assert.Empty(t, resp.ConflictID)
	assert.Equal(t, solver.Assignment{solver.Unassigned, solver.True, solver.True}, resp.Assignment)
	assert.Equal(t, []solver.Var{0}, resp.Unassigned)
	assert.Equal(t, []string{"[DL1] DECIDE 2=TRUE", "[DL1] IMPLIED 3=TRUE by C3"}, resp.Narrative)
}

func TestParseResponseConflictMapsToUnsat(t *testing.T) {
	for _, status := range []string{"CONFLICT", "UNSAT", "conflict"} {
		record := "--- STATUS ---\nSTATUS: " + status + "\nDL: 2\nCONFLICT_ID: C4\n"
		resp, err := ParseResponse([]byte(record), 2)
		require.NoError(t, err)
		assert.Equal(t, solver.Unsat, resp.Status)
		assert.Equal(t, "C4", resp.ConflictID)
	}
}

func TestParseResponseSat(t *testing.T) {
	record := `--- STATUS ---
STATUS: SAT
DL: 1
CONFLICT_ID: NONE
--- CURRENT VARIABLE STATE ---
1 | FALSE
2 | TRUE
`
	resp, err := ParseResponse([]byte(record), 2)
	require.NoError(t, err)
	assert.Equal(t, solver.Sat, resp.Status)
	assert.Empty(t, resp.ConflictID)
	assert.Equal(t, solver.Assignment{solver.False, solver.True}, resp.Assignment)
}

func TestParseResponseWithoutSectionHeaders(t *testing.T) {
	// The degraded record some engines write on internal errors.
	resp, err := ParseResponse([]byte("STATUS: CONFLICT\nDL: 99\nCONFLICT_ID: NONE"), 2)
	require.NoError(t, err)
	assert.Equal(t, solver.Unsat, resp.Status)
	assert.Equal(t, 99, resp.DL)
}

func TestParseResponseMissingStatusIsConflict(t *testing.T) {
	// A response with no readable status must fail the branch, never keep
	// the search going.
	for _, record := range []string{"", "garbage\n", "--- STATUS ---\nSTATUS: MAYBE\n"} {
		resp, err := ParseResponse([]byte(record), 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProtocol)
		require.NotNil(t, resp)
		assert.Equal(t, solver.Unsat, resp.Status)
	}
}

func TestParseResponseGrowsAssignment(t *testing.T) {
	// A state block mentioning more variables than the formula has.
	record := "--- STATUS ---\nSTATUS: CONTINUE\n--- CURRENT VARIABLE STATE ---\n5 | TRUE\n"
	resp, err := ParseResponse([]byte(record), 2)
	require.NoError(t, err)
	require.Len(t, resp.Assignment, 5)
	assert.Equal(t, solver.True, resp.Assignment[4])
}
