package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("DPLL_ORACLE_CMD", "")
	t.Setenv("DPLL_DATA_DIR", "")
	t.Setenv("DPLL_REQUEST_FILE", "")
	t.Setenv("DPLL_RESPONSE_FILE", "")
	t.Setenv("DPLL_TRACE_FILE", "")

	assert.Empty(t, OracleCommand())
	assert.Equal(t, "data", DataDir())
	assert.Equal(t, filepath.Join("data", "bcp_trigger_input.txt"), RequestFile())
	assert.Equal(t, filepath.Join("data", "bcp_output.txt"), ResponseFile())
	assert.Equal(t, filepath.Join("data", "master_trace.txt"), TraceFile())
}

func TestOverrides(t *testing.T) {
	t.Setenv("DPLL_ORACLE_CMD", "python3 src/mock_shim.py")
	t.Setenv("DPLL_DATA_DIR", "/tmp/exchange")
	t.Setenv("DPLL_RESPONSE_FILE", "out.txt")

	assert.Equal(t, []string{"python3", "src/mock_shim.py"}, OracleCommand())
	assert.Equal(t, "/tmp/exchange", DataDir())
	assert.Equal(t, filepath.Join("/tmp/exchange", "out.txt"), ResponseFile())
}
