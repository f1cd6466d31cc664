package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by DPLL_ENV (or .env by default).
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("DPLL_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing env file is fine, the defaults below apply.
	_ = godotenv.Load(envFile)

	return nil
}

// OracleCommand returns the propagation engine command line, split on
// whitespace. Empty when unconfigured.
func OracleCommand() []string {
	return strings.Fields(os.Getenv("DPLL_ORACLE_CMD"))
}

// DataDir is the directory holding the request/response exchange files.
// Defaults to "data".
func DataDir() string {
	dir := os.Getenv("DPLL_DATA_DIR")
	if dir == "" {
		return "data"
	}
	return dir
}

// RequestFile is the path of the trigger record written before each
// propagation round.
func RequestFile() string {
	name := os.Getenv("DPLL_REQUEST_FILE")
	if name == "" {
		name = "bcp_trigger_input.txt"
	}
	return filepath.Join(DataDir(), name)
}

// ResponseFile is the path of the response record the engine writes.
func ResponseFile() string {
	name := os.Getenv("DPLL_RESPONSE_FILE")
	if name == "" {
		name = "bcp_output.txt"
	}
	return filepath.Join(DataDir(), name)
}

// TraceFile is the path the master execution trace is written to, unless
// overridden on the command line.
func TraceFile() string {
	name := os.Getenv("DPLL_TRACE_FILE")
	if name == "" {
		name = "master_trace.txt"
	}
	return filepath.Join(DataDir(), name)
}
