package oracle

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/satkit/dpll/solver"
	"go.uber.org/zap"
)

// A Client drives an external propagation engine, one blocking run per
// propagation round: it writes the trigger record, launches the configured
// command, waits for it to exit and parses the response record it left
// behind. It implements solver.Oracle.
type Client struct {
	argv     []string
	request  string // Path of the trigger record
	response string // Path of the response record
	nbVars   int
	logger   *zap.Logger
}

var _ solver.Oracle = (*Client)(nil)

// NewClient makes a client launching argv for each round, exchanging
// records through the request and response paths. nbVars is the formula's
// variable count, used to size parsed assignments. A nil logger disables
// diagnostics.
func NewClient(argv []string, request, response string, nbVars int, logger *zap.Logger) (*Client, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: no engine command configured", ErrUnavailable)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		argv:     argv,
		request:  request,
		response: response,
		nbVars:   nbVars,
		logger:   logger,
	}, nil
}

// Propagate runs one propagation round. A launch or exit failure is fatal
// (ErrUnavailable): nothing can be concluded from a round that did not run.
// A missing or malformed response record is instead reported as a conflict,
// so a corrupt engine fails the branch rather than looping the search.
func (c *Client) Propagate(dl int, trigger solver.Lit) (*solver.Response, error) {
	req := Request{DL: dl, Trigger: trigger.Int()}
	if err := os.WriteFile(c.request, req.Encode(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: could not write trigger record %q: %v", ErrUnavailable, c.request, err)
	}
	// A stale response from the previous round must never be re-read.
	_ = os.Remove(c.response)

	cmd := exec.Command(c.argv[0], c.argv[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	start := time.Now()
	if err := cmd.Run(); err != nil {
		c.logger.Error("propagation engine failed",
			zap.String("cmd", c.argv[0]),
			zap.Error(err),
			zap.String("output", out.String()))
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, c.argv[0], err)
	}
	c.logger.Debug("propagation engine finished",
		zap.Int("dl", dl),
		zap.Int("trigger", trigger.Int()),
		zap.Duration("took", time.Since(start)))

	data, err := os.ReadFile(c.response)
	if err != nil {
		c.logger.Warn("no response record, treating round as conflict",
			zap.Int("dl", dl), zap.Error(err))
		return &solver.Response{
			Status:     solver.Unsat,
			DL:         dl,
			Assignment: make(solver.Assignment, c.nbVars),
		}, nil
	}
	resp, err := ParseResponse(data, c.nbVars)
	if err != nil {
		c.logger.Warn("malformed response record, treating round as conflict",
			zap.Int("dl", dl), zap.Error(err))
	}
	return resp, nil
}
