package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrMalformedInput means a clause line of the CNF source could not be
	// tokenized into integers.
	ErrMalformedInput = errors.New("malformed CNF input")
	// ErrEmptyFormula means the CNF source yielded no clauses at all.
	// Such a formula is trivially satisfiable with an empty model.
	ErrEmptyFormula = errors.New("empty formula")
)

// A Formula is a parsed CNF problem: an ordered list of clauses, each an
// ordered list of literals. It is parsed once and never mutated afterwards.
type Formula struct {
	NbVars  int     // Total nb of vars
	Clauses [][]Lit // Ordered clauses, in source order
}

// ParseCNF parses a CNF stream and returns the corresponding Formula.
// The format is line oriented: lines starting with 'c' are comments, a
// line starting with 'p' is the problem header (only skipped here), any
// other non-empty line is a whitespace-separated list of signed integers
// whose trailing 0 sentinel is stripped.
func ParseCNF(f io.Reader) (*Formula, error) {
	var fm Formula
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") {
			continue
		}
		var lits []Lit
		for _, field := range strings.Fields(line) {
			val, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer in clause %q", ErrMalformedInput, field, line)
			}
			if val == 0 { // Trailing sentinel
				continue
			}
			lit := IntToLit(val)
			if v := int(lit.Var()); v >= fm.NbVars {
				fm.NbVars = v + 1
			}
			lits = append(lits, lit)
		}
		if len(lits) > 0 {
			fm.Clauses = append(fm.Clauses, lits)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(fm.Clauses) == 0 {
		return nil, ErrEmptyFormula
	}
	return &fm, nil
}

// LoadCNF parses the CNF file at the given path.
func LoadCNF(path string) (*Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q: %v", ErrMalformedInput, path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseCNF(f)
}

// CNF returns a DIMACS CNF representation of the formula.
func (fm *Formula) CNF() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", fm.NbVars, len(fm.Clauses))
	for _, clause := range fm.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(&sb, "%d ", lit.Int())
		}
		sb.WriteString("0\n")
	}
	return sb.String()
}
