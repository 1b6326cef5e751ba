package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/cnogueira/cnsat/internal/sat"
)

// dimacsWritter is the subset of *sat.Solver that the loader needs. It
// exists so tests can load instances into a lightweight double instead of a
// real solver.
type dimacsWritter interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// builder adapts a dimacsWritter to the rhartert/dimacs Builder interface:
// DIMACS numbers variables from 1 and yields signed ints per clause, while
// the solver numbers variables from 0 and wants sat.Literal values.
type builder struct {
	dw       dimacsWritter
	literals []sat.Literal
	err      error
}

func (b *builder) Problem(nVars, nClauses int) {
	for i := 0; i < nVars; i++ {
		b.dw.AddVariable()
	}
}

func (b *builder) Clause(tmpClause []int) {
	if b.err != nil {
		return
	}
	b.literals = b.literals[:0]
	for _, l := range tmpClause {
		switch {
		case l < 0:
			b.literals = append(b.literals, sat.NegativeLiteral(-l-1))
		case l > 0:
			b.literals = append(b.literals, sat.PositiveLiteral(l-1))
		}
	}
	if err := b.dw.AddClause(b.literals); err != nil {
		b.err = err
	}
}

func (b *builder) Comment(string) {} // nothing to do with comment lines

// LoadDIMACS reads the DIMACS CNF file at filename (optionally gzip
// compressed) and feeds its variables and clauses into dw, in file order.
func LoadDIMACS(filename string, gzipped bool, dw dimacsWritter) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{dw: dw}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("could not parse DIMACS instance: %w", err)
	}
	return b.err
}
