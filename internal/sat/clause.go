package sat

import "strings"

// ClauseId is a dense, stable identifier assigned to a clause at insertion
// time. Ids never change and are never reused: the clause database only
// grows.
type ClauseId int

// Clause is a non-empty, duplicate-free disjunction of literals stored in
// insertion order. Two of its literals are distinguished as watched: the
// first watch and, unless the clause is unary-watched, the second watch.
// Falsifying a watched literal is the only event that can make the clause
// unit, which is what lets the propagator ignore every other literal in the
// clause.
//
// A clause's literal set never changes after construction; only which two
// of its literals are currently watched can move.
type Clause struct {
	id       ClauseId
	literals []Literal
	learnt   bool

	firstWatch     Literal
	secondWatch    Literal
	hasSecondWatch bool
}

// newClause builds a clause watched on its first two literals, unless it is
// learnt: a learnt clause's first literal is always the asserting literal
// chosen by conflict analysis, and §4.5 requires it start unary-watched,
// with its second watch installed later by backtracking's first
// Unstrengthen call rather than here.
func newClause(id ClauseId, literals []Literal, learnt bool) *Clause {
	c := &Clause{
		id:         id,
		literals:   literals,
		learnt:     learnt,
		firstWatch: literals[0],
	}
	if !learnt && len(literals) >= 2 {
		c.secondWatch = literals[1]
		c.hasSecondWatch = true
	}
	return c
}

// ID returns the clause's stable identifier.
func (c *Clause) ID() ClauseId { return c.id }

// IsLearnt reports whether the clause was produced by conflict analysis
// rather than supplied at construction time.
func (c *Clause) IsLearnt() bool { return c.learnt }

// Literals returns the clause's literals in their original insertion order.
// Callers must not mutate the returned slice.
func (c *Clause) Literals() []Literal { return c.literals }

// FirstWatch returns the clause's first watched literal.
func (c *Clause) FirstWatch() Literal { return c.firstWatch }

// SecondWatch returns the clause's second watched literal, if any.
func (c *Clause) SecondWatch() (Literal, bool) { return c.secondWatch, c.hasSecondWatch }

// IsUnaryWatched reports whether only the first watch is set, meaning the
// clause is currently propagating its first-watch literal.
func (c *Clause) IsUnaryWatched() bool { return !c.hasSecondWatch }

// Strengthen is called when lit, one of the clause's watched literals, has
// just been falsified. It must equal the clause's current second watch, or
// (only valid right after the clause was created) its first watch, in which
// case the second watch slides into the first slot before the search below
// runs. It panics if the clause is already unary-watched: callers must check
// IsUnaryWatched first and treat a falsified sole watch as a propagation or
// conflict, never as something to strengthen.
//
// It scans the clause for a literal other than the (possibly just updated)
// first watch whose value isn't false, installing it as the new second
// watch. If none exists the clause becomes unary-watched and its first
// watch is the literal that must now propagate.
func (c *Clause) Strengthen(lit Literal, isFalse func(Literal) bool) (Literal, bool) {
	switch {
	case lit == c.firstWatch:
		if !c.hasSecondWatch {
			panic("sat: cannot strengthen a unary-watched clause")
		}
		c.firstWatch = c.secondWatch
	case c.hasSecondWatch && lit == c.secondWatch:
		// Second watch falsified, first watch unchanged.
	default:
		panic("sat: strengthen target is not a watched literal")
	}
	return c.Unstrengthen(isFalse)
}

// Unstrengthen re-scans the clause for a second watch under the current
// assignment without touching the first watch. It is used during
// backtracking once some of the clause's literals have been unassigned.
func (c *Clause) Unstrengthen(isFalse func(Literal) bool) (Literal, bool) {
	for _, l := range c.literals {
		if l == c.firstWatch {
			continue
		}
		if !isFalse(l) {
			c.secondWatch = l
			c.hasSecondWatch = true
			return l, true
		}
	}
	c.hasSecondWatch = false
	return 0, false
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
