package sat

import (
	"fmt"
	"strings"
)

// Solver drives the CDCL (conflict-driven clause learning) loop: it asks the
// decider for a literal, pushes a decision frame, propagates, and on
// conflict analyzes, learns, backtracks and re-propagates, until either
// every variable is assigned (SAT) or the root frame would have to be
// popped (UNSAT).
//
// A Solver is not safe for concurrent use; it is meant to be driven by a
// single goroutine from construction to completion, matching the
// single-threaded, fully sequential design of the rest of the package.
type Solver struct {
	clauses *ClauseDatabase
	watches *WatchIndex
	trail   *Trail
	decider *decider

	numVars int
	value   []LBool

	// satisfied is the global view of which clauses are currently
	// satisfied, indexed by ClauseId. A decision frame's own satisfied
	// list only records the subset it is responsible for un-marking on
	// backtrack.
	satisfied []bool

	// rootUnits holds the ids of every clause that was unary-watched the
	// moment it was inserted (i.e. every original unit clause), so that
	// the one-time root propagation pass can force them before the CDCL
	// loop starts.
	rootUnits []ClauseId
	started   bool

	propQueue    *Queue[Literal]
	propEnqueued *ResetSet

	model []bool

	// TotalConflicts counts every conflict encountered across the whole
	// solve, for diagnostic reporting.
	TotalConflicts int
}

// NewSolver returns an empty solver with no variables and no clauses.
func NewSolver() *Solver {
	return &Solver{
		clauses:      NewClauseDatabase(),
		watches:      NewWatchIndex(),
		trail:        NewTrail(),
		decider:      newDecider(),
		propQueue:    NewQueue[Literal](8),
		propEnqueued: &ResetSet{},
	}
}

// NumVariables returns the number of variables added so far.
func (s *Solver) NumVariables() int { return s.numVars }

// NumClauses returns the number of clauses currently stored, learnt
// included.
func (s *Solver) NumClauses() int { return s.clauses.Len() }

// AddVariable adds a new Boolean variable and returns its id.
func (s *Solver) AddVariable() int {
	v := s.numVars
	s.numVars++
	s.value = append(s.value, Unknown)
	s.decider.registerVariable(v)
	s.propEnqueued.Expand()
	s.propEnqueued.Expand()
	return v
}

// AddClause adds a clause over previously added variables. A clause
// tautological under complementary literals is silently dropped, since it
// is trivially satisfied. An empty clause is a core invariant violation and
// aborts the process. AddClause must only be called before the first call
// to Solve: this solver does not support incremental clause addition once
// search has begun.
func (s *Solver) AddClause(literals []Literal) error {
	id, ok := s.clauses.Insert(literals, false)
	if !ok {
		return nil // tautology, nothing to do
	}
	s.growSatisfied()
	s.installWatches(id)
	s.decider.observe(s.clauses.Get(id).Literals())
	if s.clauses.IsUnaryWatched(id) {
		s.rootUnits = append(s.rootUnits, id)
	}
	return nil
}

func (s *Solver) installWatches(id ClauseId) {
	c := s.clauses.Get(id)
	s.watches.Insert(c.FirstWatch(), id)
	if second, ok := c.SecondWatch(); ok {
		s.watches.Insert(second, id)
	}
}

func (s *Solver) growSatisfied() {
	s.satisfied = append(s.satisfied, false)
}

func (s *Solver) litValue(l Literal) LBool {
	v := s.value[l.VarID()]
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

func (s *Solver) isFalse(l Literal) bool { return s.litValue(l) == False }

func (s *Solver) assign(l Literal) {
	s.value[l.VarID()] = Lift(l.IsPositive())
}

func (s *Solver) unassign(l Literal) {
	s.value[l.VarID()] = Unknown
}

// Solve runs the CDCL loop to completion and returns True (satisfiable),
// reachable via Model after return, or False (unsatisfiable). Solving the
// same sequence of AddVariable/AddClause calls always yields the same
// result and, on True, the same model, since nothing in the loop depends on
// anything but clause and variable insertion order.
func (s *Solver) Solve() LBool {
	if !s.started {
		s.started = true
		if !s.propagateRootUnits() {
			return False
		}
	}

	for {
		lit, ok := s.decider.next()
		if !ok {
			s.model = s.buildModel()
			return True
		}

		s.trail.Push(lit)
		if !s.propagate(lit) {
			if !s.resolveConflict() {
				return False
			}
		}
	}
}

// propagateRootUnits force-propagates every clause that was a unit clause
// at insertion time, one time, before the CDCL loop starts. A length-1
// clause is already unary-watched at construction; this is what actually
// installs its literal into the assignment at level 0.
func (s *Solver) propagateRootUnits() bool {
	for _, id := range s.rootUnits {
		lit := s.clauses.FirstWatch(id)
		frame := s.trail.Top()
		if frame.AddPropagation(lit, id) {
			return false
		}
		if !s.propagate(lit) {
			if !s.resolveConflict() {
				return false
			}
		}
	}
	return true
}

// resolveConflict repeatedly analyzes, learns, backtracks and re-propagates
// until propagation succeeds (search can resume) or backtracking reaches
// the root frame (the formula is unsatisfiable).
func (s *Solver) resolveConflict() bool {
	for {
		s.TotalConflicts++
		learnt := s.analyze()

		id, ok := s.clauses.Insert(learnt, true)
		if !ok {
			panic("sat: learnt clause cannot be tautological")
		}
		s.growSatisfied()
		s.installWatches(id)
		s.decider.observe(s.clauses.Get(id).Literals())

		if !s.backtrack(id) {
			return false
		}

		assertingLit := s.clauses.FirstWatch(id)
		frame := s.trail.Top()
		if frame.AddPropagation(assertingLit, id) {
			panic("sat: asserting literal conflicts immediately after backtrack")
		}
		if s.propagate(assertingLit) {
			return true
		}
	}
}

// backtrack pops decision frames, undoing each one, until the learnt clause
// identified by learntID would become unit given the assignment at the new
// top frame. If the conflict was already at the root level, there is
// nowhere to backtrack to and the formula is unsatisfiable.
//
// Rather than recompute a target decision level from the learnt clause (the
// conflict analyzer does not expose one), each candidate frame is checked
// before it is popped: if any literal it carries — its decision literal or
// one of its propagations — has its complement in the learnt clause's tail,
// popping it would make that tail literal unassigned and the clause would
// stop being unit. Such a frame is load-bearing and backtracking halts
// there.
func (s *Solver) backtrack(learntID ClauseId) bool {
	if s.trail.AtRoot() {
		return false
	}
	s.popFrame()

	tail := s.clauses.Get(learntID).Literals()[1:]
	tailBar := make(map[Literal]bool, len(tail))
	for _, l := range tail {
		tailBar[l.Opposite()] = true
	}

	for {
		top := s.trail.Top()
		loadBearing := tailBar[top.Lit()]
		if !loadBearing {
			for _, m := range top.IterPropagations() {
				if tailBar[m] {
					loadBearing = true
					break
				}
			}
		}
		if loadBearing || s.trail.AtRoot() {
			return true
		}
		s.popFrame()
	}
}

// popFrame undoes a single decision frame: every propagated assignment,
// then the decision itself, unmarks the clauses it satisfied, and restores
// a second watch (via unstrengthen) to every clause whose antecedent
// pointed into this frame.
func (s *Solver) popFrame() {
	frame := s.trail.Pop()

	for _, lit := range frame.IterPropagations() {
		s.unassign(lit)
		s.decider.onUnassign(lit)
	}
	s.unassign(frame.Lit())
	s.decider.onUnassign(frame.Lit())

	for _, cid := range frame.IterSatisfiedClauses() {
		s.satisfied[cid] = false
	}

	for _, lit := range frame.IterPropagations() {
		cid, _ := frame.AntecedentOf(lit)
		if repl, found := s.clauses.Unstrengthen(cid, s.isFalse); found {
			s.watches.Insert(repl, cid)
		}
	}
}

func (s *Solver) buildModel() []bool {
	model := make([]bool, s.numVars)
	for v := 0; v < s.numVars; v++ {
		model[v] = s.value[v] == True
	}
	return model
}

// Model returns the satisfying assignment found by the last call to Solve,
// or nil if the formula was unsatisfiable or Solve has not been called.
func (s *Solver) Model() []bool { return s.model }

// ModelString renders the last model as a DIMACS-style line of signed,
// space-separated variable numbers terminated by 0.
func (s *Solver) ModelString() string {
	if s.model == nil {
		return "0"
	}
	var sb strings.Builder
	for v, b := range s.model {
		if v > 0 {
			sb.WriteByte(' ')
		}
		if b {
			fmt.Fprintf(&sb, "%d", v+1)
		} else {
			fmt.Fprintf(&sb, "%d", -(v + 1))
		}
	}
	sb.WriteString(" 0")
	return sb.String()
}
