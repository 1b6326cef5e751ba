package sat

// propagate assigns first true and exhaustively applies Boolean constraint
// propagation from there, returning false the moment a conflict is
// discovered. The caller is responsible for recording why first is true (an
// antecedent, for a re-asserted learnt unit) before calling propagate; a
// plain decision has no antecedent to record.
//
// Each newly implied literal is assigned in turn and its own consequences
// explored, so one call can cascade arbitrarily far through the watch
// index before returning.
func (s *Solver) propagate(first Literal) bool {
	s.propQueue.Clear()
	s.propEnqueued.Clear()

	frame := s.trail.Top()
	lit := first
	for {
		s.assign(lit)
		s.decider.onAssign(lit)

		for _, cid := range s.clauses.ClausesContaining(lit) {
			if !s.satisfied[cid] {
				s.satisfied[cid] = true
				frame.AddSatisfied(cid)
			}
		}

		neg := lit.Opposite()
		for _, cid := range s.watches.Snapshot(neg) {
			if s.satisfied[cid] {
				continue
			}

			// A unary-watched clause watching neg has nothing left to
			// strengthen into: neg is its sole watch, and neg has just
			// been falsified, so the clause itself must now propagate
			// (and immediately conflict on) its own watch literal.
			if s.clauses.IsUnaryWatched(cid) {
				if frame.AddPropagation(s.clauses.FirstWatch(cid), cid) {
					return false // CONFLICT
				}
				continue
			}

			repl, found := s.clauses.Strengthen(cid, neg, s.isFalse)
			if found {
				s.watches.Insert(repl, cid)
				continue
			}

			u := s.clauses.FirstWatch(cid)
			if frame.AddPropagation(u, cid) {
				return false // CONFLICT
			}
			if !s.propEnqueued.Contains(int(u)) {
				s.propEnqueued.Add(int(u))
				s.propQueue.Push(u)
			}
		}
		s.watches.Clear(neg)

		if s.propQueue.IsEmpty() {
			return true
		}
		lit = s.propQueue.Pop()
	}
}
