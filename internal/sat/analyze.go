package sat

// analyze turns the conflict recorded in the trail's top frame into an
// asserting clause: a learnt clause that is falsified right now but becomes
// unit at some earlier decision level once the driver backtracks there.
//
// It walks the antecedent DAG of the conflicting frame only (never earlier
// frames) using a FIFO work queue seeded with the conflict literal and its
// complement. Popping a literal that has an antecedent within this frame
// expands it, pushing the complements of the antecedent's other literals.
// Popping a literal with no antecedent here — because it is this frame's own
// decision literal, or because it was propagated at an earlier level — adds
// its complement to the clause's tail instead. The loop stops with exactly
// one literal left in the queue: the first unique implication point.
func (s *Solver) analyze() []Literal {
	frame := s.trail.Top()
	kappa, _ := frame.ConflictLit()
	kappaBar := kappa.Opposite()

	queue := NewQueue[Literal](8)
	queued := map[Literal]bool{}
	enqueue := func(l Literal) {
		if !queued[l] {
			queued[l] = true
			queue.Push(l)
		}
	}
	enqueue(kappa)
	enqueue(kappaBar)

	var tail []Literal
	inTail := map[Literal]bool{}
	addToTail := func(l Literal) {
		if !inTail[l] {
			inTail[l] = true
			tail = append(tail, l)
		}
	}

	for queue.Size() > 1 {
		lit := queue.Pop()
		if cid, ok := frame.AntecedentOf(lit); ok {
			for _, m := range s.clauses.Get(cid).Literals() {
				if m != lit {
					enqueue(m.Opposite())
				}
			}
		} else {
			addToTail(lit.Opposite())
		}
	}
	r := queue.Pop()

	decisionLitBar := frame.Lit().Opposite()
	var assertingLit Literal
	if inTail[decisionLitBar] {
		assertingLit = decisionLitBar
	} else {
		assertingLit = r.Opposite()
		addToTail(assertingLit)
	}

	learnt := make([]Literal, 0, len(tail))
	learnt = append(learnt, assertingLit)
	for _, l := range tail {
		if l != assertingLit {
			learnt = append(learnt, l)
		}
	}
	return learnt
}
