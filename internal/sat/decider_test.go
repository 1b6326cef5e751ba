package sat

import "testing"

func TestDecider_RegisterVariable_BothPolaritiesSelectable(t *testing.T) {
	d := newDecider()
	d.registerVariable(0)

	seen := map[Literal]bool{}
	for i := 0; i < 2; i++ {
		l, ok := d.next()
		if !ok {
			t.Fatalf("next(): want a literal, got none")
		}
		seen[l] = true
		// Assigning l would take its complement out of the running too, so
		// bump the complement above l instead to make it the next pick.
		d.observe([]Literal{l.Opposite()})
	}
	if !seen[PositiveLiteral(0)] || !seen[NegativeLiteral(0)] {
		t.Errorf("next(): want both polarities of variable 0 to be selectable, got %v", seen)
	}

	d.onAssign(PositiveLiteral(0))
	if _, ok := d.next(); ok {
		t.Errorf("next(): want ok=false once every variable is assigned")
	}
}

func TestDecider_Observe_PrefersHigherScoringLiteral(t *testing.T) {
	d := newDecider()
	d.registerVariable(0)
	d.registerVariable(1)

	bumped := PositiveLiteral(1)
	d.observe([]Literal{bumped})

	l, ok := d.next()
	if !ok || l != bumped {
		t.Errorf("next(): want the bumped literal %v, got %v (ok=%v)", bumped, l, ok)
	}
}

func TestDecider_OnUnassign_MakesLiteralSelectableAgain(t *testing.T) {
	d := newDecider()
	d.registerVariable(0)

	l, _ := d.next()
	d.onAssign(l)
	d.onUnassign(l)

	_, ok := d.next()
	if !ok {
		t.Errorf("next(): want a literal to still be selectable after unassign, got none")
	}
}

func TestDecider_Next_IsDeterministicWithinABucket(t *testing.T) {
	d1 := newDecider()
	d2 := newDecider()
	for _, d := range []*decider{d1, d2} {
		d.registerVariable(0)
		d.registerVariable(1)
		d.registerVariable(2)
	}

	for i := 0; i < 6; i++ {
		l1, ok1 := d1.next()
		l2, ok2 := d2.next()
		if ok1 != ok2 || l1 != l2 {
			t.Fatalf("next() call %d: want matching results across runs, got %v/%v vs %v/%v", i, l1, ok1, l2, ok2)
		}
		if ok1 {
			d1.onAssign(l1)
			d2.onAssign(l2)
		}
	}
}
