package sat

import "testing"

func TestClauseDatabase_Insert_DedupesLiterals(t *testing.T) {
	db := NewClauseDatabase()
	a := PositiveLiteral(0)

	id, ok := db.Insert([]Literal{a, a, PositiveLiteral(1)}, false)
	if !ok {
		t.Fatalf("Insert(): want ok=true, got false")
	}
	if got := len(db.Get(id).Literals()); got != 2 {
		t.Errorf("len(Literals()): want 2, got %d", got)
	}
}

func TestClauseDatabase_Insert_TautologyIsDropped(t *testing.T) {
	db := NewClauseDatabase()
	a := PositiveLiteral(0)

	_, ok := db.Insert([]Literal{a, a.Opposite()}, false)
	if ok {
		t.Errorf("Insert(): want ok=false for a tautological clause, got true")
	}
	if got := db.Len(); got != 0 {
		t.Errorf("Len(): want 0, got %d", got)
	}
}

func TestClauseDatabase_Insert_EmptyClausePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Insert(): want panic on empty clause, got none")
		}
	}()
	NewClauseDatabase().Insert(nil, false)
}

func TestClauseDatabase_ClausesContaining(t *testing.T) {
	db := NewClauseDatabase()
	a, b, c := PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)

	id1, _ := db.Insert([]Literal{a, b}, false)
	id2, _ := db.Insert([]Literal{a, c}, false)

	got := db.ClausesContaining(a)
	want := []ClauseId{id1, id2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ClausesContaining(a): want %v, got %v", want, got)
	}
	if got := db.ClausesContaining(b); len(got) != 1 || got[0] != id1 {
		t.Errorf("ClausesContaining(b): want [%v], got %v", id1, got)
	}
}

func TestClauseDatabase_IdsAreStableAndDense(t *testing.T) {
	db := NewClauseDatabase()
	a, b := PositiveLiteral(0), PositiveLiteral(1)

	id1, _ := db.Insert([]Literal{a}, false)
	id2, _ := db.Insert([]Literal{b}, false)

	if id1 != 0 || id2 != 1 {
		t.Errorf("ids: want 0 and 1, got %d and %d", id1, id2)
	}
	if db.Len() != 2 {
		t.Errorf("Len(): want 2, got %d", db.Len())
	}
}
