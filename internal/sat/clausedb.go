package sat

// ClauseDatabase owns every clause, original and learnt, indexed by its
// ClauseId. It is the sole owner of clause storage: every other structure
// (the watch index, the trail) refers to clauses only by id, never by
// pointer, which is what keeps the object graph acyclic.
//
// Clauses are never deleted; a learnt-clause reduction policy is out of
// scope here, so the database only ever grows.
type ClauseDatabase struct {
	clauses []*Clause

	// litToClauses maps a literal to every clause id it occurs in,
	// regardless of which literals that clause currently watches. It is
	// built once per insertion and never pruned; it exists only to mark
	// clauses satisfied in constant time per occurrence when a literal
	// becomes true.
	litToClauses map[Literal][]ClauseId
}

// NewClauseDatabase returns an empty clause database.
func NewClauseDatabase() *ClauseDatabase {
	return &ClauseDatabase{litToClauses: map[Literal][]ClauseId{}}
}

// Insert dedupes literals and drops the clause if it is tautological
// (containing a literal and its complement), reporting ok=false in that
// case. An empty clause (after a literal and its complement are not the
// cause) is a core invariant violation and aborts the process, since it can
// only be produced by a bug upstream.
//
// On success, Insert appends the clause, installs its initial watches, and
// registers it in the reverse literal index.
func (db *ClauseDatabase) Insert(literals []Literal, learnt bool) (id ClauseId, ok bool) {
	if len(literals) == 0 {
		panic("sat: cannot insert an empty clause")
	}

	deduped, tautological := dedupeLiterals(literals)
	if tautological {
		return 0, false
	}

	id = ClauseId(len(db.clauses))
	c := newClause(id, deduped, learnt)
	db.clauses = append(db.clauses, c)

	for _, l := range deduped {
		db.litToClauses[l] = append(db.litToClauses[l], id)
	}

	return id, true
}

// dedupeLiterals returns literals with exact duplicates removed, or
// tautological=true if a literal and its complement both appear.
func dedupeLiterals(literals []Literal) (deduped []Literal, tautological bool) {
	seen := make(map[Literal]bool, len(literals))
	out := make([]Literal, 0, len(literals))
	for _, l := range literals {
		if seen[l.Opposite()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, false
}

// Get returns the clause with the given id.
func (db *ClauseDatabase) Get(id ClauseId) *Clause { return db.clauses[id] }

// Len returns the number of clauses currently stored, learnt included.
func (db *ClauseDatabase) Len() int { return len(db.clauses) }

// ClausesContaining returns every clause id that mentions l anywhere in its
// literal list, independent of what it currently watches.
func (db *ClauseDatabase) ClausesContaining(l Literal) []ClauseId {
	return db.litToClauses[l]
}

// Strengthen delegates to the clause's own Strengthen; see Clause.Strengthen.
func (db *ClauseDatabase) Strengthen(id ClauseId, lit Literal, isFalse func(Literal) bool) (Literal, bool) {
	return db.clauses[id].Strengthen(lit, isFalse)
}

// Unstrengthen delegates to the clause's own Unstrengthen; see
// Clause.Unstrengthen.
func (db *ClauseDatabase) Unstrengthen(id ClauseId, isFalse func(Literal) bool) (Literal, bool) {
	return db.clauses[id].Unstrengthen(isFalse)
}

// IsUnaryWatched reports whether the clause only has a first watch set.
func (db *ClauseDatabase) IsUnaryWatched(id ClauseId) bool {
	return db.clauses[id].IsUnaryWatched()
}

// FirstWatch returns the clause's first watched literal.
func (db *ClauseDatabase) FirstWatch(id ClauseId) Literal {
	return db.clauses[id].FirstWatch()
}

// SecondWatch returns the clause's second watched literal, if any.
func (db *ClauseDatabase) SecondWatch(id ClauseId) (Literal, bool) {
	return db.clauses[id].SecondWatch()
}
