package sat

import "sort"

// WatchIndex maps a literal to the set of clause ids currently watching it.
// Membership is a set, not a list, so that a clause watching the same
// literal twice (which never legitimately happens, but would otherwise
// silently double propagation work) cannot sneak in, and so that removal is
// O(1).
type WatchIndex struct {
	sets map[Literal]map[ClauseId]struct{}
}

// NewWatchIndex returns an empty watch index.
func NewWatchIndex() *WatchIndex {
	return &WatchIndex{sets: map[Literal]map[ClauseId]struct{}{}}
}

// Insert records that clause id watches l.
func (w *WatchIndex) Insert(l Literal, id ClauseId) {
	s, ok := w.sets[l]
	if !ok {
		s = map[ClauseId]struct{}{}
		w.sets[l] = s
	}
	s[id] = struct{}{}
}

// Snapshot returns a copy of the clause ids currently watching l, sorted by
// id. A copy is required because the propagator strengthens clauses while
// walking this set, which would otherwise invalidate an in-progress
// iteration; the sort is required because ranging the underlying set would
// otherwise visit clauses in an order that varies from run to run, making
// which conflict is hit first (and thus the learnt clause, VSIDS bumps and
// ultimately the result) non-reproducible.
func (w *WatchIndex) Snapshot(l Literal) []ClauseId {
	s := w.sets[l]
	out := make([]ClauseId, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear removes every clause watching l. Used once a literal's watch set has
// been fully processed: every clause in it has either been re-pointed at a
// replacement watch, turned unary-watched, or was already satisfied.
func (w *WatchIndex) Clear(l Literal) {
	delete(w.sets, l)
}
