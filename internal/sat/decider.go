package sat

import "sort"

// decider implements VSIDS (variable-state independent decaying sum)
// branching: literals are bumped on clause participation and the decision
// procedure prefers the highest-activity unassigned literal.
//
// Scores are kept in exact integer buckets rather than a priority heap, so
// that "the highest-scoring unassigned literal" is a scan from the top
// bucket down rather than a log-time heap pop. This only pays off because
// score is an integer incremented in observe, never a continuously-decaying
// float; a genuine decaying float activity (as most VSIDS variants use)
// would thrash buckets on every bump and would want a heap instead.
type decider struct {
	score map[Literal]int64

	// buckets maps a score to the literals currently at that score, kept
	// sorted in ascending literal order so the "last" literal of a bucket
	// is well defined and reproducible. scores is buckets' key set, kept
	// sorted ascending so the highest score is scores[len(scores)-1].
	buckets map[int64][]Literal
	scores  []int64

	unassigned map[Literal]struct{}

	age int64
}

func newDecider() *decider {
	return &decider{
		score:      map[Literal]int64{},
		buckets:    map[int64][]Literal{},
		unassigned: map[Literal]struct{}{},
	}
}

// registerVariable makes both literals of a freshly added variable known to
// the decider, at score 0, so that a variable that never appears in any
// clause can still be selected and receive a value. Both literals start out
// unassigned, so an assignment made before the first decision (root-level
// propagation) is already reflected when next is first called.
func (d *decider) registerVariable(v int) {
	pos, neg := PositiveLiteral(v), NegativeLiteral(v)
	d.unassigned[pos] = struct{}{}
	d.unassigned[neg] = struct{}{}
	d.insertBucket(0, pos)
	d.insertBucket(0, neg)
}

// observe bumps every literal of clause by 1 + age/8 (integer division).
// Growing the bump with the age makes older bumps relatively smaller, which
// approximates exponential decay without rescaling every existing score. It is called both when a
// clause is added and when one is learnt.
func (d *decider) observe(literals []Literal) {
	inc := 1 + d.age>>3
	for _, l := range literals {
		old := d.score[l]
		next := old + inc
		d.score[l] = next
		d.removeBucket(old, l)
		d.insertBucket(next, l)
	}
}

// onAssign removes l and its complement from the unassigned set.
func (d *decider) onAssign(l Literal) {
	delete(d.unassigned, l)
	delete(d.unassigned, l.Opposite())
}

// onUnassign reinserts l and its complement into the unassigned set.
func (d *decider) onUnassign(l Literal) {
	d.unassigned[l] = struct{}{}
	d.unassigned[l.Opposite()] = struct{}{}
}

// next returns the highest-scoring unassigned literal, or ok=false if every
// variable is already assigned. The choice within a score bucket is the
// highest literal value in that bucket, which keeps selection deterministic
// across runs instead of depending on map iteration order: randomizing the
// pick within a bucket is intentionally not done, to keep benchmark results
// reproducible.
func (d *decider) next() (lit Literal, ok bool) {
	if len(d.unassigned) == 0 {
		return 0, false
	}
	d.age++

	for i := len(d.scores) - 1; i >= 0; i-- {
		bucket := d.buckets[d.scores[i]]
		for j := len(bucket) - 1; j >= 0; j-- {
			if _, free := d.unassigned[bucket[j]]; free {
				return bucket[j], true
			}
		}
	}
	return 0, false
}

func (d *decider) insertBucket(score int64, l Literal) {
	bucket, ok := d.buckets[score]
	if !ok {
		i := sort.Search(len(d.scores), func(i int) bool { return d.scores[i] >= score })
		d.scores = append(d.scores, 0)
		copy(d.scores[i+1:], d.scores[i:])
		d.scores[i] = score
	}
	i := sort.Search(len(bucket), func(i int) bool { return bucket[i] >= l })
	bucket = append(bucket, 0)
	copy(bucket[i+1:], bucket[i:])
	bucket[i] = l
	d.buckets[score] = bucket
}

func (d *decider) removeBucket(score int64, l Literal) {
	bucket, ok := d.buckets[score]
	if !ok {
		return
	}
	i := sort.Search(len(bucket), func(i int) bool { return bucket[i] >= l })
	if i >= len(bucket) || bucket[i] != l {
		return
	}
	bucket = append(bucket[:i], bucket[i+1:]...)
	if len(bucket) == 0 {
		delete(d.buckets, score)
		j := sort.Search(len(d.scores), func(j int) bool { return d.scores[j] >= score })
		d.scores = append(d.scores[:j], d.scores[j+1:]...)
		return
	}
	d.buckets[score] = bucket
}
