package intervaltree

import (
	"sort"

	"github.com/chaimleib/intervaltree/internal/avl"
	"github.com/chaimleib/intervaltree/internal/boundary"
)

// Tree is a self-balancing interval tree: the combined AVL-balanced BST
// (internal/avl), a flat membership set that is the source of truth for
// "what's in the tree", and a boundary histogram answering Begin/End in
// O(log n) (spec.md §3.3). A Tree is not internally synchronized; callers needing
// concurrent read access must arrange their own external synchronization
// (spec.md §5).
type Tree[C Coord, D comparable] struct {
	root   *avl.Node[C, D]
	all    map[Interval[C, D]]struct{}
	bounds boundary.Table[C]
}

// New returns an empty Tree.
func New[C Coord, D comparable]() *Tree[C, D] {
	return &Tree[C, D]{all: make(map[Interval[C, D]]struct{})}
}

// Tuple is the (begin, end, data) shape FromTuples constructs intervals
// from.
type Tuple[C Coord, D comparable] struct {
	Begin, End C
	Data       D
}

// FromIntervals builds a Tree containing every interval in ivs.
func FromIntervals[C Coord, D comparable](ivs []Interval[C, D]) (*Tree[C, D], error) {
	t := New[C, D]()
	for _, iv := range ivs {
		if err := t.Add(iv); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromTuples builds a Tree from (begin, end, data) triples.
func FromTuples[C Coord, D comparable](tuples []Tuple[C, D]) (*Tree[C, D], error) {
	t := New[C, D]()
	for _, tp := range tuples {
		if err := t.AddInterval(tp.Begin, tp.End, tp.Data); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Copy returns a shallow duplicate: intervals are value types and so are
// shared, but the tree structure is independent of the receiver's.
func (t *Tree[C, D]) Copy() *Tree[C, D] {
	out := New[C, D]()
	for iv := range t.all {
		// Add cannot fail on an interval this tree already accepted.
		_ = out.Add(iv)
	}
	return out
}

// Len returns the number of intervals stored in the tree.
func (t *Tree[C, D]) Len() int { return len(t.all) }

// IsEmpty reports whether the tree holds no intervals.
func (t *Tree[C, D]) IsEmpty() bool { return len(t.all) == 0 }

// ContainsInterval reports whether iv is a member of the tree.
func (t *Tree[C, D]) ContainsInterval(iv Interval[C, D]) bool {
	_, ok := t.all[iv]
	return ok
}

// ContainsI reports whether the interval [begin, end)=data is a member of
// the tree.
func (t *Tree[C, D]) ContainsI(begin, end C, data D) bool {
	return t.ContainsInterval(NewInterval(begin, end, data))
}

// Add inserts iv into the tree. It fails with ErrInvalidInterval if
// begin >= end. If iv is already a member, Add is a no-op (spec.md §4.3.1).
func (t *Tree[C, D]) Add(iv Interval[C, D]) error {
	if iv.IsNull() {
		return ErrInvalidInterval[C]{Begin: iv.Begin, End: iv.End}
	}
	if t.all == nil {
		t.all = make(map[Interval[C, D]]struct{})
	}
	if _, ok := t.all[iv]; ok {
		return nil
	}

	// Mutation is applied as a unit: only commit the histogram bump once
	// the interval is recorded as a member (spec.md §7 propagation policy —
	// no partial mutation may be left behind).
	t.all[iv] = struct{}{}
	t.bounds.Bump(iv.Begin)
	t.bounds.Bump(iv.End)
	t.root = avl.Insert(t.root, iv)
	return nil
}

// AddInterval is the (begin, end, data) convenience form of Add.
func (t *Tree[C, D]) AddInterval(begin, end C, data D) error {
	return t.Add(NewInterval(begin, end, data))
}

// Remove erases iv from the tree. It fails with ErrNotFound if iv is not a
// member.
func (t *Tree[C, D]) Remove(iv Interval[C, D]) error {
	if _, ok := t.all[iv]; !ok {
		return ErrNotFound[C, D]{Begin: iv.Begin, End: iv.End, Data: iv.Data}
	}
	delete(t.all, iv)
	t.bounds.Drop(iv.Begin)
	t.bounds.Drop(iv.End)
	var err error
	t.root, err = avl.Remove(t.root, iv)
	if err != nil {
		// The membership set and node layer have diverged; this should be
		// unreachable, but report it rather than leaving the histogram
		// changes applied against a tree that never actually held iv.
		t.all[iv] = struct{}{}
		t.bounds.Bump(iv.Begin)
		t.bounds.Bump(iv.End)
		return ErrInvariantViolation{Invariant: "membership", Detail: err.Error()}
	}
	return nil
}

// Discard is Remove, but succeeds silently when iv is absent.
func (t *Tree[C, D]) Discard(iv Interval[C, D]) {
	_ = t.Remove(iv)
}

// RemoveOverlapPoint removes every interval containing p.
func (t *Tree[C, D]) RemoveOverlapPoint(p C) {
	for _, iv := range t.At(p) {
		t.Discard(iv)
	}
}

// RemoveOverlapRange removes every interval overlapping [b, e). Per
// spec.md §9's resolution of a historical inconsistency, b > e yields no
// removals rather than being treated as a point query.
func (t *Tree[C, D]) RemoveOverlapRange(b, e C) {
	for _, iv := range t.Overlap(b, e) {
		t.Discard(iv)
	}
}

// RemoveEnvelop removes every interval i with b <= i.Begin and i.End <= e.
func (t *Tree[C, D]) RemoveEnvelop(b, e C) {
	for _, iv := range t.Envelop(b, e) {
		t.Discard(iv)
	}
}

// Clear drops the root, membership set, and boundary histogram in O(1).
func (t *Tree[C, D]) Clear() {
	t.root = nil
	t.all = make(map[Interval[C, D]]struct{})
	t.bounds = boundary.Table[C]{}
}

// Empty is a synonym for Clear, matching the container-operator name used
// throughout spec.md §4.3.1.
func (t *Tree[C, D]) Empty() { t.Clear() }

// At returns every interval containing point.
func (t *Tree[C, D]) At(point C) []Interval[C, D] {
	return avl.SearchPoint(t.root, point, nil)
}

// Overlap returns every interval overlapping [begin, end). If begin >= end,
// the result is empty (spec.md §4.3.2's half-open-consistent fix).
func (t *Tree[C, D]) Overlap(begin, end C) []Interval[C, D] {
	if begin >= end {
		return nil
	}
	return avl.SearchOverlap(t.root, begin, end, nil)
}

// Envelop returns every interval i with begin <= i.Begin and i.End <= end.
func (t *Tree[C, D]) Envelop(begin, end C) []Interval[C, D] {
	candidates := t.Overlap(begin, end)
	out := candidates[:0:0]
	for _, iv := range candidates {
		if begin <= iv.Begin && iv.End <= end {
			out = append(out, iv)
		}
	}
	return out
}

// OverlapsPoint reports whether any interval contains p.
func (t *Tree[C, D]) OverlapsPoint(p C) bool {
	return len(t.At(p)) > 0
}

// Overlaps reports whether any interval overlaps [begin, end).
func (t *Tree[C, D]) Overlaps(begin, end C) bool {
	return len(t.Overlap(begin, end)) > 0
}

// Begin returns the smallest stored endpoint, or the zero value if the
// tree is empty. O(log n): the minimum is found by walking the boundary
// histogram's tree, not read from a cache.
func (t *Tree[C, D]) Begin() C {
	c, _ := t.bounds.Min()
	return c
}

// End returns the largest stored endpoint, or the zero value if the tree
// is empty. O(log n): the maximum is found by walking the boundary
// histogram's tree, not read from a cache.
func (t *Tree[C, D]) End() C {
	c, _ := t.bounds.Max()
	return c
}

// Range returns an interval spanning [Begin(), End()).
func (t *Tree[C, D]) Range() Interval[C, D] {
	var zero D
	return NewInterval(t.Begin(), t.End(), zero)
}

// Span returns End() - Begin().
func (t *Tree[C, D]) Span() C {
	return t.End() - t.Begin()
}

// All returns every interval stored in the tree. Order is unspecified but
// deterministic within one tree instance: avl.AllIntervals walks the BST
// in order (left subtree, sorted center, right subtree), which is not
// sorted by Begin overall, since a center interval may begin before
// intervals in its node's left subtree.
func (t *Tree[C, D]) All() []Interval[C, D] {
	return avl.AllIntervals(t.root, make([]Interval[C, D], 0, len(t.all)))
}

// Items is a synonym for All.
func (t *Tree[C, D]) Items() []Interval[C, D] { return t.All() }

// Equal reports set-equality of membership between t and other.
func (t *Tree[C, D]) Equal(other *Tree[C, D]) bool {
	if len(t.all) != len(other.all) {
		return false
	}
	for iv := range t.all {
		if _, ok := other.all[iv]; !ok {
			return false
		}
	}
	return true
}

// Score returns a diagnostic value in [0, 1] measuring how tight the tree
// is (spec.md §4.2.3). Advisory only; not on any hot path.
func (t *Tree[C, D]) Score() float64 {
	return avl.Score(t.root)
}

// Verify re-checks every invariant in spec.md §3.2-§3.3 and fails with a
// descriptive error naming the first one broken.
func (t *Tree[C, D]) Verify() error {
	if len(t.all) != avl.Count(t.root) {
		return ErrInvariantViolation{
			Invariant: "membership identity",
			Detail:    "len(membership set) != sum of node center sizes",
		}
	}
	for iv := range t.all {
		found := false
		for _, got := range avl.SearchPoint(t.root, iv.Begin, nil) {
			if got == iv {
				found = true
				break
			}
		}
		if !found {
			return ErrInvariantViolation{Invariant: "membership identity", Detail: "interval missing from tree"}
		}
	}

	if err := verifyNode[C, D](t.root); err != nil {
		return err
	}
	if err := verifyBST[C, D](t.root); err != nil {
		return err
	}

	want := make(map[C]int)
	for iv := range t.all {
		want[iv.Begin]++
		want[iv.End]++
	}
	for c, n := range want {
		if t.bounds.Count(c) != n {
			return ErrInvariantViolation{Invariant: "boundary histogram soundness", Detail: "count mismatch"}
		}
	}

	if !t.IsEmpty() {
		var minBegin, maxEnd C
		first := true
		for iv := range t.all {
			if first || iv.Begin < minBegin {
				minBegin = iv.Begin
			}
			if first || iv.End > maxEnd {
				maxEnd = iv.End
			}
			first = false
		}
		if t.Begin() != minBegin || t.End() != maxEnd {
			return ErrInvariantViolation{Invariant: "begin/end exactness", Detail: "Begin()/End() mismatch"}
		}
	}

	return nil
}

// verifyNode recursively checks the center, AVL, and depth-correctness
// invariants of spec.md §3.2 at every node.
func verifyNode[C Coord, D comparable](n *avl.Node[C, D]) error {
	if n == nil {
		return nil
	}
	for _, iv := range n.Center() {
		if !(iv.Begin <= n.Pivot() && n.Pivot() < iv.End) {
			return ErrInvariantViolation{Invariant: "center property", Detail: iv.String()}
		}
	}
	if n.Balance() < -1 || n.Balance() > 1 {
		return ErrInvariantViolation{Invariant: "AVL property", Detail: "balance factor out of range"}
	}
	left, right := avl.Depth(n.Left()), avl.Depth(n.Right())
	want := left
	if right > left {
		want = right
	}
	want++
	if want != n.Depth() {
		return ErrInvariantViolation{Invariant: "depth correctness", Detail: "stale depth"}
	}
	if err := verifyNode[C, D](n.Left()); err != nil {
		return err
	}
	return verifyNode[C, D](n.Right())
}

func verifyBST[C Coord, D comparable](n *avl.Node[C, D]) error {
	if n == nil {
		return nil
	}
	for _, iv := range avl.AllIntervals(n.Left(), nil) {
		if iv.End > n.Pivot() {
			return ErrInvariantViolation{Invariant: "BST property", Detail: "left subtree interval ends after pivot"}
		}
	}
	for _, iv := range avl.AllIntervals(n.Right(), nil) {
		if iv.Begin <= n.Pivot() {
			return ErrInvariantViolation{Invariant: "BST property", Detail: "right subtree interval begins at or before pivot"}
		}
	}
	if err := verifyBST[C, D](n.Left()); err != nil {
		return err
	}
	return verifyBST[C, D](n.Right())
}

// sortedByKey sorts intervals into ascending (Begin, End, Data) order, in
// place, for restructure.go's deterministic reducer ordering.
func sortedByKey[C Coord, D comparable](ivs []Interval[C, D]) []Interval[C, D] {
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].Less(ivs[j]) })
	return ivs
}
