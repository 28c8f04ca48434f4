// Package genome is a thin external collaborator over intervaltree: an
// index of independent trees keyed by chromosome name, matching the
// interface spec.md §6 describes without naming a concrete type.
package genome

import "github.com/chaimleib/intervaltree"

// Index is a set of intervaltree.Tree values keyed by chromosome name. Each
// chromosome's tree is created lazily on first touch and is otherwise
// independent of every other chromosome's: no query or mutation crosses
// chromosome boundaries.
type Index[C intervaltree.Coord, D comparable] struct {
	chroms map[string]*intervaltree.Tree[C, D]
}

// NewIndex returns an empty Index.
func NewIndex[C intervaltree.Coord, D comparable]() *Index[C, D] {
	return &Index[C, D]{chroms: make(map[string]*intervaltree.Tree[C, D])}
}

// Tree returns the tree for chrom, creating an empty one if this is the
// first reference to chrom.
func (x *Index[C, D]) Tree(chrom string) *intervaltree.Tree[C, D] {
	if t, ok := x.chroms[chrom]; ok {
		return t
	}
	t := intervaltree.New[C, D]()
	x.chroms[chrom] = t
	return t
}

// Has reports whether chrom has ever been touched via Tree, Add, or
// AddInterval.
func (x *Index[C, D]) Has(chrom string) bool {
	_, ok := x.chroms[chrom]
	return ok
}

// Chromosomes returns the names of every chromosome touched so far. Order
// is unspecified.
func (x *Index[C, D]) Chromosomes() []string {
	names := make([]string, 0, len(x.chroms))
	for name := range x.chroms {
		names = append(names, name)
	}
	return names
}

// Add inserts iv into chrom's tree, creating the tree if necessary.
func (x *Index[C, D]) Add(chrom string, iv intervaltree.Interval[C, D]) error {
	return x.Tree(chrom).Add(iv)
}

// AddInterval is the (begin, end, data) convenience form of Add.
func (x *Index[C, D]) AddInterval(chrom string, begin, end C, data D) error {
	return x.Tree(chrom).AddInterval(begin, end, data)
}

// At returns every interval on chrom containing point. A chromosome that
// has never been touched has no intervals.
func (x *Index[C, D]) At(chrom string, point C) []intervaltree.Interval[C, D] {
	t, ok := x.chroms[chrom]
	if !ok {
		return nil
	}
	return t.At(point)
}

// Overlap returns every interval on chrom overlapping [begin, end).
func (x *Index[C, D]) Overlap(chrom string, begin, end C) []intervaltree.Interval[C, D] {
	t, ok := x.chroms[chrom]
	if !ok {
		return nil
	}
	return t.Overlap(begin, end)
}

// Len returns the total number of intervals stored across every
// chromosome.
func (x *Index[C, D]) Len() int {
	n := 0
	for _, t := range x.chroms {
		n += t.Len()
	}
	return n
}

// Copy returns an independent duplicate of the index: every chromosome's
// tree is copied via Tree.Copy, so mutating one index never affects the
// other.
func (x *Index[C, D]) Copy() *Index[C, D] {
	out := NewIndex[C, D]()
	for chrom, t := range x.chroms {
		out.chroms[chrom] = t.Copy()
	}
	return out
}
