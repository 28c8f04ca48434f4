package avl

import "math"

// SearchPoint walks the tree collecting every center interval that
// contains p, recursing into the side of the BST that can still hold a
// match (spec §4.2 search_point).
func SearchPoint[C Coord, D comparable](n *Node[C, D], p C, out []Interval[C, D]) []Interval[C, D] {
	for n != nil {
		for _, iv := range n.center {
			if iv.ContainsPoint(p) {
				out = append(out, iv)
			}
		}
		if p < n.pivot {
			n = n.left
		} else {
			n = n.right
		}
	}
	return out
}

// SearchOverlap walks the tree collecting every center interval that
// overlaps [b, e), visiting both children when the query straddles the
// pivot (spec §4.2 search_overlap).
func SearchOverlap[C Coord, D comparable](n *Node[C, D], b, e C, out []Interval[C, D]) []Interval[C, D] {
	if n == nil {
		return out
	}
	if b < n.pivot {
		out = SearchOverlap(n.left, b, e, out)
	}
	for _, iv := range n.center {
		if iv.Overlaps(b, e) {
			out = append(out, iv)
		}
	}
	if e > n.pivot {
		out = SearchOverlap(n.right, b, e, out)
	}
	return out
}

// AllIntervals appends this subtree's entire contents (center plus both
// children's contents) to out.
func AllIntervals[C Coord, D comparable](n *Node[C, D], out []Interval[C, D]) []Interval[C, D] {
	if n == nil {
		return out
	}
	out = AllIntervals(n.left, out)
	out = append(out, n.center...)
	out = AllIntervals(n.right, out)
	return out
}

// Count returns the number of intervals stored in the subtree rooted at n.
func Count[C Coord, D comparable](n *Node[C, D]) int {
	if n == nil {
		return 0
	}
	return len(n.center) + Count(n.left) + Count(n.right)
}

// Score measures how tight the tree is, per spec §4.2.3: for each subtree,
// 1 - (depth - log2(size))/size, clamped to [0,1]; the tree's score is the
// maximum subscore over all subtrees. Purely diagnostic.
func Score[C Coord, D comparable](n *Node[C, D]) float64 {
	best := 0.0
	var walk func(*Node[C, D])
	walk = func(n *Node[C, D]) {
		if n == nil {
			return
		}
		size := Count(n)
		if size > 0 {
			sub := 1 - (float64(n.depth)-math.Log2(float64(size)))/float64(size)
			if sub < 0 {
				sub = 0
			}
			if sub > 1 {
				sub = 1
			}
			if sub > best {
				best = sub
			}
		}
		walk(n.left)
		walk(n.right)
	}
	walk(n)
	return best
}
