package avl

// ErrNotFound is returned by Remove when iv cannot be located at the node
// the BST routes to. It is only reachable if invariants were already
// violated, since the facade confirms membership before calling in.
type ErrNotFound struct{}

func (ErrNotFound) Error() string { return "avl: interval not found" }

// Remove locates the node whose center holds iv, erases it, and prunes the
// node if its center becomes empty, rebalancing on the way back up (spec
// §4.2, §4.2.2). Returns the new root of this subtree.
func Remove[C Coord, D comparable](n *Node[C, D], iv Interval[C, D]) (*Node[C, D], error) {
	if n == nil {
		return nil, ErrNotFound{}
	}

	var err error
	switch {
	case iv.ContainsPoint(n.pivot):
		idx := -1
		for i, c := range n.center {
			if c.Equal(iv) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return n, ErrNotFound{}
		}
		n.center = append(n.center[:idx], n.center[idx+1:]...)
		if len(n.center) == 0 {
			return prune(n), nil
		}
		return n, nil
	case iv.End <= n.pivot:
		n.left, err = Remove(n.left, iv)
	default:
		n.right, err = Remove(n.right, iv)
	}
	if err != nil {
		return n, err
	}
	return n.rebalance(), nil
}

// prune handles a node whose center has just emptied, per spec §4.2.2.
func prune[C Coord, D comparable](n *Node[C, D]) *Node[C, D] {
	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}

	// Both children exist: pop a donor from the heavier side to preserve
	// balance, promote its center and pivot into this node, and splice the
	// donor out of its subtree. The new pivot shifts the BST bound for
	// whichever side donated it (shrinks if donated from the left, grows
	// if from the right), so that whole subtree must be re-checked against
	// the new pivot, not just the donor's former position: an interval
	// parked deep in that subtree may have relied on the old pivot's bound
	// without ever being bound by any intermediate node's own pivot (spec
	// §4.2.2's "intervals whose coverage of the new local pivot has
	// changed").
	var donor *Node[C, D]
	var stray []Interval[C, D]
	if n.balance <= 0 {
		donor, n.left = popGreatest(n.left)
		n.pivot = donor.pivot
		n.center = donor.center
		n.left, stray = extractAbove(n.left, n.pivot)
	} else {
		donor, n.right = popLeast(n.right)
		n.pivot = donor.pivot
		n.center = donor.center
		n.right, stray = extractBelow(n.right, n.pivot)
	}

	root := n.rebalance()
	for _, iv := range stray {
		root = Insert(root, iv)
	}
	return root
}

// extractAbove walks the subtree rooted at n, pulling out every interval
// whose End exceeds bound (the new, shrunk pivot bound imposed by a
// promotion above it) and returns the repaired subtree alongside the
// extracted intervals for the caller to re-insert.
func extractAbove[C Coord, D comparable](n *Node[C, D], bound C) (*Node[C, D], []Interval[C, D]) {
	if n == nil {
		return nil, nil
	}
	kept := n.center[:0:0]
	var stray []Interval[C, D]
	for _, iv := range n.center {
		if iv.End > bound {
			stray = append(stray, iv)
		} else {
			kept = append(kept, iv)
		}
	}
	n.center = kept

	var leftStray, rightStray []Interval[C, D]
	n.left, leftStray = extractAbove(n.left, bound)
	n.right, rightStray = extractAbove(n.right, bound)
	stray = append(stray, leftStray...)
	stray = append(stray, rightStray...)

	if len(n.center) == 0 {
		return prune(n), stray
	}
	n.recompute()
	return n, stray
}

// extractBelow is extractAbove's mirror for a pivot that grew: it pulls
// out every interval whose Begin no longer exceeds bound.
func extractBelow[C Coord, D comparable](n *Node[C, D], bound C) (*Node[C, D], []Interval[C, D]) {
	if n == nil {
		return nil, nil
	}
	kept := n.center[:0:0]
	var stray []Interval[C, D]
	for _, iv := range n.center {
		if iv.Begin <= bound {
			stray = append(stray, iv)
		} else {
			kept = append(kept, iv)
		}
	}
	n.center = kept

	var leftStray, rightStray []Interval[C, D]
	n.left, leftStray = extractBelow(n.left, bound)
	n.right, rightStray = extractBelow(n.right, bound)
	stray = append(stray, leftStray...)
	stray = append(stray, rightStray...)

	if len(n.center) == 0 {
		return prune(n), stray
	}
	n.recompute()
	return n, stray
}

// popGreatest removes and returns the greatest-pivot node in the subtree
// rooted at n, along with the new root of that subtree. The caller
// installs the donor's pivot/center onto the node being pruned.
func popGreatest[C Coord, D comparable](n *Node[C, D]) (donor *Node[C, D], root *Node[C, D]) {
	if n.right == nil {
		return n, n.left
	}
	var newRight *Node[C, D]
	donor, newRight = popGreatest(n.right)
	n.right = newRight
	return donor, n.rebalance()
}

// popLeast removes and returns the least-pivot node in the subtree rooted
// at n, along with the new root of that subtree.
func popLeast[C Coord, D comparable](n *Node[C, D]) (donor *Node[C, D], root *Node[C, D]) {
	if n.left == nil {
		return n, n.right
	}
	var newLeft *Node[C, D]
	donor, newLeft = popLeast(n.left)
	n.left = newLeft
	return donor, n.rebalance()
}
