package intervaltree

// Union returns a new Tree containing every interval in t or other (spec.md
// §4.3.4). Both operands are left unmodified.
func (t *Tree[C, D]) Union(other *Tree[C, D]) *Tree[C, D] {
	out := t.Copy()
	out.UpdateUnion(other)
	return out
}

// UpdateUnion adds every interval of other into t in place.
func (t *Tree[C, D]) UpdateUnion(other *Tree[C, D]) {
	for iv := range other.all {
		_ = t.Add(iv)
	}
}

// Intersection returns a new Tree containing only intervals present in both
// t and other. Both operands are left unmodified.
func (t *Tree[C, D]) Intersection(other *Tree[C, D]) *Tree[C, D] {
	out := New[C, D]()
	small, big := t, other
	if len(other.all) < len(t.all) {
		small, big = other, t
	}
	for iv := range small.all {
		if big.ContainsInterval(iv) {
			_ = out.Add(iv)
		}
	}
	return out
}

// UpdateIntersection reduces t in place to its intersection with other.
func (t *Tree[C, D]) UpdateIntersection(other *Tree[C, D]) {
	for _, iv := range t.All() {
		if !other.ContainsInterval(iv) {
			t.Discard(iv)
		}
	}
}

// Difference returns a new Tree containing intervals in t but not in other.
// Both operands are left unmodified.
func (t *Tree[C, D]) Difference(other *Tree[C, D]) *Tree[C, D] {
	out := New[C, D]()
	for iv := range t.all {
		if !other.ContainsInterval(iv) {
			_ = out.Add(iv)
		}
	}
	return out
}

// UpdateDifference removes from t, in place, every interval also present in
// other.
func (t *Tree[C, D]) UpdateDifference(other *Tree[C, D]) {
	for iv := range other.all {
		t.Discard(iv)
	}
}

// SymmetricDifference returns a new Tree containing intervals present in
// exactly one of t and other. Both operands are left unmodified.
func (t *Tree[C, D]) SymmetricDifference(other *Tree[C, D]) *Tree[C, D] {
	out := New[C, D]()
	for iv := range t.all {
		if !other.ContainsInterval(iv) {
			_ = out.Add(iv)
		}
	}
	for iv := range other.all {
		if !t.ContainsInterval(iv) {
			_ = out.Add(iv)
		}
	}
	return out
}

// UpdateSymmetricDifference replaces t in place with its symmetric
// difference against other.
func (t *Tree[C, D]) UpdateSymmetricDifference(other *Tree[C, D]) {
	var toAdd, toRemove []Interval[C, D]
	for iv := range other.all {
		if t.ContainsInterval(iv) {
			toRemove = append(toRemove, iv)
		} else {
			toAdd = append(toAdd, iv)
		}
	}
	for _, iv := range toRemove {
		t.Discard(iv)
	}
	for _, iv := range toAdd {
		_ = t.Add(iv)
	}
}
