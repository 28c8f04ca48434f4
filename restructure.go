package intervaltree

// Chop removes the interior [b, e) from the tree's coverage (spec.md
// §4.3.1): any interval straddling b is trimmed to end at b, any interval
// straddling e is trimmed to begin at e, and any interval fully enveloped
// by [b, e) is deleted. dataFn, if non-nil, computes the replacement
// payload given the original interval and whether the fragment is the
// lower (pre-b) or upper (post-e) half; otherwise the original payload is
// kept.
func (t *Tree[C, D]) Chop(b, e C, dataFn func(iv Interval[C, D], lower bool) D) {
	if b >= e {
		return
	}
	for _, iv := range t.Overlap(b, e) {
		lowerTrim := iv.Begin < b && b < iv.End
		upperTrim := iv.Begin < e && e < iv.End
		enveloped := b <= iv.Begin && iv.End <= e

		if !lowerTrim && !upperTrim && !enveloped {
			continue
		}
		t.Discard(iv)
		if enveloped {
			continue
		}
		if lowerTrim {
			data := iv.Data
			if dataFn != nil {
				data = dataFn(iv, true)
			}
			_ = t.AddInterval(iv.Begin, b, data)
		}
		if upperTrim {
			data := iv.Data
			if dataFn != nil {
				data = dataFn(iv, false)
			}
			_ = t.AddInterval(e, iv.End, data)
		}
	}
}

// Slice splits every interval strictly straddling point into two halves
// meeting at point (spec.md §4.3.1). Intervals with Begin == point or
// End == point are left untouched. dataFn, if non-nil, computes each
// half's payload given the original interval and whether the half is the
// lower (pre-point) or upper (post-point) one; otherwise both halves keep
// the original payload.
func (t *Tree[C, D]) Slice(point C, dataFn func(iv Interval[C, D], lower bool) D) {
	for _, iv := range t.At(point) {
		if iv.Begin == point || iv.End == point {
			continue
		}
		t.Discard(iv)
		lowerData, upperData := iv.Data, iv.Data
		if dataFn != nil {
			lowerData = dataFn(iv, true)
			upperData = dataFn(iv, false)
		}
		_ = t.AddInterval(iv.Begin, point, lowerData)
		_ = t.AddInterval(point, iv.End, upperData)
	}
}

// SplitOverlaps slices at every distinct coordinate appearing in the
// boundary histogram, producing a tree in which no two intervals partially
// overlap (spec.md §4.3.1). Idempotent.
func (t *Tree[C, D]) SplitOverlaps() {
	for _, c := range t.bounds.Keys() {
		t.Slice(c, nil)
	}
}

// MergeOverlaps coalesces every maximal cluster of transitively overlapping
// intervals into one interval spanning the cluster (spec.md §4.3.1). If
// reducer is nil, the payload of the first interval in the cluster (sorted
// ascending by (Begin, End, Data)) survives — deterministic but otherwise
// unspecified, per spec.md §9's open question.
func (t *Tree[C, D]) MergeOverlaps(reducer func(a, b D) D) {
	ivs := sortedByKey(t.All())
	if len(ivs) == 0 {
		return
	}

	type cluster struct {
		begin, end C
		data       D
		members    []Interval[C, D]
	}
	var clusters []cluster
	cur := cluster{begin: ivs[0].Begin, end: ivs[0].End, data: ivs[0].Data, members: ivs[:1]}
	for _, iv := range ivs[1:] {
		if iv.Begin < cur.end {
			if iv.End > cur.end {
				cur.end = iv.End
			}
			if reducer != nil {
				cur.data = reducer(cur.data, iv.Data)
			}
			cur.members = append(cur.members, iv)
			continue
		}
		clusters = append(clusters, cur)
		cur = cluster{begin: iv.Begin, end: iv.End, data: iv.Data, members: []Interval[C, D]{iv}}
	}
	clusters = append(clusters, cur)

	for _, cl := range clusters {
		if len(cl.members) == 1 {
			continue
		}
		for _, iv := range cl.members {
			t.Discard(iv)
		}
		_ = t.AddInterval(cl.begin, cl.end, cl.data)
	}
}

// MergeEquals coalesces intervals sharing identical (Begin, End) into one,
// combining their payloads with reducer (or keeping the first, sorted by
// (Begin, End, Data), if reducer is nil). Unlike MergeOverlaps, intervals
// are only combined when their bounds are exactly equal.
func (t *Tree[C, D]) MergeEquals(reducer func(a, b D) D) {
	ivs := sortedByKey(t.All())
	type key struct{ begin, end C }
	groups := make(map[key][]Interval[C, D])
	order := make([]key, 0)
	for _, iv := range ivs {
		k := key{iv.Begin, iv.End}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], iv)
	}

	for _, k := range order {
		members := groups[k]
		if len(members) == 1 {
			continue
		}
		data := members[0].Data
		for _, iv := range members[1:] {
			if reducer != nil {
				data = reducer(data, iv.Data)
			}
		}
		for _, iv := range members {
			t.Discard(iv)
		}
		_ = t.AddInterval(k.begin, k.end, data)
	}
}
