package intervaltree

import "github.com/chaimleib/intervaltree/internal/step"

// CoverageDepth returns the run-length-encoded stack depth of overlapping
// intervals across [begin, end), as a supplement to the point/overlap/
// envelop queries spec.md §4.3.2 names (SPEC_FULL.md §4). Each Run reports
// how many stored intervals cover every point in [Run.Begin, Run.End).
// Gaps in coverage are reported as runs with Depth == 0.
func (t *Tree[C, D]) CoverageDepth(begin, end C) []step.Run[C] {
	var b step.Builder[C]
	for _, iv := range t.Overlap(begin, end) {
		lo, hi := iv.Begin, iv.End
		if lo < begin {
			lo = begin
		}
		if hi > end {
			hi = end
		}
		b.Add(lo, hi)
	}
	return b.Runs(begin, end)
}
