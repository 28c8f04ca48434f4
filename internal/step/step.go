// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package step implements a run-length encoded step vector, as
// biogo/store/step does, specialized here to hold an int coverage-depth
// value per run rather than an arbitrary Equaler payload: exactly the
// reduced shape that Tree.CoverageDepth needs, built on the same sweep-line
// idea step.Vector.SetRange uses internally, rather than re-deriving
// biogo/store/step's general mutable, relaxed-resize Vector type.
package step

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Run is one maximal sub-range of constant coverage depth.
type Run[C constraints.Ordered] struct {
	Begin, End C
	Depth      int
}

// event is a +1 (open) or -1 (close) mark at a coordinate.
type event[C constraints.Ordered] struct {
	at    C
	delta int
}

// Builder accumulates open/close events for a set of half-open ranges and
// reduces them to a run-length coverage-depth vector.
type Builder[C constraints.Ordered] struct {
	events []event[C]
}

// Add marks depth+1 over [begin, end).
func (b *Builder[C]) Add(begin, end C) {
	b.events = append(b.events, event[C]{at: begin, delta: 1}, event[C]{at: end, delta: -1})
}

// Runs reduces the accumulated events into ascending, maximal, constant
// depth runs covering [lo, hi). Runs of depth zero are included so callers
// can see gaps as well as coverage.
func (b *Builder[C]) Runs(lo, hi C) []Run[C] {
	sort.Slice(b.events, func(i, j int) bool {
		if b.events[i].at != b.events[j].at {
			return b.events[i].at < b.events[j].at
		}
		// Closes before opens at the same coordinate, matching half-open
		// semantics: a run ending at x does not overlap one starting at x.
		return b.events[i].delta < b.events[j].delta
	})

	var runs []Run[C]
	depth := 0
	cursor := lo
	flush := func(to C) {
		if cursor < to {
			if n := len(runs); n > 0 && runs[n-1].Depth == depth {
				runs[n-1].End = to
			} else {
				runs = append(runs, Run[C]{Begin: cursor, End: to, Depth: depth})
			}
		}
		cursor = to
	}
	for _, ev := range b.events {
		if ev.at <= lo {
			depth += ev.delta
			continue
		}
		if ev.at >= hi {
			break
		}
		flush(ev.at)
		depth += ev.delta
	}
	flush(hi)
	return runs
}
