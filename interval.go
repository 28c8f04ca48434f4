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

// Package intervaltree provides a mutable, self-balancing interval tree:
// a container of half-open [begin, end) intervals, each optionally tagged
// with arbitrary comparable data, supporting point, overlap, and
// envelopment queries alongside insertion, deletion, and restructuring.
package intervaltree

import "github.com/chaimleib/intervaltree/internal/avl"

// Coord is the set of coordinate types an interval may be indexed by: any
// totally ordered, subtractable numeric type.
type Coord = avl.Coord

// Interval is an immutable half-open range [Begin, End) optionally carrying
// a payload. It is a value type: clone freely, compare with ==.
type Interval[C Coord, D comparable] = avl.Interval[C, D]

// NewInterval constructs an Interval without validating it. Validation
// happens at tree entry points (Add, AddInterval), not at value
// construction, since a degenerate interval may exist transiently for
// point-style queries (spec.md §4.1).
func NewInterval[C Coord, D comparable](begin, end C, data D) Interval[C, D] {
	return avl.Of[C, D](begin, end, data)
}
