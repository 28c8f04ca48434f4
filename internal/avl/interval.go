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

// Package avl implements the AVL-balanced node layer of an interval tree:
// a binary search tree whose nodes each carry a local set of intervals
// sharing a common pivot point.
package avl

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

// Coord is the set of coordinate types an Interval may be indexed by: any
// totally ordered, subtractable numeric type.
type Coord interface {
	constraints.Integer | constraints.Float
}

// Interval is an immutable half-open range [Begin, End) optionally carrying
// a payload. Begin, End and Data together form its identity; Data is
// constrained to comparable so that an Interval can itself be used as a Go
// map key, giving the tree's membership set O(1) Contains.
type Interval[C Coord, D comparable] struct {
	Begin, End C
	Data       D
}

// Of constructs an Interval without validating it; validation happens at
// tree entry points (Tree.Add, Tree.AddInterval), not at value construction,
// since a degenerate interval may exist transiently for point-style queries.
func Of[C Coord, D comparable](begin, end C, data D) Interval[C, D] {
	return Interval[C, D]{Begin: begin, End: end, Data: data}
}

// IsNull reports whether the interval is the null interval (Begin >= End).
func (iv Interval[C, D]) IsNull() bool {
	return iv.Begin >= iv.End
}

// Length returns End-Begin, or the zero value for a null interval.
func (iv Interval[C, D]) Length() C {
	if iv.IsNull() {
		var zero C
		return zero
	}
	return iv.End - iv.Begin
}

// ContainsPoint reports whether p falls in [Begin, End).
func (iv Interval[C, D]) ContainsPoint(p C) bool {
	return iv.Begin <= p && p < iv.End
}

// Overlaps reports whether iv shares at least one point with [b, e) under
// half-open semantics.
func (iv Interval[C, D]) Overlaps(b, e C) bool {
	return iv.Begin < e && b < iv.End
}

// OverlapsInterval reports whether iv and other share at least one point.
func (iv Interval[C, D]) OverlapsInterval(other Interval[C, D]) bool {
	return iv.Overlaps(other.Begin, other.End)
}

// ContainsInterval reports whether iv envelops other: iv.Begin <= other.Begin
// and other.End <= iv.End.
func (iv Interval[C, D]) ContainsInterval(other Interval[C, D]) bool {
	return iv.Begin <= other.Begin && other.End <= iv.End
}

// DistanceTo returns the gap between iv and the point x: zero if x overlaps
// iv, otherwise the distance to the nearer endpoint.
func (iv Interval[C, D]) DistanceTo(x C) C {
	if iv.ContainsPoint(x) {
		var zero C
		return zero
	}
	if x < iv.Begin {
		return iv.Begin - x
	}
	return x - iv.End
}

// Compare orders intervals by Begin, then End, then Data, returning a value
// indicating their sort-order relationship, mirroring the Comparable
// convention used throughout the retrieval pack's tree types: negative if
// iv < other, zero if equal, positive if iv > other.
func (iv Interval[C, D]) Compare(other Interval[C, D]) int {
	switch {
	case iv.Begin < other.Begin:
		return -1
	case iv.Begin > other.Begin:
		return 1
	}
	switch {
	case iv.End < other.End:
		return -1
	case iv.End > other.End:
		return 1
	}
	return compareData(iv.Data, other.Data)
}

// Less reports whether iv sorts before other.
func (iv Interval[C, D]) Less(other Interval[C, D]) bool {
	return iv.Compare(other) < 0
}

// Equal reports (Begin, End, Data)-wise equality.
func (iv Interval[C, D]) Equal(other Interval[C, D]) bool {
	return iv == other
}

func (iv Interval[C, D]) String() string {
	return fmt.Sprintf("[%v,%v)=%v", iv.Begin, iv.End, iv.Data)
}

// dataOrderer lets a payload type opt into its own total order; when it
// doesn't, compareData falls back to a stable tag derived from the
// payload's type and representation, so ordering is always total even for
// mutually incomparable payloads (spec §3.1, §9).
type dataOrderer interface {
	CompareData(other any) int
}

func compareData[D comparable](a, b D) int {
	if any(a) == any(b) {
		return 0
	}
	if ca, ok := any(a).(dataOrderer); ok {
		return ca.CompareData(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return strings.Compare(fmt.Sprintf("%v", ta), fmt.Sprintf("%v", tb))
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmpInt64(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmpUint64(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmpFloat64(va.Float(), vb.Float())
	case reflect.String:
		return strings.Compare(va.String(), vb.String())
	default:
		// Stable tag: deterministic but not necessarily meaningful, per
		// the spec's allowance for a type-derived fallback.
		return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
