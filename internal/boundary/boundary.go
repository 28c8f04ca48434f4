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

// Package boundary implements the tree's boundary histogram: an ordered
// coordinate→count multiset, giving O(log n) Min/Max (a walk down the
// leftmost or rightmost spine; the extremes are not cached) and O(log n)
// Bump/Drop. It is a Left-Leaning Red-Black tree, generified from
// biogo/store/llrb's interface-based Comparable tree, specialized to the
// coordinate-keyed counting table spec.md §3.3/§9 asks for ("a balanced
// map ... suffices").
package boundary

import "golang.org/x/exp/constraints"

const (
	td234 = iota
	bu23
)

// mode is the operation mode of the underlying LLRB tree.
const mode = bu23

// color represents the color of a node.
type color bool

const (
	red   color = false
	black color = true
)

type node[K constraints.Ordered] struct {
	key         K
	count       int
	left, right *node[K]
	color       color
}

// Table is an ordered multiset mapping coordinates to the number of stored
// intervals using them as an endpoint.
type Table[K constraints.Ordered] struct {
	root *node[K]
	size int // distinct keys currently present
}

func (n *node[K]) getColor() color {
	if n == nil {
		return black
	}
	return n.color
}

func (n *node[K]) rotateLeft() (root *node[K]) {
	root = n.right
	n.right = root.left
	root.left = n
	root.color = n.color
	n.color = red
	return
}

func (n *node[K]) rotateRight() (root *node[K]) {
	root = n.left
	n.left = root.right
	root.right = n
	root.color = n.color
	n.color = red
	return
}

func (n *node[K]) flipColors() {
	n.color = !n.color
	n.left.color = !n.left.color
	n.right.color = !n.right.color
}

func (n *node[K]) fixUp() *node[K] {
	if n.right.getColor() == red {
		if mode == td234 && n.right.left.getColor() == red {
			n.right = n.right.rotateRight()
		}
		n = n.rotateLeft()
	}
	if n.left.getColor() == red && n.left.left.getColor() == red {
		n = n.rotateRight()
	}
	if mode == bu23 && n.left.getColor() == red && n.right.getColor() == red {
		n.flipColors()
	}
	return n
}

func (n *node[K]) moveRedLeft() *node[K] {
	n.flipColors()
	if n.right.left.getColor() == red {
		n.right = n.right.rotateRight()
		n = n.rotateLeft()
		n.flipColors()
		if mode == td234 && n.right.right.getColor() == red {
			n.right = n.right.rotateLeft()
		}
	}
	return n
}

func (n *node[K]) moveRedRight() *node[K] {
	n.flipColors()
	if n.left.left.getColor() == red {
		n = n.rotateRight()
		n.flipColors()
	}
	return n
}

// Len returns the number of distinct coordinates currently present.
func (t *Table[K]) Len() int { return t.size }

// Count returns the number of stored interval endpoints at k.
func (t *Table[K]) Count(k K) int {
	n := t.root
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

// Bump increments the count at k by one, inserting k if absent.
func (t *Table[K]) Bump(k K) {
	var grew bool
	t.root, grew = t.root.bump(k)
	if grew {
		t.size++
	}
	t.root.color = black
}

func (n *node[K]) bump(k K) (root *node[K], grew bool) {
	if n == nil {
		return &node[K]{key: k, count: 1, color: red}, true
	}

	if mode == td234 {
		if n.left.getColor() == red && n.right.getColor() == red {
			n.flipColors()
		}
	}

	switch {
	case k < n.key:
		n.left, grew = n.left.bump(k)
	case k > n.key:
		n.right, grew = n.right.bump(k)
	default:
		n.count++
	}

	if n.right.getColor() == red && n.left.getColor() == black {
		n = n.rotateLeft()
	}
	if n.left.getColor() == red && n.left.left.getColor() == red {
		n = n.rotateRight()
	}
	if mode == bu23 {
		if n.left.getColor() == red && n.right.getColor() == red {
			n.flipColors()
		}
	}

	return n, grew
}

// Drop decrements the count at k by one, removing the entry entirely once
// it reaches zero (spec §3.3: "count reaches zero → entry removed").
func (t *Table[K]) Drop(k K) {
	if t.root == nil {
		return
	}
	if t.root.count1(k) > 1 {
		t.root.decrement(k)
		return
	}
	var shrank bool
	t.root, shrank = t.root.delete(k)
	if shrank {
		t.size--
	}
	if t.root != nil {
		t.root.color = black
	}
}

func (n *node[K]) count1(k K) int {
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

func (n *node[K]) decrement(k K) {
	for {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			n.count--
			return
		}
	}
}

func (n *node[K]) delete(k K) (root *node[K], shrank bool) {
	if k < n.key {
		if n.left != nil {
			if n.left.getColor() == black && n.left.left.getColor() == black {
				n = n.moveRedLeft()
			}
			n.left, shrank = n.left.delete(k)
		}
	} else {
		if n.left.getColor() == red {
			n = n.rotateRight()
		}
		if k == n.key && n.right == nil {
			return nil, true
		}
		if n.right != nil {
			if n.right.getColor() == black && n.right.left.getColor() == black {
				n = n.moveRedRight()
			}
			if k == n.key {
				m := n.right.min()
				n.key, n.count = m.key, m.count
				n.right, shrank = n.right.deleteMin()
			} else {
				n.right, shrank = n.right.delete(k)
			}
		}
	}
	return n.fixUp(), shrank
}

func (n *node[K]) deleteMin() (root *node[K], shrank bool) {
	if n.left == nil {
		return nil, true
	}
	if n.left.getColor() == black && n.left.left.getColor() == black {
		n = n.moveRedLeft()
	}
	n.left, shrank = n.left.deleteMin()
	return n.fixUp(), shrank
}

func (n *node[K]) min() *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K]) max() *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest coordinate present and true, or the zero value
// and false if the table is empty.
func (t *Table[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.min().key, true
}

// Max returns the largest coordinate present and true, or the zero value
// and false if the table is empty.
func (t *Table[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.max().key, true
}

// Do calls fn with every distinct coordinate present, in ascending order.
// If fn returns true, Do stops early.
func (t *Table[K]) Do(fn func(K) bool) {
	if t.root != nil {
		t.root.do(fn)
	}
}

func (n *node[K]) do(fn func(K) bool) bool {
	if n.left != nil && n.left.do(fn) {
		return true
	}
	if fn(n.key) {
		return true
	}
	if n.right != nil {
		return n.right.do(fn)
	}
	return false
}

// Keys returns every distinct coordinate present, in ascending order.
func (t *Table[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Do(func(k K) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}
