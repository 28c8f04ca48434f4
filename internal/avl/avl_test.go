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

package avl

import (
	"sort"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func ivs(pairs ...[2]int) []Interval[int, string] {
	out := make([]Interval[int, string], len(pairs))
	for i, p := range pairs {
		out[i] = Of[int, string](p[0], p[1], "")
	}
	return out
}

func insertAll(ivs []Interval[int, string]) *Node[int, string] {
	var root *Node[int, string]
	for _, iv := range ivs {
		root = Insert(root, iv)
	}
	return root
}

func checkBalanced[C Coord, D comparable](c *check.C, n *Node[C, D]) {
	if n == nil {
		return
	}
	c.Check(n.balance >= -1 && n.balance <= 1, check.Equals, true, check.Commentf("pivot %v balance %d", n.pivot, n.balance))
	checkBalanced(c, n.left)
	checkBalanced(c, n.right)
}

// checkBST asserts the BST and center properties (spec §3.2/§8) hold
// everywhere in the subtree rooted at n: every interval in n's center
// contains n's pivot, every interval anywhere in the left subtree ends at
// or before n's pivot, and every interval anywhere in the right subtree
// begins after n's pivot. Rotations and prune's pivot promotion are the
// two places that can strand an interval on the wrong side of a bound;
// this check fails on either.
func checkBST[C Coord, D comparable](c *check.C, n *Node[C, D]) {
	if n == nil {
		return
	}
	for _, iv := range n.center {
		c.Check(iv.ContainsPoint(n.pivot), check.Equals, true,
			check.Commentf("center interval %v does not contain pivot %v", iv, n.pivot))
	}
	for _, iv := range AllIntervals(n.left, nil) {
		c.Check(iv.End <= n.pivot, check.Equals, true,
			check.Commentf("left subtree interval %v ends after pivot %v", iv, n.pivot))
	}
	for _, iv := range AllIntervals(n.right, nil) {
		c.Check(iv.Begin > n.pivot, check.Equals, true,
			check.Commentf("right subtree interval %v begins at or before pivot %v", iv, n.pivot))
	}
	checkBST(c, n.left)
	checkBST(c, n.right)
}

func (s *S) TestInsertAndSearchPoint(c *check.C) {
	root := insertAll(ivs([2]int{1, 2}, [2]int{4, 7}, [2]int{5, 9}))
	checkBalanced(c, root)

	got := SearchPoint(root, 6, nil)
	c.Check(len(got), check.Equals, 2)

	got = SearchPoint(root, 2, nil)
	c.Check(len(got), check.Equals, 0)
}

func (s *S) TestSearchOverlap(c *check.C) {
	root := insertAll(ivs([2]int{1, 2}, [2]int{4, 7}, [2]int{5, 9}))
	got := SearchOverlap(root, 1, 5, nil)
	c.Check(len(got), check.Equals, 2)
}

func (s *S) TestRebalanceManyInserts(c *check.C) {
	var root *Node[int, string]
	for i := 0; i < 200; i++ {
		root = Insert(root, Of[int, string](i, i+1, ""))
		checkBalanced(c, root)
	}
	c.Check(Count(root), check.Equals, 200)
}

func (s *S) TestRemove(c *check.C) {
	all := ivs([2]int{0, 10}, [2]int{10, 20}, [2]int{20, 30}, [2]int{30, 40})
	root := insertAll(all)
	var err error
	root, err = Remove(root, all[1])
	c.Assert(err, check.IsNil)
	checkBalanced(c, root)
	c.Check(Count(root), check.Equals, 3)

	remaining := AllIntervals(root, nil)
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Less(remaining[j]) })
	c.Check(remaining, check.DeepEquals, []Interval[int, string]{all[0], all[2], all[3]})
}

func (s *S) TestRemoveNotFound(c *check.C) {
	root := insertAll(ivs([2]int{0, 10}))
	_, err := Remove(root, Of[int, string](100, 200, ""))
	c.Check(err, check.NotNil)
}

func (s *S) TestRemoveAllThenEmpty(c *check.C) {
	all := ivs([2]int{0, 10}, [2]int{5, 15})
	root := insertAll(all)
	var err error
	for _, iv := range all {
		root, err = Remove(root, iv)
		c.Assert(err, check.IsNil)
	}
	c.Check(root, check.IsNil)
}

// TestRotationRehomesWideInterval is the minimal reproducer for the
// rotation re-homing defect: Add([0,50)), Add([40,45)), Add([100,110))
// forces a left rotation on insert of the third interval, which used to
// leave [0,50) stranded in a left subtree whose End exceeds the new
// root's pivot.
func (s *S) TestRotationRehomesWideInterval(c *check.C) {
	root := insertAll(ivs([2]int{0, 50}, [2]int{40, 45}, [2]int{100, 110}))
	checkBalanced(c, root)
	checkBST(c, root)

	got := SearchPoint(root, 44, nil)
	sort.Slice(got, func(i, j int) bool { return got[i].Less(got[j]) })
	c.Check(got, check.DeepEquals, ivs([2]int{0, 50}, [2]int{40, 45}))

	got = SearchOverlap(root, 42, 43, nil)
	sort.Slice(got, func(i, j int) bool { return got[i].Less(got[j]) })
	c.Check(got, check.DeepEquals, ivs([2]int{0, 50}, [2]int{40, 45}))
}

// TestPruneRehomesWideInterval exercises prune's both-children branch.
// Removing [20,21) empties the root's center, forcing a donor to be
// popped from the left subtree (pivot 5, itself holding [0,18) and
// [5,10) in its center, with a right child at pivot 8 holding [8,9)).
// The donor ([8,9)) promotes to root, shrinking the pivot from 20 to 8
// and stranding [0,18) and [5,10) (both End > 8) in what's left of the
// donor-side subtree; they must be re-homed via Insert.
func (s *S) TestPruneRehomesWideInterval(c *check.C) {
	all := ivs(
		[2]int{20, 21}, // root
		[2]int{5, 10},  // left child of root
		[2]int{40, 41}, // right child of root
		[2]int{0, 18},  // joins pivot-5 node's center; wide enough to outlive a shrunk pivot
		[2]int{8, 9},   // right child of the pivot-5 node; becomes prune's donor
	)
	root := insertAll(all)
	checkBST(c, root)

	var err error
	root, err = Remove(root, all[0])
	c.Assert(err, check.IsNil)
	checkBalanced(c, root)
	checkBST(c, root)

	c.Check(Count(root), check.Equals, 4)
	got := SearchPoint(root, 8, nil)
	sort.Slice(got, func(i, j int) bool { return got[i].Less(got[j]) })
	c.Check(got, check.DeepEquals, ivs([2]int{0, 18}, [2]int{5, 10}, [2]int{8, 9}))
}
