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

package boundary

import (
	"testing"

	check "gopkg.in/check.v1"
	"github.com/kr/pretty"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestBumpDrop(c *check.C) {
	var t Table[int]
	t.Bump(1)
	t.Bump(4)
	t.Bump(1)
	c.Check(t.Len(), check.Equals, 2)
	c.Check(t.Count(1), check.Equals, 2)
	c.Check(t.Count(4), check.Equals, 1)

	lo, ok := t.Min()
	c.Check(ok, check.Equals, true)
	c.Check(lo, check.Equals, 1)
	hi, ok := t.Max()
	c.Check(ok, check.Equals, true)
	c.Check(hi, check.Equals, 4)

	t.Drop(1)
	c.Check(t.Len(), check.Equals, 2, check.Commentf("%v", pretty.Sprint(t.Keys())))
	c.Check(t.Count(1), check.Equals, 1)

	t.Drop(1)
	c.Check(t.Len(), check.Equals, 1)
	c.Check(t.Count(1), check.Equals, 0)
}

func (s *S) TestEmpty(c *check.C) {
	var t Table[int]
	_, ok := t.Min()
	c.Check(ok, check.Equals, false)
	_, ok = t.Max()
	c.Check(ok, check.Equals, false)
	c.Check(t.Len(), check.Equals, 0)
}

func (s *S) TestKeysAscending(c *check.C) {
	var t Table[int]
	for _, k := range []int{5, 1, 9, 3} {
		t.Bump(k)
	}
	c.Check(t.Keys(), check.DeepEquals, []int{1, 3, 5, 9})
}
