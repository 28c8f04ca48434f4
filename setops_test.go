package intervaltree

import check "gopkg.in/check.v1"

type SetOpsSuite struct{}

var _ = check.Suite(&SetOpsSuite{})

func build(c *check.C, ranges ...[2]int) *Tree[int, string] {
	tr := New[int, string]()
	for _, r := range ranges {
		c.Assert(tr.AddInterval(r[0], r[1], ""), check.IsNil)
	}
	return tr
}

func (s *SetOpsSuite) TestUnion(c *check.C) {
	a := build(c, [2]int{0, 10}, [2]int{20, 30})
	b := build(c, [2]int{20, 30}, [2]int{40, 50})

	u := a.Union(b)
	c.Check(u.Len(), check.Equals, 3)
	c.Check(a.Len(), check.Equals, 2)
	c.Check(b.Len(), check.Equals, 2)
}

func (s *SetOpsSuite) TestUpdateUnion(c *check.C) {
	a := build(c, [2]int{0, 10})
	b := build(c, [2]int{0, 10}, [2]int{20, 30})
	a.UpdateUnion(b)
	c.Check(a.Len(), check.Equals, 2)
}

func (s *SetOpsSuite) TestIntersection(c *check.C) {
	a := build(c, [2]int{0, 10}, [2]int{20, 30})
	b := build(c, [2]int{20, 30}, [2]int{40, 50})

	i := a.Intersection(b)
	c.Check(i.Len(), check.Equals, 1)
	c.Check(i.ContainsI(20, 30, ""), check.Equals, true)
}

func (s *SetOpsSuite) TestUpdateIntersection(c *check.C) {
	a := build(c, [2]int{0, 10}, [2]int{20, 30})
	b := build(c, [2]int{20, 30})
	a.UpdateIntersection(b)
	c.Check(a.Len(), check.Equals, 1)
	c.Check(a.ContainsI(20, 30, ""), check.Equals, true)
}

func (s *SetOpsSuite) TestDifference(c *check.C) {
	a := build(c, [2]int{0, 10}, [2]int{20, 30})
	b := build(c, [2]int{20, 30})
	d := a.Difference(b)
	c.Check(d.Len(), check.Equals, 1)
	c.Check(d.ContainsI(0, 10, ""), check.Equals, true)
}

func (s *SetOpsSuite) TestUpdateDifference(c *check.C) {
	a := build(c, [2]int{0, 10}, [2]int{20, 30})
	b := build(c, [2]int{20, 30})
	a.UpdateDifference(b)
	c.Check(a.Len(), check.Equals, 1)
	c.Check(a.ContainsI(0, 10, ""), check.Equals, true)
}

func (s *SetOpsSuite) TestSymmetricDifference(c *check.C) {
	a := build(c, [2]int{0, 10}, [2]int{20, 30})
	b := build(c, [2]int{20, 30}, [2]int{40, 50})
	sd := a.SymmetricDifference(b)
	c.Check(sd.Len(), check.Equals, 2)
	c.Check(sd.ContainsI(0, 10, ""), check.Equals, true)
	c.Check(sd.ContainsI(40, 50, ""), check.Equals, true)
	c.Check(sd.ContainsI(20, 30, ""), check.Equals, false)
}

func (s *SetOpsSuite) TestUpdateSymmetricDifference(c *check.C) {
	a := build(c, [2]int{0, 10}, [2]int{20, 30})
	b := build(c, [2]int{20, 30}, [2]int{40, 50})
	a.UpdateSymmetricDifference(b)
	c.Check(a.Len(), check.Equals, 2)
	c.Check(a.ContainsI(0, 10, ""), check.Equals, true)
	c.Check(a.ContainsI(40, 50, ""), check.Equals, true)
}
