package intervaltree

import check "gopkg.in/check.v1"

type RestructureSuite struct{}

var _ = check.Suite(&RestructureSuite{})

func (s *RestructureSuite) TestChopWithDataFn(c *check.C) {
	tr := New[int, string]()
	c.Assert(tr.AddInterval(0, 10, "orig"), check.IsNil)
	tr.Chop(3, 7, func(iv Interval[int, string], lower bool) string {
		if lower {
			return "lo"
		}
		return "hi"
	})
	got := sortedStrings(tr.All())
	c.Check(got, check.DeepEquals, []Interval[int, string]{
		NewInterval(0, 3, "lo"), NewInterval(7, 10, "hi"),
	})
}

func (s *RestructureSuite) TestChopEnvelopedIsDeleted(c *check.C) {
	tr := New[int, string]()
	c.Assert(tr.AddInterval(4, 6, ""), check.IsNil)
	tr.Chop(0, 10, nil)
	c.Check(tr.Len(), check.Equals, 0)
}

func (s *RestructureSuite) TestChopReverseRangeIsNoop(c *check.C) {
	tr := New[int, string]()
	c.Assert(tr.AddInterval(0, 10, ""), check.IsNil)
	tr.Chop(7, 3, nil)
	c.Check(tr.Len(), check.Equals, 1)
}

func (s *RestructureSuite) TestSliceLeavesBoundaryAlignedIntervalsUntouched(c *check.C) {
	tr := New[int, string]()
	c.Assert(tr.AddInterval(0, 5, ""), check.IsNil)
	tr.Slice(0, nil)
	c.Check(tr.Len(), check.Equals, 1)
	tr.Slice(5, nil)
	c.Check(tr.Len(), check.Equals, 1)
}

func (s *RestructureSuite) TestMergeEquals(c *check.C) {
	tr := New[int, string]()
	c.Assert(tr.AddInterval(0, 10, "a"), check.IsNil)
	c.Assert(tr.AddInterval(0, 10, "b"), check.IsNil)
	c.Assert(tr.AddInterval(20, 30, "c"), check.IsNil)

	tr.MergeEquals(func(a, b string) string { return a + b })
	c.Check(tr.Len(), check.Equals, 2)
	c.Check(tr.At(5)[0].Data, check.Equals, "ab")
}

func (s *RestructureSuite) TestMergeOverlapsWithReducer(c *check.C) {
	tr := New[int, string]()
	c.Assert(tr.AddInterval(1, 3, "x"), check.IsNil)
	c.Assert(tr.AddInterval(2, 4, "y"), check.IsNil)

	tr.MergeOverlaps(func(a, b string) string { return a + b })
	c.Check(tr.Len(), check.Equals, 1)
	c.Check(tr.At(2)[0].Data, check.Equals, "xy")
}
