package verify

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/pingcap/check"

	"github.com/ajroetker/go-msort/msort"
	"github.com/ajroetker/go-msort/msort/contrib/workerpool"
)

var _ = check.Suite(&verifyTestSuite{})

func TestT(t *testing.T) {
	check.TestingT(t)
}

type verifyTestSuite struct{}

func prepare(src []int64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range src {
		src[i] = rng.Int63()
	}
}

func (s *verifyTestSuite) TestCheckAcceptsMsort(c *check.C) {
	lens := []int{0, 1, 3, 5, 7, 11, 1024, 1 << 13, 1 << 17}

	for i, n := range lens {
		orig := make([]int64, n)
		prepare(orig, int64(i))
		got := slices.Clone(orig)
		c.Assert(msort.Sort(got), check.IsNil)
		c.Assert(Check(orig, got), check.IsNil)
	}
}

func (s *verifyTestSuite) TestCheckMismatch(c *check.C) {
	orig := []int32{3, 1, 2}
	err := Check(orig, []int32{1, 3, 2})

	var mismatch *MismatchError[int32]
	c.Assert(errors.As(err, &mismatch), check.IsTrue)
	c.Assert(mismatch.Index, check.Equals, 1)
	c.Assert(mismatch.Want, check.Equals, int32(2))
	c.Assert(mismatch.Got, check.Equals, int32(3))
	c.Assert(orig, check.DeepEquals, []int32{3, 1, 2})
}

func (s *verifyTestSuite) TestCheckLength(c *check.C) {
	err := Check([]int32{1, 2}, []int32{1})

	var lengthErr *LengthError
	c.Assert(errors.As(err, &lengthErr), check.IsTrue)
	c.Assert(lengthErr.Want, check.Equals, 2)
	c.Assert(lengthErr.Got, check.Equals, 1)
}

func (s *verifyTestSuite) TestCheckNaN(c *check.C) {
	orig := []float64{2, math.NaN(), 1}
	c.Assert(Check(orig, []float64{math.NaN(), 1, 2}), check.IsNil)
}

func (s *verifyTestSuite) TestChecksumOrderIndependent(c *check.C) {
	a := []uint32{5, 9, 9, 1, 0}
	b := []uint32{9, 0, 1, 9, 5}
	c.Assert(Checksum(a), check.Equals, Checksum(b))
	c.Assert(Permutation(a, b), check.IsTrue)

	// Same sum of values, different multiset.
	c.Assert(Permutation(a, []uint32{5, 9, 8, 2, 0}), check.IsFalse)
	c.Assert(Permutation(a, a[:4]), check.IsFalse)
}

func (s *verifyTestSuite) TestParallelChecksum(c *check.C) {
	pool := workerpool.New(4)
	defer pool.Close()

	data := make([]int64, 100000)
	prepare(data, 42)
	c.Assert(ParallelChecksum(pool, data), check.Equals, Checksum(data))
}
