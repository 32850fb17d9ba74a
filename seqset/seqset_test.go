package seqset_test

import (
	"testing"

	"github.com/mailwire/imapcore/seqset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *seqset.SequenceSet {
	t.Helper()
	set, err := seqset.FromString(s)
	require.NoError(t, err, "FromString(%q)", s)
	return set
}

func TestFromStringInvalid(t *testing.T) {
	cases := []string{"", " 1", "1 ", "0", "0:2", "1::2", "1,", ",1", "abc", "1:*:2", "4294967297"}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			_, err := seqset.FromString(s)
			assert.Error(t, err)
			var dfe *seqset.DataFormatError
			assert.ErrorAs(t, err, &dfe)
		})
	}
}

func TestAtomRoundTrip(t *testing.T) {
	cases := []string{"1", "1:3", "1,3,5", "2,4:7,9,12:*", "*", "1:*", "1,3:4,7:9,100"}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			set := mustParse(t, s)
			atom, err := set.Atom()
			require.NoError(t, err)
			assert.Equal(t, s, atom)
		})
	}
}

func TestAtomEmptyFails(t *testing.T) {
	_, err := seqset.New().Atom()
	assert.Error(t, err)
	assert.Equal(t, "", seqset.New().String())
}

func TestNormalizeIdempotent(t *testing.T) {
	set := mustParse(t, "5,1,3:4,2")
	n1 := set.Normalize()
	n2 := n1.Normalize()
	assert.True(t, n1.Equal(n2))
}

func TestComplementInvolution(t *testing.T) {
	for _, s := range []string{"1", "1:3", "2,4:7,9,12:*", "*", "1:*"} {
		set := mustParse(t, s)
		got := set.Complement().Complement()
		assert.Truef(t, set.Equal(got), "complement involution failed for %q: got %q", s, got)
	}
}

func TestUnionComplementIsFull(t *testing.T) {
	full := mustParse(t, "1:*")
	for _, s := range []string{"1", "1:3", "2,4:7,9,12:*", "*"} {
		set := mustParse(t, s)
		union := set.Union(set.Complement())
		assert.True(t, full.Equal(union))
	}
}

func TestDeMorgan(t *testing.T) {
	x := mustParse(t, "1:5,10:20")
	y := mustParse(t, "3:12,50:*")

	lhs := x.Union(y).Complement()
	rhs := x.Complement().Intersect(y.Complement())
	assert.True(t, lhs.Equal(rhs))
}

func TestUnionCommutativeAssociative(t *testing.T) {
	x := mustParse(t, "1,3,5,7:8")
	y := mustParse(t, "2,8:9")
	z := mustParse(t, "4,20:30")

	assert.True(t, x.Union(y).Equal(y.Union(x)))
	assert.True(t, x.Union(y).Union(z).Equal(x.Union(y.Union(z))))
	assert.True(t, x.Intersect(y).Equal(y.Intersect(x)))
}

func TestLimit(t *testing.T) {
	set := mustParse(t, "2,4:7,9,12:*")
	limited, ok := set.Limit(15)
	require.True(t, ok)
	assert.True(t, mustParse(t, "2,4,5,6,7,9,12,13,14,15").Equal(limited))
	assert.True(t, limited.Frozen())
}

func TestLimitEmpty(t *testing.T) {
	set := mustParse(t, "500:999")
	_, ok := set.Limit(37)
	assert.False(t, ok)
}

func TestSubtract(t *testing.T) {
	set := mustParse(t, "1,5:9,11:99")
	result := set.Difference(mustParse(t, "6:999"))
	assert.True(t, mustParse(t, "1,5").Equal(result))
}

func TestUnionScenario(t *testing.T) {
	set := mustParse(t, "1,3,5,7:8")
	result := set.Union(mustParse(t, "2,8:9"))
	assert.True(t, mustParse(t, "1:3,5,7:9").Equal(result))
}

func TestMembershipCoverConsistency(t *testing.T) {
	set := mustParse(t, "2,4:7,9,12:*")
	for n := uint64(1); n <= 20; n++ {
		assert.Equal(t, set.Contains(n), set.CoverRange(n, n), "n=%d", n)
	}
	assert.True(t, set.Contains(seqset.Star))
	assert.True(t, set.CoverRange(4, 7))
	assert.False(t, set.CoverRange(4, 8))
}

func TestCount(t *testing.T) {
	set := mustParse(t, "1,3:5")
	assert.Equal(t, uint64(4), set.Count())

	star := mustParse(t, "4294967295,*")
	assert.Equal(t, uint64(2), star.Count())
}

func TestMinMax(t *testing.T) {
	set := mustParse(t, "2,4:7,9,12:*")
	min, max, ok := set.MinMax()
	require.True(t, ok)
	assert.Equal(t, uint64(2), min)
	assert.Equal(t, seqset.Star, max)

	s, ok := set.MaxString(":*")
	require.True(t, ok)
	assert.Equal(t, ":*", s)

	_, ok = seqset.New().Min()
	assert.False(t, ok)
}

func TestNumbersFailsWithStar(t *testing.T) {
	set := mustParse(t, "1:3,*")
	_, err := set.Numbers()
	assert.Error(t, err)

	set2 := mustParse(t, "1:3,5")
	nums, err := set2.Numbers()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3, 5}, nums)
}

func TestFreezePanicsOnMutation(t *testing.T) {
	set := mustParse(t, "1:3").Freeze()
	assert.Panics(t, func() {
		_ = set.Add(4)
	})
}

func TestCoverAny(t *testing.T) {
	set := mustParse(t, "1:10")
	matched, ok := set.CoverAny(uint64(5))
	assert.True(t, ok)
	assert.True(t, matched)

	matched, ok = set.CoverAny("5:8")
	assert.True(t, ok)
	assert.True(t, matched)

	_, ok = set.CoverAny(3.14)
	assert.False(t, ok)
}

func TestFromNumbersEmptyFails(t *testing.T) {
	_, err := seqset.FromNumbers()
	assert.Error(t, err)
}

func TestAddRangeReorders(t *testing.T) {
	set := seqset.New()
	require.NoError(t, set.AddRange(10, 5))
	assert.True(t, mustParse(t, "5:10").Equal(set))
}

func TestTryAdd(t *testing.T) {
	set := mustParse(t, "1:5")
	added, err := set.TryAdd(3)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = set.TryAdd(8)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, set.Contains(8))
}
