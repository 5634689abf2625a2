package assertion

import (
	"cmp"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluentassertions/pkg/execution"
)

func TestNumber_Passing(t *testing.T) {
	Number(t, 5).Should().
		Be(5).
		And.NotBe(4).
		And.BeGreaterThan(3).
		And.BeGreaterThanOrEqualTo(5).
		And.BeLessThan(10).
		And.BeLessThanOrEqualTo(5).
		And.BeInRange(1, 10).
		And.NotBeInRange(6, 9).
		And.BeOneOf([]int{1, 5}).
		And.BePositive()

	Number(t, int8(-3)).Should().BeNegative()
	Number(t, uint(7)).Should().BeApproximately(5, 2)
	Number(t, 3.14159).Should().BeApproximately(3.14, 0.01)
	Number(t, math.NaN()).Should().Be(math.NaN())
}

func TestNumber_Failures(t *testing.T) {
	tests := []struct {
		name   string
		assert func(a *NumericAssertions[int])
		want   string
	}{
		{"Be", func(a *NumericAssertions[int]) { a.Be(6) },
			"Expected value to be 6, but found 5."},
		{"NotBe", func(a *NumericAssertions[int]) { a.NotBe(5) },
			"Did not expect value to be 5."},
		{"BeGreaterThan", func(a *NumericAssertions[int]) { a.BeGreaterThan(5) },
			"Expected value to be greater than 5, but found 5."},
		{"BeGreaterThanOrEqualTo", func(a *NumericAssertions[int]) { a.BeGreaterThanOrEqualTo(6) },
			"Expected value to be greater than or equal to 6, but found 5."},
		{"BeLessThan", func(a *NumericAssertions[int]) { a.BeLessThan(5) },
			"Expected value to be less than 5, but found 5."},
		{"BeLessThanOrEqualTo", func(a *NumericAssertions[int]) { a.BeLessThanOrEqualTo(4) },
			"Expected value to be less than or equal to 4, but found 5."},
		{"BeInRange", func(a *NumericAssertions[int]) { a.BeInRange(6, 9) },
			"Expected value to be between 6 and 9, but found 5."},
		{"NotBeInRange", func(a *NumericAssertions[int]) { a.NotBeInRange(1, 9) },
			"Expected value to not be between 1 and 9, but found 5."},
		{"BeOneOf", func(a *NumericAssertions[int]) { a.BeOneOf([]int{1, 2}) },
			"Expected value to be one of {1, 2}, but found 5."},
		{"BeNegative", func(a *NumericAssertions[int]) { a.BeNegative() },
			"Expected value to be negative, but found 5."},
		{"BeApproximately", func(a *NumericAssertions[int]) { a.BeApproximately(10, 2) },
			"Expected value to approximate 10 +/- 2, but 5 differed by 5."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failures(func(s execution.TestingT) {
				tt.assert(Number(s, 5).Should())
			})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestNumber_NameAndReason(t *testing.T) {
	got := failures(func(s execution.TestingT) {
		Number(s, 0).As("retries").Should().BePositive("at least %d attempt is made", 1)
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Expected retries to be positive because at least 1 attempt is made, but found 0.", got[0])
}

func TestNumber_Float(t *testing.T) {
	got := failures(func(s execution.TestingT) {
		Number(s, 1.5).Should().Be(2.5)
		Number(s, math.NaN()).Should().BeApproximately(1, 100)
	})
	require.Len(t, got, 2)
	assert.Equal(t, "Expected value to be 2.5, but found 1.5.", got[0])
	assert.Contains(t, got[1], "to approximate 1 +/- 100")
}

func TestNumber_BeApproximatelyExtremes(t *testing.T) {
	got := failures(func(s execution.TestingT) {
		Number(s, int8(100)).Should().BeApproximately(-100, 10)
		Number(s, int64(math.MaxInt64)).Should().BeApproximately(-1, 5)
		Number(s, int64(math.MinInt64)).Should().BeApproximately(math.MaxInt64, 1)
		Number(s, math.Inf(1)).Should().BeApproximately(math.Inf(-1), 1)
	})
	require.Len(t, got, 4)
	assert.Equal(t, "Expected value to approximate -100 +/- 10, but 100 differed by 200.", got[0])
	assert.Equal(t, "Expected value to approximate -1 +/- 5, but 9223372036854775807 differed by 9223372036854775808.", got[1])
	assert.Equal(t, "Expected value to approximate 9223372036854775807 +/- 1, but -9223372036854775808 differed by 18446744073709551615.", got[2])
	assert.Equal(t, "Expected value to approximate -Inf +/- 1, but +Inf differed by +Inf.", got[3])

	assert.Empty(t, failures(func(s execution.TestingT) {
		Number(s, int8(-128)).Should().BeApproximately(-1, 127).
			And.BeApproximately(-120, 8)
		Number(s, math.Inf(1)).Should().BeApproximately(math.Inf(1), 1)
		Number(s, uint8(3)).Should().BeApproximately(250, 247)
	}))
}

func compareVersions(calls *int) func(a, b *version) int {
	return func(a, b *version) int {
		*calls++
		if c := cmp.Compare(a.major, b.major); c != 0 {
			return c
		}
		return cmp.Compare(a.minor, b.minor)
	}
}

func TestComparable_ReferenceShortCircuit(t *testing.T) {
	var calls int
	v := &version{major: 1, minor: 2}

	Comparable(t, v, compareVersions(&calls)).Should().Be(v)
	assert.Zero(t, calls, "the same reference is equal without comparing")

	Comparable(t, v, compareVersions(&calls)).Should().Be(&version{major: 1, minor: 2})
	assert.Equal(t, 1, calls)

	calls = 0
	got := failures(func(s execution.TestingT) {
		Comparable(s, v, compareVersions(&calls)).Should().NotBe(v)
	})
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Did not expect value to be ")
	assert.Zero(t, calls)
}

func TestComparable_Ordering(t *testing.T) {
	var calls int
	v := &version{major: 1, minor: 2}
	compare := compareVersions(&calls)

	Comparable(t, v, compare).Should().
		BeGreaterThan(&version{major: 1, minor: 1}).
		And.BeGreaterThanOrEqualTo(&version{major: 1, minor: 2}).
		And.BeLessThan(&version{major: 2}).
		And.BeLessThanOrEqualTo(&version{major: 1, minor: 2}).
		And.BeInRange(&version{major: 1}, &version{major: 1, minor: 9}).
		And.NotBeInRange(&version{major: 2}, &version{major: 3}).
		And.BeOneOf([]*version{{major: 9}, {major: 1, minor: 2}}).
		And.NotBe(&version{major: 1, minor: 3})

	got := failures(func(s execution.TestingT) {
		Comparable(s, v, compare).Should().
			BeGreaterThan(&version{major: 2})
	})
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Expected value to be greater than ")
}

func TestComparable_Time(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	compare := func(a, b time.Time) int { return a.Compare(b) }

	Comparable(t, start.Add(time.Hour), compare).Should().BeGreaterThan(start)

	got := failures(func(s execution.TestingT) {
		Comparable(s, start, compare).As("deadline").Should().Be(start.Add(time.Second))
	})
	require.Len(t, got, 1)
	assert.Equal(t,
		"Expected deadline to be <2024-01-02T03:04:06Z>, but found <2024-01-02T03:04:05Z>.",
		got[0])
}

func TestSameReference(t *testing.T) {
	p := &version{}
	m := map[string]int{}
	s := []int{1, 2, 3}
	ch := make(chan int)

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same pointer", p, p, true},
		{"equal pointees", p, &version{}, false},
		{"same map", m, m, true},
		{"other map", m, map[string]int{}, false},
		{"same slice", s, s, true},
		{"subslice", s, s[:2], false},
		{"same channel", ch, ch, true},
		{"both nil", nil, nil, true},
		{"one nil", p, nil, false},
		{"values", 1, 1, false},
		{"different types", p, &point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sameReference(tt.a, tt.b))
		})
	}
}
