package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	s := Compute([]int64{10, 20, 30})

	assert.Equal(t, int64(3), s.Count)
	assert.Equal(t, int64(10), s.Min)
	assert.Equal(t, int64(30), s.Max)
	assert.Equal(t, int64(20), s.Mean)
	assert.Equal(t, int64(6), s.MAD, "(10+0+10)/3 truncates to 6")
	assert.Equal(t, int64(60), s.Total)
}

func TestCompute_SingleSample(t *testing.T) {
	s := Compute([]int64{42})

	assert.Equal(t, int64(1), s.Count)
	assert.Equal(t, int64(42), s.Min)
	assert.Equal(t, int64(42), s.Max)
	assert.Equal(t, int64(42), s.Mean)
	assert.Equal(t, int64(0), s.MAD)
	assert.Equal(t, int64(42), s.Total)
}

func TestCompute_EmptyCountsAsOne(t *testing.T) {
	s := Compute(nil)

	assert.Equal(t, int64(1), s.Count, "count is max(1, len) so divisions stay total")
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Mean)
}

func TestCompute_TruncatingDivision(t *testing.T) {
	// 7+8 = 15; 15/2 truncates toward zero.
	s := Compute([]int64{7, 8})
	assert.Equal(t, int64(7), s.Mean)
	// |7-7| + |8-7| = 1; 1/2 truncates to 0.
	assert.Equal(t, int64(0), s.MAD)
}

func TestComputeAll(t *testing.T) {
	all := ComputeAll(map[string][]int64{
		"a":       {10, 20, 30},
		TotalSpan: {100},
	})

	assert.Equal(t, int64(60), all["a"].Total)
	assert.Equal(t, int64(100), all[TotalSpan].Total)
}

func TestFmtNanos(t *testing.T) {
	tests := []struct {
		ns   int64
		want string
	}{
		{999, "999ns"},
		{1000, "1µs"},
		{999_999, "999µs"},
		{1_000_000, "1ms"},
		{2_500_000, "2ms"},
		{1_000_000_000, "1s"},
		{0, "0ns"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fmtNanos(tt.ns), "fmtNanos(%d)", tt.ns)
	}
}
