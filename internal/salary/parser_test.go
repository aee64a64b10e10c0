package salary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	inf := math.Inf(1)

	cases := []struct {
		name string
		text string
		want Range
	}{
		{"simple hyphen", "1000-2000", Range{1000, 2000}},
		{"currency and commas", "1,000 frw - 100,000 frw", Range{1000, 100000}},
		{"spelled out currency", "5000 dollars - 10000 dollars", Range{5000, 10000}},
		{"symbol currency", "$2,500 - $4,000", Range{2500, 4000}},
		{"open lower bound", "-3000", Range{0, 3000}},
		{"open upper bound", "4000-", Range{4000, inf}},
		{"plus suffix", "5000+", Range{5000, 5000}},
		{"single value", "7500", Range{7500, 7500}},
		{"decimal values", "1500.50-2000.75", Range{1500.5, 2000.75}},
		{"empty", "", Range{0, inf}},
		{"garbage", "not a number", Range{0, inf}},
		{"negotiable", "negotiable", Range{0, inf}},
		{"numbers without hyphen", "between 3000 and 6000", Range{3000, 6000}},
		{"mixed case currency", "2000 RWF - 5000 RWF", Range{2000, 5000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.text)
			assert.Equal(t, tc.want.Min, got.Min)
			assert.Equal(t, tc.want.Max, got.Max)
		})
	}
}

func TestParseNeverPanicsOnOddInput(t *testing.T) {
	inputs := []string{"---", "€€€", "1-2-3", "  ", "10,0,0", "¥-₦"}
	for _, text := range inputs {
		rng := Parse(text)
		assert.LessOrEqual(t, rng.Min, rng.Max, "input %q", text)
	}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Range{1000, 2000}.Overlaps(Range{1500, 3000}))
	assert.True(t, Range{1000, 2000}.Overlaps(Unbounded()))
	assert.False(t, Range{1000, 2000}.Overlaps(Range{2001, 3000}))
}
