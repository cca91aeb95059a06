package coerce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickSize(t *testing.T) {
	tests := []struct {
		price float64
		want  float64
	}{
		{3_000_000, 1000},
		{2_000_000, 1000},
		{1_999_999, 500},
		{1_000_000, 500},
		{500_000, 100},
		{100_000, 50},
		{10_000, 10},
		{1_000, 5},
		{100, 1},
		{10, 0.1},
		{9.99, 0.1},
		{1, 0.1},
		{0.99, 0.01},
		{0, 0.01},
		{-1, 0.001},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TickSize(tt.price), "price %v", tt.price)
	}
}

func TestPriceChecker(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{"tier_500", 1_435_085.0, 1_435_000.0},
		{"tier_1000", 52_345_678, 52_345_000},
		{"tier_100", 512_345, 512_300},
		{"tier_50", 123_456, 123_450},
		{"tier_10", 12_345, 12_340},
		{"tier_5", 1_234, 1_230},
		{"tier_1", 123.9, 123},
		{"exact_multiple", 50.0, 50.0},
		{"tier_0_1", 7.25, 7.2},
		{"tier_0_01", 0.129, 0.12},
		{"zero", 0.0, 0.0},
		{"negative_floors_down", -1.2345, -1.235},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceChecker(tt.price))
		})
	}
}

func TestPriceChecker_NotRounding(t *testing.T) {
	assert.Equal(t, 1_435_000.0, PriceChecker(1_435_499.99))
}

func TestPriceChecker_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(PriceChecker(math.NaN())))
	assert.True(t, math.IsInf(PriceChecker(math.Inf(1)), 1))
}

func TestDesiredOrderPrice(t *testing.T) {
	assert.Equal(t, (1_435_000.0+1)/500, DesiredOrderPrice(1_435_000))
	assert.Equal(t, (50.0+1)/0.1, DesiredOrderPrice(50))
}
