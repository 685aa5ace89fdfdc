package history

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesLength(t *testing.T) {
	g := New(30, 42)
	series := g.Series(decimal.NewFromInt(25))

	// Trailing 30 days plus today.
	require.Len(t, series, 31)
}

func TestSeriesDatesAscendDaily(t *testing.T) {
	g := New(30, 42)
	series := g.Series(decimal.NewFromInt(25))

	for i := 1; i < len(series); i++ {
		assert.Equal(t, 24.0, series[i].Date.Sub(series[i-1].Date).Hours())
	}
}

func TestSeriesDeterministicWithSeed(t *testing.T) {
	base := decimal.RequireFromString("25.50")

	a := New(30, 7).Series(base)
	b := New(30, 7).Series(base)

	require.Len(t, b, len(a))
	for i := range a {
		assert.True(t, a[i].Price.Equal(b[i].Price), "point %d differs", i)
		assert.True(t, a[i].Date.Equal(b[i].Date))
	}
}

func TestSeriesDiffersAcrossSeeds(t *testing.T) {
	base := decimal.RequireFromString("25.50")

	a := New(30, 1).Series(base)
	b := New(30, 2).Series(base)

	same := true
	for i := range a {
		if !a[i].Price.Equal(b[i].Price) {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestSeriesBoundedAroundBase(t *testing.T) {
	base := decimal.NewFromInt(100)
	series := New(30, 99).Series(base)

	// Random factor is ±10% and the trend term at most ±30%.
	low := decimal.NewFromInt(55)
	high := decimal.NewFromInt(145)
	for _, point := range series {
		assert.True(t, point.Price.GreaterThan(low), "price %s too low", point.Price)
		assert.True(t, point.Price.LessThan(high), "price %s too high", point.Price)
	}
}

func TestNewDefaultsDays(t *testing.T) {
	g := New(0, 5)
	assert.Len(t, g.Series(decimal.NewFromInt(10)), DefaultDays+1)
}
