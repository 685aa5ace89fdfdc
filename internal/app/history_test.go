package app

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-market-watch/internal/history"
)

func seriesFixture(n int) []history.Point {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	points := make([]history.Point, n)
	for i := range points {
		points[i] = history.Point{
			Date:  base.AddDate(0, 0, i),
			Price: decimal.NewFromInt(int64(i)),
		}
	}
	return points
}

func TestDownsampleSeriesToSinglePointKeepsLatest(t *testing.T) {
	points := seriesFixture(31)

	out := downsampleSeries(points, 1)

	require.Len(t, out, 1)
	assert.True(t, out[0].Date.Equal(points[30].Date))
	assert.True(t, out[0].Price.Equal(points[30].Price))
}

func TestDownsampleSeriesKeepsEndpoints(t *testing.T) {
	points := seriesFixture(31)

	out := downsampleSeries(points, 10)

	require.Len(t, out, 10)
	assert.True(t, out[0].Date.Equal(points[0].Date))
	assert.True(t, out[len(out)-1].Date.Equal(points[30].Date))
}

func TestDownsampleSeriesNoOpWithinLimit(t *testing.T) {
	points := seriesFixture(5)

	assert.Len(t, downsampleSeries(points, 10), 5)
	assert.Len(t, downsampleSeries(points, 5), 5)
	assert.Len(t, downsampleSeries(points, 0), 5)
}
