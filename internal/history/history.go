// Package history produces synthetic trailing price series for chart
// display. The data is filler: it stands in for real historical prices
// and must never feed alert evaluation or any other business logic.
package history

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDays is the trailing window length; the series carries one
// point per day plus today, 31 points for a 30-day window.
const DefaultDays = 30

// Point is one (date, price) pair of the series.
type Point struct {
	Date  time.Time
	Price decimal.Decimal
}

// Generator derives pseudo-random price series from a base price.
type Generator struct {
	days int
	rng  *rand.Rand
	now  func() time.Time
}

// New builds a generator covering the given trailing window. Seed 0
// keeps the series non-deterministic across runs (time-seeded); any
// other seed makes the output reproducible.
func New(days int, seed int64) *Generator {
	if days <= 0 {
		days = DefaultDays
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		days: days,
		rng:  rand.New(rand.NewSource(seed)),
		now:  time.Now,
	}
}

// Series generates days+1 points ending today, derived from the base
// price perturbed by a bounded random factor (±10%) and a small random
// linear trend term.
func (g *Generator) Series(base decimal.Decimal) []Point {
	today := g.now().UTC().Truncate(24 * time.Hour)
	points := make([]Point, 0, g.days+1)

	for i := g.days; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		randomFactor := g.rng.Float64()*0.2 - 0.1
		trendFactor := float64(i) / 100
		if g.rng.Float64() <= 0.5 {
			trendFactor = -trendFactor
		}

		factor := decimal.NewFromFloat(1 + randomFactor + trendFactor)
		points = append(points, Point{
			Date:  date,
			Price: base.Mul(factor).Round(2),
		})
	}

	return points
}
