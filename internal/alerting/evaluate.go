package alerting

import (
	"github.com/shopspring/decimal"

	"agri-market-watch/internal/market"
)

// Triggered reports whether the alert fires against the current price:
// "above" alerts when the price strictly exceeds the threshold,
// "below" alerts when the price is strictly less. Equality never
// triggers. The result is computed per call and never stored.
func Triggered(alert market.MarketAlert, currentPrice decimal.Decimal) bool {
	switch alert.Direction {
	case market.AlertAbove:
		return currentPrice.GreaterThan(alert.Threshold)
	case market.AlertBelow:
		return currentPrice.LessThan(alert.Threshold)
	default:
		return false
	}
}
