package alerting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"agri-market-watch/internal/market"
)

func TestTriggeredBelow(t *testing.T) {
	alert := market.MarketAlert{
		ProductID: "p1",
		MarketID:  "m1",
		Threshold: decimal.NewFromInt(20),
		Direction: market.AlertBelow,
	}

	assert.False(t, Triggered(alert, decimal.RequireFromString("25.50")))
	assert.True(t, Triggered(alert, decimal.RequireFromString("18.00")))
}

func TestTriggeredAbove(t *testing.T) {
	alert := market.MarketAlert{
		Threshold: decimal.NewFromInt(20),
		Direction: market.AlertAbove,
	}

	assert.True(t, Triggered(alert, decimal.RequireFromString("25.50")))
	assert.False(t, Triggered(alert, decimal.RequireFromString("18.00")))
}

func TestTriggeredEqualityNeverFires(t *testing.T) {
	threshold := decimal.NewFromInt(20)

	above := market.MarketAlert{Threshold: threshold, Direction: market.AlertAbove}
	below := market.MarketAlert{Threshold: threshold, Direction: market.AlertBelow}

	assert.False(t, Triggered(above, threshold))
	assert.False(t, Triggered(below, threshold))
}

func TestTriggeredUnknownDirection(t *testing.T) {
	alert := market.MarketAlert{Threshold: decimal.NewFromInt(20), Direction: "sideways"}
	assert.False(t, Triggered(alert, decimal.NewFromInt(100)))
}
