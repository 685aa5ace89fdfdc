package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"agri-market-watch/internal/market"
	"agri-market-watch/internal/query"
)

// Prices prints the price board, filtered by search text, category,
// and optionally a single market.
func (a *App) Prices(ctx context.Context, opts PricesOptions) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	prices := query.FilterPrices(s.market.Prices(), s.market.ProductByID, opts.Search, opts.Category)
	if opts.MarketID != "" {
		narrowed := make([]market.PriceData, 0, len(prices))
		for _, p := range prices {
			if p.MarketID == opts.MarketID {
				narrowed = append(narrowed, p)
			}
		}
		prices = narrowed
	}

	if len(prices) == 0 {
		fmt.Fprintln(os.Stdout, "no prices found")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Product\tCategory\tMarket\tPrice\tUnit\tTrend\tChange%\tDate\tFav")

	for _, price := range prices {
		product, ok := s.market.ProductByID(price.ProductID)
		if !ok {
			continue
		}
		marketName := price.MarketID
		if m, ok := s.market.MarketByID(price.MarketID); ok {
			marketName = m.Name
		}

		fav := ""
		if s.market.IsFavoriteProduct(product.ID) {
			fav = "*"
		}

		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\t%+.1f\t%s\t%s\n",
			product.Name,
			product.Category,
			marketName,
			price.Price.StringFixed(2),
			price.Unit,
			trendGlyph(price.Trend),
			price.PercentChange,
			price.Date,
			fav,
		)
	}

	return writer.Flush()
}

func trendGlyph(t market.Trend) string {
	switch t {
	case market.TrendUp:
		return "up"
	case market.TrendDown:
		return "down"
	default:
		return "stable"
	}
}
