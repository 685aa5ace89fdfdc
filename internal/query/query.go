// Package query holds the derived computations the presentation layer
// runs over store data: search and category filtering. Everything here
// is a pure function over small in-memory collections, recomputed on
// every call.
package query

import (
	"strings"

	"agri-market-watch/internal/market"
)

// ProductLookup resolves a product id; absence skips the record, the
// same way the screens skip rendering unresolvable rows.
type ProductLookup func(id string) (market.Product, bool)

// FilterPrices narrows the price board by product-name search and
// category. Empty search matches everything; category "All" (or empty)
// disables the category filter.
func FilterPrices(prices []market.PriceData, lookup ProductLookup, search, category string) []market.PriceData {
	search = strings.ToLower(strings.TrimSpace(search))
	filterCategory := category != "" && category != "All"

	out := make([]market.PriceData, 0, len(prices))
	for _, price := range prices {
		product, ok := lookup(price.ProductID)
		if !ok {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
			continue
		}
		if filterCategory && product.Category != category {
			continue
		}
		out = append(out, price)
	}
	return out
}

// FilterMarkets narrows markets by name or city search.
func FilterMarkets(markets []market.Market, search string) []market.Market {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return markets
	}

	out := make([]market.Market, 0, len(markets))
	for _, m := range markets {
		if strings.Contains(strings.ToLower(m.Name), search) ||
			strings.Contains(strings.ToLower(m.Location.City), search) {
			out = append(out, m)
		}
	}
	return out
}

// FilterBuyers narrows buyers by name/city search and, optionally, by
// an interested product id.
func FilterBuyers(buyers []market.Buyer, search, productID string) []market.Buyer {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]market.Buyer, 0, len(buyers))
	for _, b := range buyers {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Name), search) &&
			!strings.Contains(strings.ToLower(b.Location.City), search) {
			continue
		}
		if productID != "" && !interestedIn(b, productID) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func interestedIn(b market.Buyer, productID string) bool {
	for _, id := range b.InterestedProducts {
		if id == productID {
			return true
		}
	}
	return false
}
