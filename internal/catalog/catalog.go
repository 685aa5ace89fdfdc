// Package catalog loads the static reference datasets the application
// browses: products, markets, price records, and buyers. The datasets
// are embedded in the binary and reloaded on every process start; they
// are never written back.
package catalog

import (
	"embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"agri-market-watch/internal/market"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Categories lists the product categories used for filtering, in
// display order. "All" disables the filter.
var Categories = []string{
	"All",
	"Grains",
	"Vegetables",
	"Fruits",
	"Dairy",
	"Poultry",
	"Legumes",
}

// Catalog holds the loaded reference collections.
type Catalog struct {
	Products []market.Product
	Markets  []market.Market
	Prices   []market.PriceData
	Buyers   []market.Buyer
}

// Load parses the embedded datasets. It fails only on malformed data;
// referential problems are reported separately via Verify.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := readDataset("data/products.yaml", &c.Products); err != nil {
		return nil, err
	}
	if err := readDataset("data/markets.yaml", &c.Markets); err != nil {
		return nil, err
	}
	if err := readDataset("data/buyers.yaml", &c.Buyers); err != nil {
		return nil, err
	}

	// Prices go through a DTO: yaml.v3 cannot decode decimal.Decimal.
	var rows []priceRow
	if err := readDataset("data/prices.yaml", &rows); err != nil {
		return nil, err
	}
	c.Prices = make([]market.PriceData, 0, len(rows))
	for _, row := range rows {
		trend := market.Trend(row.Trend)
		if !trend.Valid() {
			return nil, fmt.Errorf("price %s: unknown trend %q", row.ID, row.Trend)
		}
		c.Prices = append(c.Prices, market.PriceData{
			ID:            row.ID,
			ProductID:     row.ProductID,
			MarketID:      row.MarketID,
			Price:         decimal.NewFromFloat(row.Price),
			Unit:          row.Unit,
			Date:          row.Date,
			Trend:         trend,
			PercentChange: row.PercentChange,
		})
	}

	return c, nil
}

type priceRow struct {
	ID            string  `yaml:"id"`
	ProductID     string  `yaml:"product_id"`
	MarketID      string  `yaml:"market_id"`
	Price         float64 `yaml:"price"`
	Unit          string  `yaml:"unit"`
	Date          string  `yaml:"date"`
	Trend         string  `yaml:"trend"`
	PercentChange float64 `yaml:"percent_change"`
}

func readDataset[T any](name string, out *[]T) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read dataset %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse dataset %s: %w", name, err)
	}
	return nil
}

// Verify returns a description of every price record whose product or
// market reference does not resolve. Dangling references are expected
// to be logged as warnings, not treated as fatal.
func (c *Catalog) Verify() []string {
	products := make(map[string]struct{}, len(c.Products))
	for _, p := range c.Products {
		products[p.ID] = struct{}{}
	}
	markets := make(map[string]struct{}, len(c.Markets))
	for _, m := range c.Markets {
		markets[m.ID] = struct{}{}
	}

	var problems []string
	for _, price := range c.Prices {
		if _, ok := products[price.ProductID]; !ok {
			problems = append(problems, fmt.Sprintf("price %s references unknown product %s", price.ID, price.ProductID))
		}
		if _, ok := markets[price.MarketID]; !ok {
			problems = append(problems, fmt.Sprintf("price %s references unknown market %s", price.ID, price.MarketID))
		}
	}
	return problems
}
