package cli

import (
	"github.com/spf13/cobra"

	"agri-market-watch/internal/app"
)

var (
	pricesSearch   string
	pricesCategory string
	pricesMarket   string
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Display the market price board",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.PricesOptions{
			Search:   pricesSearch,
			Category: pricesCategory,
			MarketID: pricesMarket,
		}
		return getApp().Prices(cmd.Context(), opts)
	},
}

func init() {
	pricesCmd.Flags().StringVar(&pricesSearch, "search", "", "Filter by product name")
	pricesCmd.Flags().StringVar(&pricesCategory, "category", "All", "Filter by product category")
	pricesCmd.Flags().StringVar(&pricesMarket, "market", "", "Restrict to a single market id")
}
