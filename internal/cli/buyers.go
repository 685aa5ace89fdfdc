package cli

import (
	"github.com/spf13/cobra"

	"agri-market-watch/internal/app"
)

var (
	buyersSearch  string
	buyersProduct string
)

var buyersCmd = &cobra.Command{
	Use:   "buyers",
	Short: "List produce buyers",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.BuyersOptions{
			Search:    buyersSearch,
			ProductID: buyersProduct,
		}
		return getApp().Buyers(cmd.Context(), opts)
	},
}

func init() {
	buyersCmd.Flags().StringVar(&buyersSearch, "search", "", "Filter by buyer name or city")
	buyersCmd.Flags().StringVar(&buyersProduct, "product", "", "Filter by interested product id")
}
