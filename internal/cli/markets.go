package cli

import (
	"github.com/spf13/cobra"

	"agri-market-watch/internal/app"
)

var (
	marketsSearch  string
	marketsNearest bool
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List markets, optionally sorted by distance",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.MarketsOptions{
			Search:  marketsSearch,
			Nearest: marketsNearest,
		}
		return getApp().Markets(cmd.Context(), opts)
	},
}

func init() {
	marketsCmd.Flags().StringVar(&marketsSearch, "search", "", "Filter by market name or city")
	marketsCmd.Flags().BoolVar(&marketsNearest, "nearest", false, "Sort by distance from the configured location")
}
