package cli

import (
	"github.com/spf13/cobra"

	"agri-market-watch/internal/app"
)

var (
	historyCSVPath   string
	historyPNGPath   string
	historyMaxPoints int
	historyDays      int
)

var historyCmd = &cobra.Command{
	Use:   "history <product-id> <market-id>",
	Short: "Generate a synthetic trailing price series",
	Long:  "Generates display-only synthetic price history for a product at a market, derived from the current reference price. Not real data.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.HistoryOptions{
			ProductID: args[0],
			MarketID:  args[1],
			CSVPath:   historyCSVPath,
			PNGPath:   historyPNGPath,
			MaxPoints: historyMaxPoints,
			Days:      historyDays,
		}
		return getApp().History(cmd.Context(), opts)
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyCSVPath, "csv", "", "Path to write CSV data")
	historyCmd.Flags().StringVar(&historyPNGPath, "png", "", "Path to write PNG chart")
	historyCmd.Flags().IntVar(&historyMaxPoints, "max-points", 0, "Maximum data points (defaults to config)")
	historyCmd.Flags().IntVar(&historyDays, "days", 0, "Trailing window in days (defaults to config)")
}
