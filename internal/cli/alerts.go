package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agri-market-watch/internal/app"
)

var (
	alertProduct     string
	alertMarket      string
	alertThreshold   string
	alertDirection   string
	alertListProduct string
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Manage price alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().AlertsList(cmd.Context(), app.AlertsListOptions{})
	},
}

var alertsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List alerts with their triggered state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().AlertsList(cmd.Context(), app.AlertsListOptions{ProductID: alertListProduct})
	},
}

var alertsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a price alert",
	RunE: func(cmd *cobra.Command, args []string) error {
		if alertProduct == "" || alertMarket == "" {
			return fmt.Errorf("--product and --market must be provided")
		}
		if alertThreshold == "" {
			return fmt.Errorf("--threshold must be provided")
		}

		opts := app.AlertAddOptions{
			ProductID: alertProduct,
			MarketID:  alertMarket,
			Threshold: alertThreshold,
			Direction: alertDirection,
		}
		return getApp().AlertAdd(cmd.Context(), opts)
	},
}

var alertsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an alert",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().AlertRemove(cmd.Context(), args[0])
	},
}

var alertsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle an alert's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().AlertToggle(cmd.Context(), args[0])
	},
}

var alertsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate active alerts against current prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().AlertsCheck(cmd.Context())
	},
}

func init() {
	alertsAddCmd.Flags().StringVar(&alertProduct, "product", "", "Product id")
	alertsAddCmd.Flags().StringVar(&alertMarket, "market", "", "Market id")
	alertsAddCmd.Flags().StringVar(&alertThreshold, "threshold", "", "Price threshold")
	alertsAddCmd.Flags().StringVar(&alertDirection, "direction", "below", "Trigger direction: above or below")
	alertsListCmd.Flags().StringVar(&alertListProduct, "product", "", "Restrict to alerts for one product id")

	alertsCmd.AddCommand(alertsListCmd)
	alertsCmd.AddCommand(alertsAddCmd)
	alertsCmd.AddCommand(alertsRemoveCmd)
	alertsCmd.AddCommand(alertsToggleCmd)
	alertsCmd.AddCommand(alertsCheckCmd)
}
