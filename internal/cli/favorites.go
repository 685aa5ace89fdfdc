package cli

import (
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite products and markets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().FavoritesList(cmd.Context())
	},
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite products and markets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().FavoritesList(cmd.Context())
	},
}

var favoritesMarketCmd = &cobra.Command{
	Use:   "market <id>",
	Short: "Toggle a favorite market",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ToggleFavoriteMarket(cmd.Context(), args[0])
	},
}

var favoritesProductCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Toggle a favorite product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ToggleFavoriteProduct(cmd.Context(), args[0])
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesMarketCmd)
	favoritesCmd.AddCommand(favoritesProductCmd)
}
