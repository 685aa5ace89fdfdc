package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agri-market-watch/internal/app"
)

var (
	setupName  string
	setupEmail string
	setupPhone string
	setupLat   float64
	setupLon   float64
	setupCity  string
	setupState string

	updateName          string
	updateEmail         string
	updatePhone         string
	updateDataSharing   string
	updateNotifications string

	offlineValue bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the local user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ProfileShow(cmd.Context())
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ProfileShow(cmd.Context())
	},
}

var profileSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run onboarding and create the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ProfileSetupOptions{
			Name:  setupName,
			Email: setupEmail,
			Phone: setupPhone,
			City:  setupCity,
			State: setupState,
		}
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
				return fmt.Errorf("--lat and --lon must be provided together")
			}
			opts.Latitude = setupLat
			opts.Longitude = setupLon
			opts.HasCoords = true
		}
		return getApp().ProfileSetup(cmd.Context(), opts)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Partially update the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ProfileUpdateOptions{
			Name:  updateName,
			Email: updateEmail,
			Phone: updatePhone,
		}
		var err error
		if opts.DataSharing, err = parseBoolFlag(cmd, "data-sharing", updateDataSharing); err != nil {
			return err
		}
		if opts.Notifications, err = parseBoolFlag(cmd, "notifications", updateNotifications); err != nil {
			return err
		}
		return getApp().ProfileUpdate(cmd.Context(), opts)
	},
}

var profileInterestCmd = &cobra.Command{
	Use:   "interest",
	Short: "Manage products of interest",
}

var profileInterestAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Tag a product of interest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().InterestAdd(cmd.Context(), args[0])
	},
}

var profileInterestRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product of interest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().InterestRemove(cmd.Context(), args[0])
	},
}

var profileSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Stamp the profile with the current time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ProfileSync(cmd.Context())
	},
}

var profileLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ProfileLogout(cmd.Context())
	},
}

var profileOfflineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Set offline mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().SetOfflineMode(cmd.Context(), offlineValue)
	},
}

func parseBoolFlag(cmd *cobra.Command, name, raw string) (*bool, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	switch raw {
	case "true", "on", "yes":
		v := true
		return &v, nil
	case "false", "off", "no":
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("invalid --%s value %q: want true or false", name, raw)
	}
}

func init() {
	profileSetupCmd.Flags().StringVar(&setupName, "name", "", "Display name")
	profileSetupCmd.Flags().StringVar(&setupEmail, "email", "", "Email address")
	profileSetupCmd.Flags().StringVar(&setupPhone, "phone", "", "Phone number")
	profileSetupCmd.Flags().Float64Var(&setupLat, "lat", 0, "Latitude")
	profileSetupCmd.Flags().Float64Var(&setupLon, "lon", 0, "Longitude")
	profileSetupCmd.Flags().StringVar(&setupCity, "city", "", "City")
	profileSetupCmd.Flags().StringVar(&setupState, "state", "", "State")

	profileUpdateCmd.Flags().StringVar(&updateName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&updateEmail, "email", "", "Email address")
	profileUpdateCmd.Flags().StringVar(&updatePhone, "phone", "", "Phone number")
	profileUpdateCmd.Flags().StringVar(&updateDataSharing, "data-sharing", "", "Enable or disable data sharing (true/false)")
	profileUpdateCmd.Flags().StringVar(&updateNotifications, "notifications", "", "Enable or disable notifications (true/false)")

	profileOfflineCmd.Flags().BoolVar(&offlineValue, "value", true, "Offline mode value")

	profileInterestCmd.AddCommand(profileInterestAddCmd)
	profileInterestCmd.AddCommand(profileInterestRemoveCmd)

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetupCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileInterestCmd)
	profileCmd.AddCommand(profileSyncCmd)
	profileCmd.AddCommand(profileLogoutCmd)
	profileCmd.AddCommand(profileOfflineCmd)
}
