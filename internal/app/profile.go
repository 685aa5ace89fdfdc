package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"agri-market-watch/internal/market"
	"agri-market-watch/internal/store"
)

// ProfileShow prints the current profile and app-mode flags.
func (a *App) ProfileShow(ctx context.Context) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	profile, ok := s.user.Profile()
	if !ok {
		fmt.Fprintln(os.Stdout, "no profile; run 'agriwatch profile setup'")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Name\t%s\n", profile.Name)
	fmt.Fprintf(writer, "Email\t%s\n", orDash(profile.Email))
	fmt.Fprintf(writer, "Phone\t%s\n", orDash(profile.Phone))
	if profile.Location != nil {
		fmt.Fprintf(writer, "Location\t%.4f, %.4f (%s, %s)\n",
			profile.Location.Latitude, profile.Location.Longitude,
			profile.Location.City, profile.Location.State)
	} else {
		fmt.Fprintf(writer, "Location\t-\n")
	}
	fmt.Fprintf(writer, "Interests\t%s\n", joinOrDash(profile.ProductsOfInterest))
	fmt.Fprintf(writer, "Data sharing\t%t\n", profile.DataSharingEnabled)
	fmt.Fprintf(writer, "Notifications\t%t\n", profile.NotificationsOn)
	if profile.LastSyncTimestamp != nil {
		fmt.Fprintf(writer, "Last sync\t%s\n", formatTimestamp(*profile.LastSyncTimestamp))
	} else {
		fmt.Fprintf(writer, "Last sync\tnever\n")
	}
	fmt.Fprintf(writer, "Onboarded\t%t\n", s.user.IsOnboarded())
	fmt.Fprintf(writer, "Offline mode\t%t\n", s.user.IsOfflineMode())
	return writer.Flush()
}

// ProfileSetup runs onboarding: creates the profile wholesale and
// marks onboarding complete.
func (a *App) ProfileSetup(ctx context.Context, opts ProfileSetupOptions) error {
	if strings.TrimSpace(opts.Name) == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	profile := market.UserProfile{
		ID:                 "user_local",
		Name:               opts.Name,
		ProductsOfInterest: []string{},
		DataSharingEnabled: true,
		NotificationsOn:    true,
	}
	if opts.Email != "" {
		profile.Email = &opts.Email
	}
	if opts.Phone != "" {
		profile.Phone = &opts.Phone
	}
	if opts.HasCoords {
		profile.Location = &market.Location{
			Latitude:  opts.Latitude,
			Longitude: opts.Longitude,
			City:      opts.City,
			State:     opts.State,
		}
	}

	s.user.SetProfile(ctx, profile)
	s.user.SetOnboarded(ctx, true)

	fmt.Fprintf(os.Stdout, "welcome, %s\n", profile.Name)
	return nil
}

// ProfileUpdate merges the given fields into the existing profile.
// Without a profile the store leaves everything untouched.
func (a *App) ProfileUpdate(ctx context.Context, opts ProfileUpdateOptions) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if _, ok := s.user.Profile(); !ok {
		return fmt.Errorf("no profile to update; run 'agriwatch profile setup' first")
	}

	update := store.ProfileUpdate{
		DataSharingEnabled: opts.DataSharing,
		NotificationsOn:    opts.Notifications,
	}
	if opts.Name != "" {
		update.Name = &opts.Name
	}
	if opts.Email != "" {
		update.Email = &opts.Email
	}
	if opts.Phone != "" {
		update.Phone = &opts.Phone
	}

	s.user.UpdateProfile(ctx, update)
	fmt.Fprintln(os.Stdout, "profile updated")
	return nil
}

// InterestAdd tags a product of interest on the profile.
func (a *App) InterestAdd(ctx context.Context, productID string) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if _, ok := s.market.ProductByID(productID); !ok {
		a.Logger.Warn().Str("product_id", productID).Msg("tagging interest for unknown product")
	}

	s.user.AddProductOfInterest(ctx, productID)
	fmt.Fprintf(os.Stdout, "interest %s added\n", productID)
	return nil
}

// InterestRemove removes a product of interest from the profile.
func (a *App) InterestRemove(ctx context.Context, productID string) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	s.user.RemoveProductOfInterest(ctx, productID)
	fmt.Fprintf(os.Stdout, "interest %s removed\n", productID)
	return nil
}

// ProfileSync stamps the profile with the current time.
func (a *App) ProfileSync(ctx context.Context) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if _, ok := s.user.Profile(); !ok {
		return fmt.Errorf("no profile to sync")
	}

	s.user.TouchLastSync(ctx)
	fmt.Fprintln(os.Stdout, "sync timestamp updated")
	return nil
}

// ProfileLogout clears the profile. Onboarding and offline-mode flags
// survive a logout.
func (a *App) ProfileLogout(ctx context.Context) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	s.user.Logout(ctx)
	fmt.Fprintln(os.Stdout, "logged out")
	return nil
}

// SetOfflineMode toggles the offline-mode flag.
func (a *App) SetOfflineMode(ctx context.Context, value bool) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	s.user.SetOfflineMode(ctx, value)
	fmt.Fprintf(os.Stdout, "offline mode: %t\n", value)
	return nil
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}
