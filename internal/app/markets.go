package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"agri-market-watch/internal/market"
	"agri-market-watch/internal/query"
)

// Markets prints the market listing. With a configured user location
// (or --nearest) every market is decorated with its distance and the
// list is sorted nearest first.
func (a *App) Markets(ctx context.Context, opts MarketsOptions) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	markets := query.FilterMarkets(s.market.Markets(), opts.Search)

	useLocation := a.Config.Location.Enabled || opts.Nearest
	if useLocation {
		if !a.Config.Location.Enabled {
			return fmt.Errorf("--nearest needs location.latitude/location.longitude configured and location.enabled set")
		}
		markets = market.WithDistances(markets, a.Config.Location.Latitude, a.Config.Location.Longitude)
		market.SortByDistance(markets)
	}

	if len(markets) == 0 {
		fmt.Fprintln(os.Stdout, "no markets found")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tName\tCity\tHours\tPhone\tDistance\tFav")

	for _, m := range markets {
		phone := "-"
		if m.ContactPhone != nil {
			phone = *m.ContactPhone
		}
		distance := "-"
		if m.Distance != nil {
			distance = fmt.Sprintf("%.1f km", *m.Distance)
		}
		fav := ""
		if s.market.IsFavoriteMarket(m.ID) {
			fav = "*"
		}

		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			m.Name,
			m.Location.City,
			m.OperatingHours,
			phone,
			distance,
			fav,
		)
	}

	return writer.Flush()
}
