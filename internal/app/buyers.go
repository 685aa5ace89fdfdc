package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"agri-market-watch/internal/query"
)

// Buyers prints the buyer directory, filtered by name/city search or
// an interested product.
func (a *App) Buyers(ctx context.Context, opts BuyersOptions) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	buyers := query.FilterBuyers(s.market.Buyers(), opts.Search, opts.ProductID)
	if len(buyers) == 0 {
		fmt.Fprintln(os.Stdout, "no buyers found")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tName\tCity\tRating\tVerified\tContact")

	for _, b := range buyers {
		verified := ""
		if b.Verified {
			verified = "yes"
		}
		contact := "-"
		switch {
		case b.ContactPhone != nil:
			contact = *b.ContactPhone
		case b.Email != nil:
			contact = *b.Email
		}

		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%.1f\t%s\t%s\n",
			b.ID,
			b.Name,
			b.Location.City,
			b.Rating,
			verified,
			contact,
		)
	}

	return writer.Flush()
}
