package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// FavoritesList prints the favorite product and market projections.
func (a *App) FavoritesList(ctx context.Context) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	products := s.market.FavoriteProducts()
	markets := s.market.FavoriteMarkets()

	if len(products) == 0 && len(markets) == 0 {
		fmt.Fprintln(os.Stdout, "no favorites yet")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Kind\tID\tName")
	for _, p := range products {
		fmt.Fprintf(writer, "product\t%s\t%s\n", p.ID, p.Name)
	}
	for _, m := range markets {
		fmt.Fprintf(writer, "market\t%s\t%s\n", m.ID, m.Name)
	}
	return writer.Flush()
}

// ToggleFavoriteMarket flips the favorite state of a market id.
func (a *App) ToggleFavoriteMarket(ctx context.Context, id string) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	// The toggle itself never validates; an unknown id just ends up as
	// a favorite that no projection will resolve.
	if _, ok := s.market.MarketByID(id); !ok {
		a.Logger.Warn().Str("market_id", id).Msg("toggling favorite for unknown market")
	}

	s.market.ToggleFavoriteMarket(ctx, id)
	if s.market.IsFavoriteMarket(id) {
		fmt.Fprintf(os.Stdout, "market %s added to favorites\n", id)
	} else {
		fmt.Fprintf(os.Stdout, "market %s removed from favorites\n", id)
	}
	return nil
}

// ToggleFavoriteProduct flips the favorite state of a product id.
func (a *App) ToggleFavoriteProduct(ctx context.Context, id string) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	if _, ok := s.market.ProductByID(id); !ok {
		a.Logger.Warn().Str("product_id", id).Msg("toggling favorite for unknown product")
	}

	s.market.ToggleFavoriteProduct(ctx, id)
	if s.market.IsFavoriteProduct(id) {
		fmt.Fprintf(os.Stdout, "product %s added to favorites\n", id)
	} else {
		fmt.Fprintf(os.Stdout, "product %s removed from favorites\n", id)
	}
	return nil
}
