package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"agri-market-watch/internal/alerting"
	"agri-market-watch/internal/market"
	"agri-market-watch/internal/store"
)

// AlertsList prints alerts with their current price and computed
// triggered state, optionally narrowed to a single product (the
// product detail view). Alerts whose product, market, or price no
// longer resolves are skipped, the way the screen skips the card.
func (a *App) AlertsList(ctx context.Context, opts AlertsListOptions) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	alerts := s.market.Alerts()
	if opts.ProductID != "" {
		alerts = s.market.AlertsForProduct(opts.ProductID)
	}
	if len(alerts) == 0 {
		fmt.Fprintln(os.Stdout, "no alerts configured")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tProduct\tMarket\tThreshold\tDirection\tCurrent\tActive\tTriggered\tCreated")

	for _, alert := range alerts {
		product, okProduct := s.market.ProductByID(alert.ProductID)
		m, okMarket := s.market.MarketByID(alert.MarketID)
		price, okPrice := s.market.PriceForProductInMarket(alert.ProductID, alert.MarketID)
		if !okProduct || !okMarket || !okPrice {
			continue
		}

		active := "no"
		if alert.Active {
			active = "yes"
		}
		triggered := ""
		if alerting.Triggered(alert, price.Price) {
			triggered = "TRIGGERED"
		}

		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			alert.ID,
			product.Name,
			m.Name,
			alert.Threshold.StringFixed(2),
			alert.Direction,
			price.Price.StringFixed(2),
			active,
			triggered,
			formatTimestamp(alert.CreatedAt),
		)
	}

	return writer.Flush()
}

// AlertAdd registers a new alert. The threshold is parse-checked
// before anything is mutated; a malformed number aborts the add.
func (a *App) AlertAdd(ctx context.Context, opts AlertAddOptions) error {
	threshold, err := decimal.NewFromString(opts.Threshold)
	if err != nil {
		return fmt.Errorf("invalid threshold %q: %w", opts.Threshold, err)
	}

	direction := market.AlertDirection(opts.Direction)
	if !direction.Valid() {
		return fmt.Errorf("invalid direction %q: must be %q or %q", opts.Direction, market.AlertAbove, market.AlertBelow)
	}

	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	if _, ok := s.market.ProductByID(opts.ProductID); !ok {
		return fmt.Errorf("unknown product %q", opts.ProductID)
	}
	if _, ok := s.market.MarketByID(opts.MarketID); !ok {
		return fmt.Errorf("unknown market %q", opts.MarketID)
	}

	created := s.market.AddAlert(ctx, store.NewAlert{
		ProductID: opts.ProductID,
		MarketID:  opts.MarketID,
		Threshold: threshold,
		Direction: direction,
		Active:    true,
	})

	fmt.Fprintf(os.Stdout, "alert %s created\n", created.ID)
	return nil
}

// AlertRemove deletes an alert by id; removing an unknown id is a
// silent no-op.
func (a *App) AlertRemove(ctx context.Context, id string) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	s.market.RemoveAlert(ctx, id)
	fmt.Fprintf(os.Stdout, "alert %s removed\n", id)
	return nil
}

// AlertToggle flips an alert's active flag.
func (a *App) AlertToggle(ctx context.Context, id string) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	s.market.ToggleAlertActive(ctx, id)
	fmt.Fprintf(os.Stdout, "alert %s toggled\n", id)
	return nil
}

// AlertsCheck evaluates every active alert against current prices and,
// when alerting is enabled, dispatches a notification per triggered
// alert. Notification failures are logged, never fatal.
func (a *App) AlertsCheck(ctx context.Context) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	var notifier alerting.Notifier
	if a.Config.Alerting.Enabled {
		notifier = a.newNotifier()
	}

	triggeredCount := 0
	for _, alert := range s.market.Alerts() {
		if !alert.Active {
			continue
		}
		product, okProduct := s.market.ProductByID(alert.ProductID)
		m, okMarket := s.market.MarketByID(alert.MarketID)
		price, okPrice := s.market.PriceForProductInMarket(alert.ProductID, alert.MarketID)
		if !okProduct || !okMarket || !okPrice {
			continue
		}
		if !alerting.Triggered(alert, price.Price) {
			continue
		}

		triggeredCount++
		fmt.Fprintf(os.Stdout, "TRIGGERED %s: %s at %s is %s %s (threshold %s, %s)\n",
			alert.ID, product.Name, m.Name,
			price.Price.StringFixed(2), price.Unit,
			alert.Threshold.StringFixed(2), alert.Direction,
		)

		if notifier != nil {
			note := alerting.Notification{
				ProductName:  product.Name,
				MarketName:   m.Name,
				CurrentPrice: price.Price,
				Unit:         price.Unit,
				Threshold:    alert.Threshold,
				Direction:    string(alert.Direction),
				PriceDate:    price.Date,
			}
			if err := notifier.Notify(ctx, note); err != nil {
				a.Logger.Error().Err(err).Str("alert_id", alert.ID).Msg("failed to dispatch alert")
			}
		}
	}

	if triggeredCount == 0 {
		fmt.Fprintln(os.Stdout, "no alerts triggered")
	}
	return nil
}
