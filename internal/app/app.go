package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"agri-market-watch/internal/alerting"
	"agri-market-watch/internal/catalog"
	"agri-market-watch/internal/config"
	"agri-market-watch/internal/history"
	"agri-market-watch/internal/storage"
	"agri-market-watch/internal/store"
)

// App aggregates configuration and shared dependencies for the CLI
// commands. Each command method builds the two stores, runs one
// synchronous operation against them, and returns.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// stores bundles everything a command needs, plus a close func.
type stores struct {
	market *store.MarketStore
	user   *store.UserStore
}

func (a *App) openStores(ctx context.Context) (*stores, func(), error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load reference data: %w", err)
	}
	for _, problem := range cat.Verify() {
		a.Logger.Warn().Str("problem", problem).Msg("reference data integrity")
	}

	db, err := storage.Open(a.Config.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open state storage: %w", err)
	}

	s := &stores{
		market: store.NewMarketStore(ctx, cat.Products, cat.Markets, cat.Prices, cat.Buyers, db, a.Logger),
		user:   store.NewUserStore(ctx, db, a.Logger),
	}
	closer := func() {
		if err := db.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("failed to close state storage")
		}
	}
	return s, closer, nil
}

// requireOnboarded mirrors the app's onboarding redirect: everything
// except profile setup refuses to run before a profile exists.
func (a *App) requireOnboarded(user *store.UserStore) error {
	if !user.IsOnboarded() {
		return errors.New("not onboarded yet; run 'agriwatch profile setup' first")
	}
	return nil
}

func (a *App) newNotifier() alerting.Notifier {
	if a.Config.Alerting.Telegram.Enabled {
		cfg := a.Config.Alerting.Telegram
		return alerting.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.APIBase, cfg.Timeout, a.Logger)
	}
	return nil
}

func (a *App) newHistoryGenerator(days int) *history.Generator {
	if days <= 0 {
		days = a.Config.History.Days
	}
	return history.New(days, a.Config.History.Seed)
}

// PricesOptions configure the price board.
type PricesOptions struct {
	Search   string
	Category string
	MarketID string
}

// MarketsOptions configure the market listing.
type MarketsOptions struct {
	Search  string
	Nearest bool
}

// BuyersOptions configure the buyer directory.
type BuyersOptions struct {
	Search    string
	ProductID string
}

// AlertsListOptions narrow the alert listing; an empty ProductID lists
// every alert.
type AlertsListOptions struct {
	ProductID string
}

// AlertAddOptions carry the user-entered alert fields. Threshold stays
// a raw string until the guarded parse in AlertAdd.
type AlertAddOptions struct {
	ProductID string
	MarketID  string
	Threshold string
	Direction string
}

// HistoryOptions configure the synthetic series command. Days 0 falls
// back to the configured trailing window.
type HistoryOptions struct {
	ProductID string
	MarketID  string
	CSVPath   string
	PNGPath   string
	MaxPoints int
	Days      int
}

// ProfileSetupOptions carry the onboarding form fields.
type ProfileSetupOptions struct {
	Name      string
	Email     string
	Phone     string
	Latitude  float64
	Longitude float64
	City      string
	State     string
	HasCoords bool
}

// ProfileUpdateOptions carry the partial-update form fields; empty
// strings mean "leave unchanged".
type ProfileUpdateOptions struct {
	Name          string
	Email         string
	Phone         string
	DataSharing   *bool
	Notifications *bool
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
