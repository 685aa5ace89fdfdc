package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"agri-market-watch/internal/market"
)

// MarketStore owns the reference collections and the user-specific
// market state (favorites, alerts). All operations are synchronous;
// lookups degrade to not-found instead of failing.
type MarketStore struct {
	products []market.Product
	markets  []market.Market
	prices   []market.PriceData
	buyers   []market.Buyer

	favoriteMarkets  []string
	favoriteProducts []string
	alerts           []market.MarketAlert

	persister MarketStatePersister
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewMarketStore builds a store over the given reference collections
// and restores the persisted user subset, if any. A nil persister
// disables persistence entirely.
func NewMarketStore(ctx context.Context, products []market.Product, markets []market.Market, prices []market.PriceData, buyers []market.Buyer, persister MarketStatePersister, logger zerolog.Logger) *MarketStore {
	s := &MarketStore{
		products:  products,
		markets:   markets,
		prices:    prices,
		buyers:    buyers,
		persister: persister,
		logger:    logger.With().Str("component", "market_store").Logger(),
		now:       time.Now,
		newID:     func() string { return "alert_" + uuid.NewString() },
	}

	if persister != nil {
		state, found, err := persister.LoadMarketState(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("discarding persisted market state")
		} else if found {
			s.favoriteMarkets = state.FavoriteMarkets
			s.favoriteProducts = state.FavoriteProducts
			s.alerts = state.Alerts
		}
	}

	return s
}

// ProductByID returns the product with the given id.
func (s *MarketStore) ProductByID(id string) (market.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return market.Product{}, false
}

// MarketByID returns the market with the given id.
func (s *MarketStore) MarketByID(id string) (market.Market, bool) {
	for _, m := range s.markets {
		if m.ID == id {
			return m, true
		}
	}
	return market.Market{}, false
}

// BuyerByID returns the buyer with the given id.
func (s *MarketStore) BuyerByID(id string) (market.Buyer, bool) {
	for _, b := range s.buyers {
		if b.ID == id {
			return b, true
		}
	}
	return market.Buyer{}, false
}

// PriceForProductInMarket returns the price record matching both keys.
// Pairs are unique in the reference data, so first match wins.
func (s *MarketStore) PriceForProductInMarket(productID, marketID string) (market.PriceData, bool) {
	for _, p := range s.prices {
		if p.ProductID == productID && p.MarketID == marketID {
			return p, true
		}
	}
	return market.PriceData{}, false
}

// Collection accessors return copies: a held result is a snapshot and
// never observes later in-place mutations of the store.

// Products returns the full product collection.
func (s *MarketStore) Products() []market.Product {
	return append([]market.Product(nil), s.products...)
}

// Markets returns the full market collection.
func (s *MarketStore) Markets() []market.Market {
	return append([]market.Market(nil), s.markets...)
}

// Prices returns the full price collection.
func (s *MarketStore) Prices() []market.PriceData {
	return append([]market.PriceData(nil), s.prices...)
}

// Buyers returns the full buyer collection.
func (s *MarketStore) Buyers() []market.Buyer {
	return append([]market.Buyer(nil), s.buyers...)
}

// Alerts returns all alerts.
func (s *MarketStore) Alerts() []market.MarketAlert {
	return append([]market.MarketAlert(nil), s.alerts...)
}

// ToggleFavoriteMarket adds the id to the favorite markets if absent,
// removes it if present. Toggling twice restores the original set.
func (s *MarketStore) ToggleFavoriteMarket(ctx context.Context, id string) {
	s.favoriteMarkets = toggleID(s.favoriteMarkets, id)
	s.persist(ctx)
}

// ToggleFavoriteProduct adds the id to the favorite products if
// absent, removes it if present.
func (s *MarketStore) ToggleFavoriteProduct(ctx context.Context, id string) {
	s.favoriteProducts = toggleID(s.favoriteProducts, id)
	s.persist(ctx)
}

// IsFavoriteMarket reports whether the market id is a favorite.
func (s *MarketStore) IsFavoriteMarket(id string) bool {
	return containsID(s.favoriteMarkets, id)
}

// IsFavoriteProduct reports whether the product id is a favorite.
func (s *MarketStore) IsFavoriteProduct(id string) bool {
	return containsID(s.favoriteProducts, id)
}

// FavoriteMarkets projects the favorite market ids onto the market
// collection. Computed per call.
func (s *MarketStore) FavoriteMarkets() []market.Market {
	out := make([]market.Market, 0, len(s.favoriteMarkets))
	for _, m := range s.markets {
		if containsID(s.favoriteMarkets, m.ID) {
			out = append(out, m)
		}
	}
	return out
}

// FavoriteProducts projects the favorite product ids onto the product
// collection. Computed per call.
func (s *MarketStore) FavoriteProducts() []market.Product {
	out := make([]market.Product, 0, len(s.favoriteProducts))
	for _, p := range s.products {
		if containsID(s.favoriteProducts, p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// NewAlert carries the user-supplied fields of an alert; identity and
// creation time are assigned by the store.
type NewAlert struct {
	ProductID string
	MarketID  string
	Threshold decimal.Decimal
	Direction market.AlertDirection
	Active    bool
}

// AddAlert appends a new alert with a fresh id and creation timestamp.
// Duplicates are allowed: two identical alerts may coexist.
func (s *MarketStore) AddAlert(ctx context.Context, alert NewAlert) market.MarketAlert {
	created := market.MarketAlert{
		ID:        s.newID(),
		ProductID: alert.ProductID,
		MarketID:  alert.MarketID,
		Threshold: alert.Threshold,
		Direction: alert.Direction,
		Active:    alert.Active,
		CreatedAt: s.now().UTC(),
	}
	s.alerts = append(s.alerts, created)
	s.persist(ctx)
	return created
}

// RemoveAlert deletes the alert with the given id; no-op if absent.
func (s *MarketStore) RemoveAlert(ctx context.Context, id string) {
	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(s.alerts) {
		return
	}
	s.alerts = kept
	s.persist(ctx)
}

// ToggleAlertActive flips the active flag of the alert with the given
// id; no-op if absent.
func (s *MarketStore) ToggleAlertActive(ctx context.Context, id string) {
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Active = !s.alerts[i].Active
			s.persist(ctx)
			return
		}
	}
}

// AlertsForProduct returns the alerts registered for the product.
func (s *MarketStore) AlertsForProduct(productID string) []market.MarketAlert {
	out := make([]market.MarketAlert, 0)
	for _, a := range s.alerts {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out
}

// persist writes the user subset through the persister. Failures are
// logged and swallowed: the in-memory state is already updated and
// stays authoritative for subsequent reads.
func (s *MarketStore) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	state := MarketState{
		FavoriteMarkets:  s.favoriteMarkets,
		FavoriteProducts: s.favoriteProducts,
		Alerts:           s.alerts,
	}
	if err := s.persister.SaveMarketState(ctx, state); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist market state")
	}
}

func toggleID(ids []string, id string) []string {
	if containsID(ids, id) {
		out := make([]string, 0, len(ids)-1)
		for _, v := range ids {
			if v != id {
				out = append(out, v)
			}
		}
		return out
	}
	return append(ids, id)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
