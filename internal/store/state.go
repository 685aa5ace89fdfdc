// Package store holds the two independent state containers behind the
// application: the market data store (reference data plus favorites
// and alerts) and the user profile store. Reads are synchronous over
// in-memory state; mutations update memory first and persist
// best-effort, so a failed durable write never fails the operation.
package store

import (
	"context"

	"agri-market-watch/internal/market"
)

// MarketState is the persisted subset of the market data store.
// Reference collections are deliberately excluded.
type MarketState struct {
	FavoriteMarkets  []string             `json:"favoriteMarkets"`
	FavoriteProducts []string             `json:"favoriteProducts"`
	Alerts           []market.MarketAlert `json:"alerts"`
}

// UserState is the full persisted state of the user profile store.
type UserState struct {
	Profile       *market.UserProfile `json:"profile"`
	IsOnboarded   bool                `json:"isOnboarded"`
	IsOfflineMode bool                `json:"isOfflineMode"`
}

// MarketStatePersister saves and restores the market store's user subset.
type MarketStatePersister interface {
	SaveMarketState(ctx context.Context, state MarketState) error
	LoadMarketState(ctx context.Context) (MarketState, bool, error)
}

// UserStatePersister saves and restores the profile store's state.
type UserStatePersister interface {
	SaveUserState(ctx context.Context, state UserState) error
	LoadUserState(ctx context.Context) (UserState, bool, error)
}
