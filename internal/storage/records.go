package storage

import (
	"context"

	"agri-market-watch/internal/store"
)

// SaveMarketState persists the market store's user subset.
func (s *Store) SaveMarketState(ctx context.Context, state store.MarketState) error {
	return s.SaveRecord(ctx, MarketStateRecord, state)
}

// LoadMarketState restores the market store's user subset.
func (s *Store) LoadMarketState(ctx context.Context) (store.MarketState, bool, error) {
	var state store.MarketState
	found, err := s.LoadRecord(ctx, MarketStateRecord, &state)
	if err != nil || !found {
		return store.MarketState{}, false, err
	}
	return state, true, nil
}

// SaveUserState persists the profile store's state.
func (s *Store) SaveUserState(ctx context.Context, state store.UserState) error {
	return s.SaveRecord(ctx, UserStateRecord, state)
}

// LoadUserState restores the profile store's state.
func (s *Store) LoadUserState(ctx context.Context) (store.UserState, bool, error) {
	var state store.UserState
	found, err := s.LoadRecord(ctx, UserStateRecord, &state)
	if err != nil || !found {
		return store.UserState{}, false, err
	}
	return state, true, nil
}

var (
	_ store.MarketStatePersister = (*Store)(nil)
	_ store.UserStatePersister   = (*Store)(nil)
)
