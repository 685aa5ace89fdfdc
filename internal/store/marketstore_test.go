package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-market-watch/internal/market"
)

type recordingPersister struct {
	marketSaves []MarketState
	userSaves   []UserState
	loadMarket  *MarketState
	loadUser    *UserState
}

func (p *recordingPersister) SaveMarketState(_ context.Context, state MarketState) error {
	p.marketSaves = append(p.marketSaves, state)
	return nil
}

func (p *recordingPersister) LoadMarketState(_ context.Context) (MarketState, bool, error) {
	if p.loadMarket == nil {
		return MarketState{}, false, nil
	}
	return *p.loadMarket, true, nil
}

func (p *recordingPersister) SaveUserState(_ context.Context, state UserState) error {
	p.userSaves = append(p.userSaves, state)
	return nil
}

func (p *recordingPersister) LoadUserState(_ context.Context) (UserState, bool, error) {
	if p.loadUser == nil {
		return UserState{}, false, nil
	}
	return *p.loadUser, true, nil
}

func fixtureMarketStore(t *testing.T, persister MarketStatePersister) *MarketStore {
	t.Helper()

	products := []market.Product{
		{ID: "p1", Name: "Rice", Category: "Grains"},
		{ID: "p2", Name: "Wheat", Category: "Grains"},
	}
	markets := []market.Market{
		{ID: "m1", Name: "Central Farmers Market"},
		{ID: "m2", Name: "Riverside Agricultural Hub"},
	}
	prices := []market.PriceData{
		{ID: "price1", ProductID: "p1", MarketID: "m1", Price: decimal.RequireFromString("25.50"), Unit: "per kg", Trend: market.TrendUp},
		{ID: "price2", ProductID: "p1", MarketID: "m2", Price: decimal.RequireFromString("24.75"), Unit: "per kg", Trend: market.TrendStable},
	}
	buyers := []market.Buyer{
		{ID: "b1", Name: "Golden Gate Wholesale Foods"},
	}

	return NewMarketStore(context.Background(), products, markets, prices, buyers, persister, zerolog.Nop())
}

func TestLookupsReturnNotFoundForUnknownIDs(t *testing.T) {
	s := fixtureMarketStore(t, nil)

	_, ok := s.ProductByID("p99")
	assert.False(t, ok)
	_, ok = s.MarketByID("m99")
	assert.False(t, ok)
	_, ok = s.BuyerByID("b99")
	assert.False(t, ok)

	product, ok := s.ProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, "Rice", product.Name)
}

func TestPriceForProductInMarket(t *testing.T) {
	s := fixtureMarketStore(t, nil)

	price, ok := s.PriceForProductInMarket("p1", "m1")
	require.True(t, ok)
	assert.True(t, price.Price.Equal(decimal.RequireFromString("25.50")))

	price, ok = s.PriceForProductInMarket("p1", "m2")
	require.True(t, ok)
	assert.True(t, price.Price.Equal(decimal.RequireFromString("24.75")))

	_, ok = s.PriceForProductInMarket("p1", "m9")
	assert.False(t, ok)
}

func TestToggleFavoriteMarketDoubleToggleRestores(t *testing.T) {
	persister := &recordingPersister{}
	s := fixtureMarketStore(t, persister)
	ctx := context.Background()

	s.ToggleFavoriteMarket(ctx, "m1")
	assert.True(t, s.IsFavoriteMarket("m1"))
	require.Len(t, s.FavoriteMarkets(), 1)

	s.ToggleFavoriteMarket(ctx, "m1")
	assert.False(t, s.IsFavoriteMarket("m1"))
	assert.Empty(t, s.FavoriteMarkets())

	// Every toggle persists only the user subset.
	require.Len(t, persister.marketSaves, 2)
	assert.Empty(t, persister.marketSaves[1].FavoriteMarkets)
}

func TestToggleFavoriteProductIdempotentPair(t *testing.T) {
	s := fixtureMarketStore(t, nil)
	ctx := context.Background()

	s.ToggleFavoriteProduct(ctx, "p2")
	s.ToggleFavoriteProduct(ctx, "p1")
	s.ToggleFavoriteProduct(ctx, "p2")

	favorites := s.FavoriteProducts()
	require.Len(t, favorites, 1)
	assert.Equal(t, "p1", favorites[0].ID)
}

func TestAddAlertAssignsIdentityAndTimestamp(t *testing.T) {
	s := fixtureMarketStore(t, nil)

	created := s.AddAlert(context.Background(), NewAlert{
		ProductID: "p1",
		MarketID:  "m1",
		Threshold: decimal.NewFromInt(20),
		Direction: market.AlertBelow,
		Active:    true,
	})

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, s.Alerts(), 1)

	// Duplicates are allowed.
	second := s.AddAlert(context.Background(), NewAlert{
		ProductID: "p1",
		MarketID:  "m1",
		Threshold: decimal.NewFromInt(20),
		Direction: market.AlertBelow,
		Active:    true,
	})
	assert.NotEqual(t, created.ID, second.ID)
	assert.Len(t, s.Alerts(), 2)
}

func TestRemoveAlertUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	persister := &recordingPersister{}
	s := fixtureMarketStore(t, persister)
	ctx := context.Background()

	created := s.AddAlert(ctx, NewAlert{ProductID: "p1", MarketID: "m1", Threshold: decimal.NewFromInt(20), Direction: market.AlertBelow, Active: true})
	savesBefore := len(persister.marketSaves)

	s.RemoveAlert(ctx, "alert_does_not_exist")

	require.Len(t, s.Alerts(), 1)
	assert.Equal(t, created.ID, s.Alerts()[0].ID)
	// A no-op removal does not persist.
	assert.Len(t, persister.marketSaves, savesBefore)

	s.RemoveAlert(ctx, created.ID)
	assert.Empty(t, s.Alerts())
}

func TestToggleAlertActive(t *testing.T) {
	s := fixtureMarketStore(t, nil)
	ctx := context.Background()

	created := s.AddAlert(ctx, NewAlert{ProductID: "p1", MarketID: "m1", Threshold: decimal.NewFromInt(20), Direction: market.AlertAbove, Active: true})

	s.ToggleAlertActive(ctx, created.ID)
	assert.False(t, s.Alerts()[0].Active)
	s.ToggleAlertActive(ctx, created.ID)
	assert.True(t, s.Alerts()[0].Active)

	// Unknown id is a no-op.
	s.ToggleAlertActive(ctx, "alert_unknown")
	assert.True(t, s.Alerts()[0].Active)
}

func TestAlertsForProduct(t *testing.T) {
	s := fixtureMarketStore(t, nil)
	ctx := context.Background()

	s.AddAlert(ctx, NewAlert{ProductID: "p1", MarketID: "m1", Threshold: decimal.NewFromInt(20), Direction: market.AlertBelow})
	s.AddAlert(ctx, NewAlert{ProductID: "p2", MarketID: "m1", Threshold: decimal.NewFromInt(15), Direction: market.AlertAbove})
	s.AddAlert(ctx, NewAlert{ProductID: "p1", MarketID: "m2", Threshold: decimal.NewFromInt(22), Direction: market.AlertAbove})

	alerts := s.AlertsForProduct("p1")
	require.Len(t, alerts, 2)
	for _, a := range alerts {
		assert.Equal(t, "p1", a.ProductID)
	}
	assert.Empty(t, s.AlertsForProduct("p9"))
}

func TestAlertsSnapshotSurvivesRemoval(t *testing.T) {
	s := fixtureMarketStore(t, nil)
	ctx := context.Background()

	first := s.AddAlert(ctx, NewAlert{ProductID: "p1", MarketID: "m1", Threshold: decimal.NewFromInt(20), Direction: market.AlertBelow})
	second := s.AddAlert(ctx, NewAlert{ProductID: "p2", MarketID: "m1", Threshold: decimal.NewFromInt(15), Direction: market.AlertAbove})

	snapshot := s.Alerts()
	s.RemoveAlert(ctx, first.ID)

	require.Len(t, snapshot, 2)
	assert.Equal(t, first.ID, snapshot[0].ID)
	assert.Equal(t, second.ID, snapshot[1].ID)

	require.Len(t, s.Alerts(), 1)
	assert.Equal(t, second.ID, s.Alerts()[0].ID)
}

func TestNewMarketStoreRestoresPersistedSubset(t *testing.T) {
	persister := &recordingPersister{
		loadMarket: &MarketState{
			FavoriteMarkets:  []string{"m2"},
			FavoriteProducts: []string{"p1"},
			Alerts: []market.MarketAlert{
				{ID: "alert_restored", ProductID: "p1", MarketID: "m1", Threshold: decimal.NewFromInt(20), Direction: market.AlertBelow, Active: true},
			},
		},
	}

	s := fixtureMarketStore(t, persister)

	assert.True(t, s.IsFavoriteMarket("m2"))
	assert.True(t, s.IsFavoriteProduct("p1"))
	require.Len(t, s.Alerts(), 1)
	assert.Equal(t, "alert_restored", s.Alerts()[0].ID)
}
