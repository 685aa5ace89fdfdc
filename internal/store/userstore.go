package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"agri-market-watch/internal/market"
)

// DefaultProfile is the placeholder created when an interest is tagged
// before onboarding has produced a real profile.
func DefaultProfile() market.UserProfile {
	return market.UserProfile{
		ID:                 "default",
		Name:               "Farmer",
		ProductsOfInterest: []string{},
		DataSharingEnabled: true,
		NotificationsOn:    true,
	}
}

// UserStore owns the single local user's profile and app-mode flags.
// Its entire state is persisted.
type UserStore struct {
	profile       *market.UserProfile
	isOnboarded   bool
	isOfflineMode bool

	persister UserStatePersister
	logger    zerolog.Logger
	now       func() time.Time
}

// NewUserStore builds the store and restores persisted state, if any.
func NewUserStore(ctx context.Context, persister UserStatePersister, logger zerolog.Logger) *UserStore {
	s := &UserStore{
		persister: persister,
		logger:    logger.With().Str("component", "user_store").Logger(),
		now:       time.Now,
	}

	if persister != nil {
		state, found, err := persister.LoadUserState(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("discarding persisted user state")
		} else if found {
			s.profile = state.Profile
			s.isOnboarded = state.IsOnboarded
			s.isOfflineMode = state.IsOfflineMode
		}
	}

	return s
}

// Profile returns the current profile, if one exists.
func (s *UserStore) Profile() (market.UserProfile, bool) {
	if s.profile == nil {
		return market.UserProfile{}, false
	}
	return *s.profile, true
}

// IsOnboarded reports whether onboarding has completed.
func (s *UserStore) IsOnboarded() bool { return s.isOnboarded }

// IsOfflineMode reports whether offline mode is on.
func (s *UserStore) IsOfflineMode() bool { return s.isOfflineMode }

// SetProfile replaces the profile wholesale. Used once, at onboarding.
func (s *UserStore) SetProfile(ctx context.Context, profile market.UserProfile) {
	s.profile = &profile
	s.persist(ctx)
}

// ProfileUpdate carries the optional fields of a partial profile
// update; nil fields are left unchanged.
type ProfileUpdate struct {
	Name               *string
	Email              *string
	Phone              *string
	Location           *market.Location
	ProfileImage       *string
	DataSharingEnabled *bool
	NotificationsOn    *bool
}

// UpdateProfile merges the given fields into the existing profile.
// Without an existing profile this is a no-op: updating is not
// allowed to invent a profile (unlike AddProductOfInterest).
func (s *UserStore) UpdateProfile(ctx context.Context, update ProfileUpdate) {
	if s.profile == nil {
		return
	}
	if update.Name != nil {
		s.profile.Name = *update.Name
	}
	if update.Email != nil {
		s.profile.Email = update.Email
	}
	if update.Phone != nil {
		s.profile.Phone = update.Phone
	}
	if update.Location != nil {
		s.profile.Location = update.Location
	}
	if update.ProfileImage != nil {
		s.profile.ProfileImage = update.ProfileImage
	}
	if update.DataSharingEnabled != nil {
		s.profile.DataSharingEnabled = *update.DataSharingEnabled
	}
	if update.NotificationsOn != nil {
		s.profile.NotificationsOn = *update.NotificationsOn
	}
	s.persist(ctx)
}

// SetOnboarded records onboarding completion.
func (s *UserStore) SetOnboarded(ctx context.Context, value bool) {
	s.isOnboarded = value
	s.persist(ctx)
}

// SetOfflineMode toggles offline mode.
func (s *UserStore) SetOfflineMode(ctx context.Context, value bool) {
	s.isOfflineMode = value
	s.persist(ctx)
}

// AddProductOfInterest adds the product id to the interest list with
// set semantics. When no profile exists yet, a default placeholder
// profile is created instead of failing.
func (s *UserStore) AddProductOfInterest(ctx context.Context, productID string) {
	if s.profile == nil {
		profile := DefaultProfile()
		s.profile = &profile
		s.persist(ctx)
		return
	}
	if !containsID(s.profile.ProductsOfInterest, productID) {
		s.profile.ProductsOfInterest = append(s.profile.ProductsOfInterest, productID)
	}
	s.persist(ctx)
}

// RemoveProductOfInterest removes the product id from the interest
// list; no-op without a profile.
func (s *UserStore) RemoveProductOfInterest(ctx context.Context, productID string) {
	if s.profile == nil {
		return
	}
	kept := make([]string, 0, len(s.profile.ProductsOfInterest))
	for _, id := range s.profile.ProductsOfInterest {
		if id != productID {
			kept = append(kept, id)
		}
	}
	s.profile.ProductsOfInterest = kept
	s.persist(ctx)
}

// TouchLastSync stamps the profile with the current time; no-op
// without a profile.
func (s *UserStore) TouchLastSync(ctx context.Context) {
	if s.profile == nil {
		return
	}
	ts := s.now().UTC()
	s.profile.LastSyncTimestamp = &ts
	s.persist(ctx)
}

// Logout clears the profile. Onboarding and offline-mode flags are
// deliberately left untouched.
func (s *UserStore) Logout(ctx context.Context) {
	s.profile = nil
	s.persist(ctx)
}

func (s *UserStore) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	state := UserState{
		Profile:       s.profile,
		IsOnboarded:   s.isOnboarded,
		IsOfflineMode: s.isOfflineMode,
	}
	if err := s.persister.SaveUserState(ctx, state); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist user state")
	}
}
