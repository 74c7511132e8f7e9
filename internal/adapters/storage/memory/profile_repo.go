package memory

import (
	"context"
	"sync"

	"livestock-tracker/internal/domain/profile"
)

type profileRepo struct {
	mu      sync.RWMutex
	profile *profile.UserProfile
	prefs   *profile.NotificationPreferences
}

func NewProfileRepo() profile.Repository {
	return &profileRepo{}
}

func (r *profileRepo) Get(ctx context.Context) (profile.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return profile.UserProfile{}, profile.ErrNotFound
	}
	return *r.profile, nil
}

func (r *profileRepo) Save(ctx context.Context, p profile.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = &p
	return nil
}

func (r *profileRepo) GetPreferences(ctx context.Context) (profile.NotificationPreferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.prefs == nil {
		return profile.NotificationPreferences{}, profile.ErrNotFound
	}
	return *r.prefs, nil
}

func (r *profileRepo) SavePreferences(ctx context.Context, p profile.NotificationPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs = &p
	return nil
}
