package repository

import (
	"context"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// SettingsRepo owns the `settings` record and the two promotion flags.
type SettingsRepo struct{ store *kvstore.Store }

func NewSettingsRepo(s *kvstore.Store) *SettingsRepo { return &SettingsRepo{store: s} }

// Get returns the stored settings with defaults filled in for blank fields.
func (r *SettingsRepo) Get(ctx context.Context) model.Settings {
	return withDefaults(kvstore.Get(ctx, r.store, KeySettings, model.DefaultSettings()))
}

// Update applies fn to the current settings and stores the result.
func (r *SettingsRepo) Update(ctx context.Context, fn func(*model.Settings) error) (model.Settings, error) {
	var out model.Settings
	err := kvstore.Update(ctx, r.store, KeySettings, func(s *model.Settings) error {
		*s = withDefaults(*s)
		if err := fn(s); err != nil {
			return err
		}
		out = *s
		return nil
	})
	return out, conflict(err)
}

// Flag reads a boolean flag, false when unset.
func (r *SettingsRepo) Flag(ctx context.Context, key string) bool {
	return kvstore.Get(ctx, r.store, key, false)
}

// ToggleFlag flips a boolean flag and returns its new value.
func (r *SettingsRepo) ToggleFlag(ctx context.Context, key string) (bool, error) {
	var out bool
	err := kvstore.Update(ctx, r.store, key, func(v *bool) error {
		*v = !*v
		out = *v
		return nil
	})
	return out, conflict(err)
}

func withDefaults(s model.Settings) model.Settings {
	def := model.DefaultSettings()
	if s.Language == "" {
		s.Language = def.Language
	}
	if s.Currency == "" {
		s.Currency = def.Currency
	}
	if s.Theme == "" {
		s.Theme = def.Theme
	}
	return s
}
