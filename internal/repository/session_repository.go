package repository

import (
	"context"
	"time"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// SessionRepo persists logged-in sessions under the `currentUser` key, one
// entry per session id so concurrent clients do not overwrite each other.
type SessionRepo struct {
	store *kvstore.Store
	now   func() time.Time
}

func NewSessionRepo(s *kvstore.Store) *SessionRepo {
	return &SessionRepo{store: s, now: time.Now}
}

// Put stores s and drops any sessions that have already expired.
func (r *SessionRepo) Put(ctx context.Context, s model.Session) error {
	now := r.now().UTC()
	err := kvstore.Update(ctx, r.store, KeySessions, func(t *map[string]model.Session) error {
		if *t == nil {
			*t = make(map[string]model.Session)
		}
		for id, old := range *t {
			if !old.ExpiresAt.IsZero() && now.After(old.ExpiresAt) {
				delete(*t, id)
			}
		}
		(*t)[s.ID] = s
		return nil
	})
	return conflict(err)
}

// Get returns a live session. Expired sessions are reported as missing.
func (r *SessionRepo) Get(ctx context.Context, id string) (model.Session, error) {
	t := kvstore.Get(ctx, r.store, KeySessions, map[string]model.Session(nil))
	s, ok := t[id]
	if !ok {
		return model.Session{}, ErrSessionNotFound
	}
	if !s.ExpiresAt.IsZero() && r.now().UTC().After(s.ExpiresAt) {
		return model.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes the session. Deleting an unknown id is not an error.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	err := kvstore.Update(ctx, r.store, KeySessions, func(t *map[string]model.Session) error {
		delete(*t, id)
		return nil
	})
	return conflict(err)
}
