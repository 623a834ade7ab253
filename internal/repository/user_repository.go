package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// UserRepo owns the `users` key: a map from user id to User.
type UserRepo struct{ store *kvstore.Store }

func NewUserRepo(s *kvstore.Store) *UserRepo { return &UserRepo{store: s} }

func (r *UserRepo) table(ctx context.Context) map[string]model.User {
	return kvstore.Get(ctx, r.store, KeyUsers, map[string]model.User(nil))
}

// Create stores u. The email must not match any stored email ignoring case.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	err := kvstore.Update(ctx, r.store, KeyUsers, func(t *map[string]model.User) error {
		if *t == nil {
			*t = make(map[string]model.User)
		}
		for _, existing := range *t {
			if strings.EqualFold(existing.Email, u.Email) {
				return ErrEmailExists
			}
		}
		(*t)[u.ID] = u
		return nil
	})
	return conflict(err)
}

// Upsert inserts u, or when a user with the same email exists, overwrites its
// name, password hash and role while keeping its id and creation time. The
// stored record is returned.
func (r *UserRepo) Upsert(ctx context.Context, u model.User) (model.User, error) {
	stored := u
	err := kvstore.Update(ctx, r.store, KeyUsers, func(t *map[string]model.User) error {
		if *t == nil {
			*t = make(map[string]model.User)
		}
		for id, existing := range *t {
			if strings.EqualFold(existing.Email, u.Email) {
				existing.Name = u.Name
				existing.PasswordHash = u.PasswordHash
				existing.Role = u.Role
				(*t)[id] = existing
				stored = existing
				return nil
			}
		}
		(*t)[u.ID] = u
		stored = u
		return nil
	})
	return stored, conflict(err)
}

// GetByEmail fetches a user by email, ignoring case and surrounding spaces.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	for _, u := range r.table(ctx) {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	u, ok := r.table(ctx)[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// List returns every user in registration order.
func (r *UserRepo) List(ctx context.Context) []model.User {
	t := r.table(ctx)
	out := make([]model.User, 0, len(t))
	for _, u := range t {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *UserRepo) Count(ctx context.Context) int { return len(r.table(ctx)) }
