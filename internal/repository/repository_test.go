package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

func newStore() *kvstore.Store {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return kvstore.New(kvstore.NewMemoryBackend(), l)
}

func TestUserRepoRejectsDuplicateEmailIgnoringCase(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(newStore())

	require.NoError(t, users.Create(ctx, model.User{ID: "u1", Email: "Gamer@Example.com"}))
	err := users.Create(ctx, model.User{ID: "u2", Email: "gamer@example.COM"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, 1, users.Count(ctx))

	u, err := users.GetByEmail(ctx, " GAMER@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepoUpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(newStore())
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, users.Create(ctx, model.User{ID: "u1", Email: "admin@gmail.com", Role: model.RoleUser, CreatedAt: created}))
	got, err := users.Upsert(ctx, model.User{ID: "other", Name: "Admin", Email: "ADMIN@gmail.com", Role: model.RoleAdmin, PasswordHash: "h"})
	require.NoError(t, err)

	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, 1, users.Count(ctx))
}

func TestUserRepoListInRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(newStore())
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, users.Create(ctx, model.User{ID: "b", Email: "b@x.io", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, users.Create(ctx, model.User{ID: "a", Email: "a@x.io", CreatedAt: base}))

	list := users.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestSessionRepoExpiry(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionRepo(newStore())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }

	require.NoError(t, sessions.Put(ctx, model.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(time.Hour)}))
	_, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = sessions.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, sessions.Delete(ctx, "missing"))
}

func TestProductRepoAddAndDelete(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepo(newStore())
	require.NoError(t, products.ReplaceAll(ctx, []model.Product{{ID: 3, Title: "c"}, {ID: 20, Title: "t"}}))

	p, err := products.Add(ctx, model.Product{Title: "custom", Price: decimal.NewFromInt(15)})
	require.NoError(t, err)
	assert.Equal(t, int64(21), p.ID)

	removed, err := products.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = products.Delete(ctx, 3)
	require.NoError(t, err)
	assert.False(t, removed)

	ids := []int64{}
	for _, p := range products.List(ctx) {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{20, 21}, ids)
}

func TestProductRepoVersion(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepo(newStore())
	assert.Equal(t, "", products.Version(ctx))
	require.True(t, products.SetVersion(ctx, "2.0"))
	assert.Equal(t, "2.0", products.Version(ctx))
}

func TestOrderRepoNewestFirst(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepo(newStore())
	require.NoError(t, orders.Prepend(ctx, model.Order{OrderID: "o1", UserID: "u1"}))
	require.NoError(t, orders.Prepend(ctx, model.Order{OrderID: "o2", UserID: "u2"}))
	require.NoError(t, orders.Prepend(ctx, model.Order{OrderID: "o3", UserID: "u1"}))

	list := orders.List(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, "o3", list[0].OrderID)
	assert.Equal(t, "o1", list[2].OrderID)

	mine := orders.ListByUser(ctx, "u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "o3", mine[0].OrderID)

	_, err := orders.Mutate(ctx, "nope", func(*model.Order) error { return nil })
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCartRepoDropsEmptyCart(t *testing.T) {
	ctx := context.Background()
	carts := NewCartRepo(newStore())
	require.NoError(t, carts.Mutate(ctx, "u1", func(lines []model.CartLine) ([]model.CartLine, error) {
		return append(lines, model.CartLine{ProductID: 1, Quantity: 2}), nil
	}))
	assert.Len(t, carts.Lines(ctx, "u1"), 1)
	assert.Empty(t, carts.Lines(ctx, "u2"))

	require.NoError(t, carts.Clear(ctx, "u1"))
	assert.Empty(t, carts.Lines(ctx, "u1"))
}

func TestSettingsRepoDefaultsAndFlags(t *testing.T) {
	ctx := context.Background()
	settings := NewSettingsRepo(newStore())
	assert.Equal(t, model.DefaultSettings(), settings.Get(ctx))

	got, err := settings.Update(ctx, func(s *model.Settings) error {
		s.Theme = model.ThemeDark
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.Settings{Language: "en", Currency: "USD", Theme: "dark"}, got)

	assert.False(t, settings.Flag(ctx, KeyWinterSaleActive))
	on, err := settings.ToggleFlag(ctx, KeyWinterSaleActive)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, settings.Flag(ctx, KeyWinterSaleActive))
}
