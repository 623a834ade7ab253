package auth

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.UserRepo) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	store := kvstore.New(kvstore.NewMemoryBackend(), l)
	users := repository.NewUserRepo(store)
	svc := NewService(users, repository.NewSessionRepo(store), Config{BcryptCost: bcrypt.MinCost}, l)
	return svc, users
}

func TestRegisterValidationOrder(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)

	cases := []struct {
		name, email, password string
		want                  error
	}{
		{"", "a@b.co", "secret1", ErrFieldsRequired},
		{"Ann", "", "secret1", ErrFieldsRequired},
		{"Ann", "not-an-email", "", ErrFieldsRequired},
		{"Ann", "not-an-email", "secret1", ErrInvalidEmail},
		{"Ann", "ann@site", "secret1", ErrInvalidEmail},
		{"Ann", "ann@site.mn", "12345", ErrPasswordTooShort},
		{"Ann", "ann@site.mn", "a", ErrPasswordTooShort},
		{"Ann", "ann@site.mn", strings.Repeat("a", 80), ErrPasswordTooLong},
		{"Ann", "ann@site.mn", strings.Repeat("ж", 37), ErrPasswordTooLong},
	}
	for _, tc := range cases {
		_, err := svc.Register(ctx, tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, tc.want, "register(%q, %q, %q)", tc.name, tc.email, tc.password)
	}
	assert.Equal(t, 0, users.Count(ctx))
	assert.True(t, IsUserFacing(ErrPasswordTooLong))

	_, err := svc.Register(ctx, "Ann", "ann@site.mn", strings.Repeat("a", 72))
	assert.NoError(t, err, "72 bytes is still accepted")
}

func TestRegisterAutoLogsIn(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)

	var events []Event
	svc.Subscribe(func(_ context.Context, ev Event) { events = append(events, ev) })

	sess, err := svc.Register(ctx, "Bat-Erdene", "bat@example.mn", "secret1")
	require.NoError(t, err)
	assert.True(t, sess.IsLoggedIn())
	assert.False(t, sess.IsAdmin())
	assert.Equal(t, model.RoleUser, sess.Role)

	cur, err := svc.Current(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, sess.UserID, cur.UserID)

	require.Len(t, events, 1)
	assert.Equal(t, EventRegistered, events[0].Kind)

	u, err := users.GetByEmail(ctx, "bat@example.mn")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.PasswordHash)
}

func TestRegisterRejectsDuplicateEmailIgnoringCase(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)

	_, err := svc.Register(ctx, "One", "dup@example.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Two", "DUP@Example.com", "secret2")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, users.Count(ctx))
}

func TestLoginFailuresDoNotMutateUsers(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	_, err := svc.Register(ctx, "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)
	before := users.List(ctx)

	_, err = svc.Login(ctx, "", "x")
	assert.ErrorIs(t, err, ErrCredentialsRequired)
	_, err = svc.Login(ctx, "ghost@example.com", "secret1")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.Login(ctx, "ann@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrWrongPassword)

	assert.Equal(t, before, users.List(ctx))

	sess, err := svc.Login(ctx, "ANN@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", sess.Name)
}

func TestSeededAdminAlwaysLogsInAsAdmin(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)

	// Someone registered the admin address first; seeding must still win.
	_, err := svc.Register(ctx, "Squatter", "admin@gmail.com", "hijack1")
	require.NoError(t, err)

	_, err = svc.SeedAdmin(ctx, "Admin", "admin@gmail.com", "Admin@123")
	require.NoError(t, err)
	assert.Equal(t, 1, users.Count(ctx))

	sess, err := svc.Login(ctx, "admin@gmail.com", "Admin@123")
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin())

	_, err = svc.Login(ctx, "admin@gmail.com", "hijack1")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	sess, err := svc.Register(ctx, "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)

	kinds := []EventKind{}
	svc.Subscribe(func(_ context.Context, ev Event) { kinds = append(kinds, ev.Kind) })

	require.NoError(t, svc.Logout(ctx, sess.ID))
	cur, err := svc.Current(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, cur)

	require.NoError(t, svc.Logout(ctx, sess.ID))
	assert.Equal(t, []EventKind{EventLogout}, kinds)
}

func TestCanAccessRoute(t *testing.T) {
	user := &model.Session{UserID: "u1", Role: model.RoleUser}
	admin := &model.Session{UserID: "a1", Role: model.RoleAdmin}

	for _, r := range []string{"/", "/products", "/categories", "/sale", "/brands", "/products?category=Jackets"} {
		assert.True(t, CanAccessRoute(r, nil), r)
	}
	for _, r := range []string{"/cart", "/checkout", "/orders", "/wishlist", "/settings", "/cart/"} {
		assert.False(t, CanAccessRoute(r, nil), r)
		assert.True(t, CanAccessRoute(r, user), r)
	}
	for _, r := range []string{"/admin", "/winter-sale"} {
		assert.False(t, CanAccessRoute(r, nil), r)
		assert.False(t, CanAccessRoute(r, user), r)
		assert.True(t, CanAccessRoute(r, admin), r)
	}

	assert.Equal(t, TierUnlisted, ClassifyRoute("/product"))
	assert.True(t, CanAccessRoute("/product", nil))
	assert.True(t, CanAccessRoute("/some-new-page", nil))
}
