package router

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/progear-storefront/internal/auth"
	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/view"
)

type fakePages struct {
	rendered []string
	last     view.Page
}

func (f *fakePages) Pages() map[string]view.PageFunc {
	out := map[string]view.PageFunc{}
	for _, r := range []string{"/", "/products", "/search", "/product", "/cart", "/admin", "/login"} {
		route := r
		out[route] = func(_ context.Context, p view.Page) (string, error) {
			f.rendered = append(f.rendered, route)
			f.last = p
			return "page:" + route, nil
		}
	}
	return out
}

func (f *fakePages) Prompt(_ context.Context, p view.Page, kind view.PromptKind) (string, error) {
	return "prompt:" + string(kind) + ":" + p.Path, nil
}

func TestParseRequest(t *testing.T) {
	r := ParseRequest("/product/17?ref=home")
	assert.Equal(t, "/product", r.Route)
	assert.Equal(t, int64(17), r.ProductID)
	assert.Equal(t, "/product/17", r.Path)
	assert.Equal(t, "home", r.Query.Get("ref"))

	assert.Equal(t, int64(0), ParseRequest("/product/abc").ProductID)
	assert.Equal(t, "/cart", ParseRequest("/cart/").Route)
	assert.Equal(t, "/", ParseRequest("").Route)

	s := ParseRequest("/products?search=razer")
	assert.Equal(t, "/search", s.Route)
	assert.Equal(t, "razer", s.Query.Get("q"))
}

func TestNavigateAccess(t *testing.T) {
	ctx := context.Background()
	log := logrus.New()
	log.SetOutput(io.Discard)
	pages := &fakePages{}
	n := NewNavigator(pages, log)

	user := &model.Session{UserID: "u1", Role: model.RoleUser}
	admin := &model.Session{UserID: "a1", Role: model.RoleAdmin}

	out, err := n.Navigate(ctx, ParseRequest("/cart"), nil)
	require.NoError(t, err)
	assert.True(t, out.Denied)
	assert.Equal(t, view.PromptLogin, out.Prompt)
	assert.Equal(t, "prompt:login:/cart", out.Markup)
	assert.Empty(t, pages.rendered, "denied pages are not rendered")

	out, err = n.Navigate(ctx, ParseRequest("/admin"), user)
	require.NoError(t, err)
	assert.True(t, out.Denied)
	assert.Equal(t, view.PromptDenied, out.Prompt)
	assert.Equal(t, auth.TierAdmin, out.Tier)

	out, err = n.Navigate(ctx, ParseRequest("/admin"), admin)
	require.NoError(t, err)
	assert.False(t, out.Denied)
	assert.Equal(t, "page:/admin", out.Markup)

	out, err = n.Navigate(ctx, ParseRequest("/cart?notice=Added"), user)
	require.NoError(t, err)
	assert.Equal(t, "page:/cart", out.Markup)
	assert.Equal(t, "Added", pages.last.Notice)
	assert.Same(t, user, pages.last.Session)
}

func TestNavigateUnknownFallsBackHome(t *testing.T) {
	log, hook := test.NewNullLogger()
	pages := &fakePages{}
	n := NewNavigator(pages, log)

	out, err := n.Navigate(context.Background(), ParseRequest("/nowhere"), nil)
	require.NoError(t, err)
	assert.Equal(t, "/", out.Route)
	assert.Equal(t, "page:/", out.Markup)
	assert.Equal(t, auth.TierUnlisted, out.Tier)

	out, err = n.Navigate(context.Background(), ParseRequest("/product/3"), nil)
	require.NoError(t, err)
	assert.Equal(t, "page:/product", out.Markup)
	assert.Equal(t, int64(3), pages.last.ProductID)
	_, err = n.Navigate(context.Background(), ParseRequest("/product/4"), nil)
	require.NoError(t, err)

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 1, warnings, "unlisted route warning is logged once")
}
