package catalog

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/progear-storefront/internal/auth"
	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
)

type stubFeed struct {
	items []FeedItem
	err   error
	calls int
}

func (f *stubFeed) Fetch(context.Context) ([]FeedItem, error) {
	f.calls++
	return f.items, f.err
}

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newCatalog(feed Feed) (*Catalog, *repository.ProductRepo, *repository.ReviewRepo) {
	store := kvstore.New(kvstore.NewMemoryBackend(), quiet())
	products := repository.NewProductRepo(store)
	reviews := repository.NewReviewRepo(store)
	return New(products, reviews, feed, quiet()), products, reviews
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func feedItems(n int) []FeedItem {
	cats := []string{"electronics", "jewelery", "men's clothing", "women's clothing", "toys"}
	out := make([]FeedItem, n)
	for i := range out {
		out[i] = FeedItem{
			ID:       int64(i + 1),
			Title:    "Item",
			Price:    decimal.NewFromInt(int64(20 + i*10)),
			Category: cats[i%len(cats)],
			Rating:   model.FeedRating{Rate: 4, Count: 100},
		}
	}
	return out
}

func TestEnrich(t *testing.T) {
	products := Enrich(feedItems(7))
	require.Len(t, products, 7)

	assert.Equal(t, "Electronics", products[0].Category)
	assert.Equal(t, "Jewelry", products[1].Category)
	assert.Equal(t, "Jackets", products[2].Category)
	assert.Equal(t, "Women's Clothing", products[3].Category)
	assert.Equal(t, FallbackCategory, products[4].Category)

	assert.Equal(t, "Logitech", products[0].Brand)
	assert.Equal(t, "Corsair", products[4].Brand)
	assert.Equal(t, "Logitech", products[5].Brand)

	assert.Equal(t, "s1mple", products[0].ProPlayer)
	assert.Equal(t, "", products[1].ProPlayer)
	assert.Equal(t, "device", products[3].ProPlayer)
	assert.Equal(t, "NiKo", products[6].ProPlayer)

	// price 20 + i*10: index 3 is 50 (not on sale), index 4 is 60.
	assert.Equal(t, []string{"new"}, products[3].Tags)
	assert.Equal(t, []string{"new", "sale"}, products[4].Tags)
	assert.Equal(t, []string{"sale"}, products[5].Tags)
	assert.False(t, products[0].AdminAdded)
}

func TestComputeStats(t *testing.T) {
	p := model.Product{ID: 1, Rating: model.FeedRating{Rate: 3.9, Count: 120}}

	fallback := ComputeStats(p, nil)
	assert.Equal(t, 3.9, fallback.Rating)
	assert.Equal(t, 120, fallback.Count)
	assert.InDelta(t, 3.9*math.Log(130), fallback.Score, 1e-9)

	reviews := []model.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	st := ComputeStats(p, reviews)
	assert.Equal(t, 4.3, st.Rating)
	assert.Equal(t, 3, st.Count)
	assert.InDelta(t, 4.3*math.Log(4)*2, st.Score, 1e-9)
	assert.False(t, st.TopRated())

	assert.True(t, ComputeStats(p, []model.Review{{Rating: 5}, {Rating: 4}}).TopRated())
}

func TestSortDefaultTiers(t *testing.T) {
	a := model.Product{ID: 1, Title: "A"}
	b := model.Product{ID: 2, Title: "B", Tags: []string{"new"}}
	c := model.Product{ID: 3, Title: "C"}
	stats := map[int64]Stats{
		1: {Rating: 4.8, Count: 5, Score: 9.0},
		2: {Rating: 3.0, Count: 1, Score: 3.0},
		3: {Rating: 4.0, Count: 1, Score: 5.0},
	}
	fn := func(id int64) Stats { return stats[id] }

	got := Sort([]model.Product{c, b, a}, SortDefault, fn)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestSortModes(t *testing.T) {
	list := []model.Product{
		{ID: 1, Title: "mouse", Price: price("30")},
		{ID: 3, Title: "Headset", Price: price("99.5")},
		{ID: 2, Title: "keyboard", Price: price("10")},
	}
	stats := map[int64]Stats{1: {Score: 2}, 2: {Score: 7}, 3: {Score: 4}}
	fn := func(id int64) Stats { return stats[id] }

	assert.Equal(t, []int64{2, 1, 3}, ids(Sort(list, SortPriceLow, fn)))
	assert.Equal(t, []int64{3, 1, 2}, ids(Sort(list, SortPriceHigh, fn)))
	assert.Equal(t, []int64{2, 3, 1}, ids(Sort(list, SortRating, fn)))
	assert.Equal(t, []int64{3, 2, 1}, ids(Sort(list, SortNewest, fn)))
	assert.Equal(t, []int64{3, 2, 1}, ids(Sort(list, SortName, fn)))
	assert.Equal(t, []int64{1, 3, 2}, ids(list), "input must not be reordered")

	assert.Equal(t, SortDefault, ParseSortMode("bogus"))
	assert.Equal(t, SortNewest, ParseSortMode("newest"))
}

func TestFilterExactMatch(t *testing.T) {
	list := []model.Product{
		{ID: 1, Category: "Electronics", Brand: "Razer", Tags: []string{"sale"}},
		{ID: 2, Category: "Electronics", Brand: "Logitech", Tags: []string{"new"}},
		{ID: 3, Category: "Jewelry", Brand: "Razer"},
	}
	fn := func(id int64) Stats {
		if id == 3 {
			return Stats{Rating: 4.7, Count: 3}
		}
		return Stats{}
	}

	assert.Equal(t, []int64{1, 2}, ids(Filter(list, Criteria{Category: "Electronics"}, fn)))
	assert.Equal(t, []int64{1}, ids(Filter(list, Criteria{Category: "Electronics", Brand: "Razer"}, fn)))
	assert.Empty(t, Filter(list, Criteria{Category: "electronics"}, fn))
	assert.Equal(t, []int64{3}, ids(Filter(list, Criteria{Tag: model.TagTopRated}, fn)))
	assert.Len(t, Filter(list, Criteria{}, fn), 3)
}

func TestSearch(t *testing.T) {
	list := []model.Product{
		{ID: 1, Title: "Wireless Mouse", Brand: "Logitech", Category: "Electronics", Description: "fast"},
		{ID: 2, Title: "Ring", Brand: "Razer", Category: "Jewelry", Description: "gold"},
	}
	assert.Equal(t, []int64{1}, ids(Search(list, "log")))
	assert.Equal(t, []int64{2}, ids(Search(list, "GOLD")))
	assert.Empty(t, Search(list, "   "))

	many := make([]model.Product, 12)
	for i := range many {
		many[i] = model.Product{ID: int64(i), Title: "Pad"}
	}
	assert.Len(t, Suggest(many, "pad"), SuggestLimit)
}

func TestFacetsFirstSeenOrder(t *testing.T) {
	list := Enrich(feedItems(6))
	cats := Categories(list)
	require.Len(t, cats, 5)
	assert.Equal(t, Facet{Name: "Electronics", Count: 2}, cats[0])
	assert.Equal(t, "Logitech", Brands(list)[0].Name)
}

func TestEnsureFresh(t *testing.T) {
	ctx := context.Background()
	feed := &stubFeed{items: feedItems(3)}
	cat, products, _ := newCatalog(feed)

	require.NoError(t, cat.EnsureFresh(ctx))
	assert.Equal(t, 1, feed.calls)
	assert.Equal(t, 3, cat.Count(ctx))
	assert.Equal(t, SchemaVersion, products.Version(ctx))

	require.NoError(t, cat.EnsureFresh(ctx))
	assert.Equal(t, 1, feed.calls, "current catalog is not refetched")

	products.SetVersion(ctx, "1.0")
	require.NoError(t, cat.EnsureFresh(ctx))
	assert.Equal(t, 2, feed.calls)
}

func TestRefreshFailureKeepsCachedCatalog(t *testing.T) {
	ctx := context.Background()
	feed := &stubFeed{items: feedItems(2)}
	cat, _, _ := newCatalog(feed)
	require.NoError(t, cat.Refresh(ctx))

	feed.err = errors.New("offline")
	assert.Error(t, cat.Refresh(ctx))
	assert.Equal(t, 2, cat.Count(ctx))
	assert.Equal(t, NoticeLoadFailed, cat.Notice())

	feed.err = nil
	require.NoError(t, cat.Refresh(ctx))
	assert.Equal(t, "", cat.Notice())
}

func TestRefreshHookRunsOnSuccessOnly(t *testing.T) {
	ctx := context.Background()
	feed := &stubFeed{err: errors.New("offline")}
	cat, _, _ := newCatalog(feed)
	hooks := 0
	cat.OnRefresh = func(context.Context) error { hooks++; return errors.New("redis down") }

	assert.Error(t, cat.EnsureFresh(ctx))
	assert.Equal(t, 0, hooks)

	feed.err, feed.items = nil, feedItems(2)
	require.NoError(t, cat.EnsureFresh(ctx), "hook failures do not fail the refresh")
	assert.Equal(t, 1, hooks)
}

func TestAdminProductMutations(t *testing.T) {
	ctx := context.Background()
	cat, _, _ := newCatalog(&stubFeed{items: feedItems(2)})
	require.NoError(t, cat.Refresh(ctx))

	user := &model.Session{UserID: "u", Role: model.RoleUser}
	admin := &model.Session{UserID: "a", Role: model.RoleAdmin}
	in := ProductInput{Title: "G Pro X", Price: price("129.99"), Brand: "Logitech"}

	_, err := cat.Add(ctx, user, in)
	assert.ErrorIs(t, err, auth.ErrAdminRequired)
	_, err = cat.Add(ctx, admin, ProductInput{Title: "free"})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	p, err := cat.Add(ctx, admin, in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.True(t, p.AdminAdded)
	assert.Equal(t, FallbackCategory, p.Category)
	assert.Equal(t, []string{"new", "sale"}, p.Tags)

	updated, err := cat.Update(ctx, admin, p.ID, ProductInput{Title: "G Pro X 2", Price: price("99")})
	require.NoError(t, err)
	assert.Equal(t, "Logitech", updated.Brand)
	assert.True(t, updated.Price.Equal(price("99")))

	removed, err := cat.Delete(ctx, admin, p.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = cat.Delete(ctx, admin, p.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	_, err = cat.Delete(ctx, nil, 1)
	assert.ErrorIs(t, err, auth.ErrAdminRequired)
}

func TestFeaturedUsesReviews(t *testing.T) {
	ctx := context.Background()
	cat, _, reviews := newCatalog(&stubFeed{items: feedItems(10)})
	require.NoError(t, cat.Refresh(ctx))

	// Product 10 is neither new nor reviewed until it gets two 5-star reviews.
	require.NoError(t, reviews.Append(ctx, model.Review{ProductID: 10, Rating: 5}))
	require.NoError(t, reviews.Append(ctx, model.Review{ProductID: 10, Rating: 5}))

	featured := cat.Featured(ctx)
	require.Len(t, featured, FeaturedLimit)
	assert.Equal(t, int64(10), featured[0].ID)
	assert.True(t, featured[1].HasTag(model.TagNew))
}

func TestWinterSalePrice(t *testing.T) {
	assert.True(t, WinterSalePrice(model.Product{Price: price("50")}).Equal(price("40")))
}

func TestHTTPFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Backpack","price":109.95,"description":"d","category":"men's clothing","image":"i.png","rating":{"rate":3.9,"count":120}}]`))
	}))
	defer srv.Close()

	items, err := NewHTTPFeed(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Price.Equal(price("109.95")))
	assert.Equal(t, 120, items[0].Rating.Count)

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()
	_, err = NewHTTPFeed(bad.URL, bad.Client()).Fetch(context.Background())
	assert.Error(t, err)
}

func ids(list []model.Product) []int64 {
	out := make([]int64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}
