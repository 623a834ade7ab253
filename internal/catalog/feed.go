package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/progear-storefront/internal/model"
)

const (
	// DefaultFeedURL is the public read-only product list the catalog is seeded from.
	DefaultFeedURL = "https://fakestoreapi.com/products"
	// SchemaVersion is stored under productsVersion. Changing it forces a refetch at boot.
	SchemaVersion = "2.0"
	// FallbackCategory receives every upstream category without a display mapping.
	FallbackCategory = "accessories"
)

var (
	categoryMap = map[string]string{
		"electronics":      "Electronics",
		"jewelery":         "Jewelry",
		"men's clothing":   "Jackets",
		"women's clothing": "Women's Clothing",
	}
	brands    = []string{"Logitech", "Razer", "SteelSeries", "HyperX", "Corsair"}
	saleAbove = decimal.NewFromInt(50)
)

// ProPlayer is a professional player whose gear a product is associated with.
type ProPlayer struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Mouse    string `json:"mouse"`
	Keyboard string `json:"keyboard"`
}

var proPlayers = []ProPlayer{
	{Name: "s1mple", Team: "NAVI", Mouse: "Logitech G Pro X Superlight", Keyboard: "HyperX Alloy FPS Pro"},
	{Name: "ZywOo", Team: "Vitality", Mouse: "Logitech G Pro Wireless", Keyboard: "Logitech G Pro X"},
	{Name: "NiKo", Team: "G2", Mouse: "Logitech G Pro X Superlight", Keyboard: "Logitech G815"},
	{Name: "device", Team: "Astralis", Mouse: "Logitech G Pro Wireless", Keyboard: "SteelSeries Apex Pro"},
}

// LookupProPlayer returns the profile for name.
func LookupProPlayer(name string) (ProPlayer, bool) {
	for _, p := range proPlayers {
		if p.Name == name {
			return p, true
		}
	}
	return ProPlayer{}, false
}

// FeedItem is one element of the upstream JSON array.
type FeedItem struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Price       decimal.Decimal  `json:"price"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	Rating      model.FeedRating `json:"rating"`
}

// Feed fetches the raw upstream product list.
type Feed interface {
	Fetch(ctx context.Context) ([]FeedItem, error)
}

// HTTPFeed reads the product list with a single GET. It does not retry.
type HTTPFeed struct {
	URL    string
	Client *http.Client
}

func NewHTTPFeed(url string, client *http.Client) *HTTPFeed {
	if url == "" {
		url = DefaultFeedURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFeed{URL: url, Client: client}
}

func (f *HTTPFeed) Fetch(ctx context.Context) ([]FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed get: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed get: unexpected status %d", resp.StatusCode)
	}
	var items []FeedItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("feed decode: %w", err)
	}
	return items, nil
}

// Enrich maps upstream items onto catalog products. Brand, pro player and the
// "new" tag depend on the item's position in the feed.
func Enrich(items []FeedItem) []model.Product {
	out := make([]model.Product, 0, len(items))
	for i, it := range items {
		category, ok := categoryMap[it.Category]
		if !ok {
			category = FallbackCategory
		}
		p := model.Product{
			ID:          it.ID,
			Title:       it.Title,
			Price:       it.Price,
			Category:    category,
			Brand:       brands[i%len(brands)],
			Image:       it.Image,
			Description: it.Description,
			Tags:        generateTags(it.Price, i),
			Rating:      it.Rating,
		}
		if i%3 == 0 {
			p.ProPlayer = proPlayers[i%len(proPlayers)].Name
		}
		out = append(out, p)
	}
	return out
}

func generateTags(price decimal.Decimal, index int) []string {
	tags := []string{}
	if index < 5 {
		tags = append(tags, model.TagNew)
	}
	if price.GreaterThan(saleAbove) {
		tags = append(tags, model.TagSale)
	}
	return tags
}
