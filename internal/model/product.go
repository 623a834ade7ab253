package model

import "github.com/shopspring/decimal"

// Product tags assigned by catalog enrichment. TagTopRated is computed from
// review stats and never stored.
const (
    TagNew      = "new"
    TagSale     = "sale"
    TagTopRated = "top-rated"
)

// FeedRating is the rating block delivered by the upstream product feed.
type FeedRating struct {
    Rate  float64 `json:"rate"`
    Count int     `json:"count"`
}

// Product is a catalog entry. ID is the upstream feed id or, for admin-added
// items, one past the largest id in the catalog.
type Product struct {
    ID          int64           `json:"id"`
    Title       string          `json:"title"`
    Price       decimal.Decimal `json:"price"`
    Category    string          `json:"category"`
    Brand       string          `json:"brand"`
    Image       string          `json:"image"`
    Description string          `json:"description"`
    Tags        []string        `json:"tags"`
    Rating      FeedRating      `json:"rating"`
    ProPlayer   string          `json:"proPlayer,omitempty"`
    AdminAdded  bool            `json:"isAdminAdded"`
}

// HasTag reports whether tag is among the stored tags.
func (p Product) HasTag(tag string) bool {
    for _, t := range p.Tags {
        if t == tag {
            return true
        }
    }
    return false
}
