package catalog

import (
	"strings"

	"github.com/iliyamo/progear-storefront/internal/model"
)

// SuggestLimit caps the search dropdown.
const SuggestLimit = 8

// Search returns products whose title, brand, category or description contains
// query, ignoring case. A blank query matches nothing.
func Search(list []model.Product, query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []model.Product{}
	if q == "" {
		return out
	}
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Suggest returns at most SuggestLimit search results.
func Suggest(list []model.Product, query string) []model.Product {
	res := Search(list, query)
	if len(res) > SuggestLimit {
		res = res[:SuggestLimit]
	}
	return res
}
