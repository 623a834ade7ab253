package catalog

import "github.com/iliyamo/progear-storefront/internal/model"

// Criteria narrows a listing. Empty fields do not filter. Matching is exact.
type Criteria struct {
	Category string
	Brand    string
	Tag      string
}

// Filter keeps the products matching every non-empty field of c. Tag matching
// also sees the computed top-rated tag.
func Filter(list []model.Product, c Criteria, stats StatsFunc) []model.Product {
	out := make([]model.Product, 0, len(list))
	for _, p := range list {
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.Brand != "" && p.Brand != c.Brand {
			continue
		}
		if c.Tag != "" && !hasString(DisplayTags(p, stats(p.ID)), c.Tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Facet is a distinct category or brand with its product count.
type Facet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories lists distinct categories in first-seen order.
func Categories(list []model.Product) []Facet {
	return facets(list, func(p model.Product) string { return p.Category })
}

// Brands lists distinct brands in first-seen order.
func Brands(list []model.Product) []Facet {
	return facets(list, func(p model.Product) string { return p.Brand })
}

func facets(list []model.Product, key func(model.Product) string) []Facet {
	pos := map[string]int{}
	out := []Facet{}
	for _, p := range list {
		k := key(p)
		if i, ok := pos[k]; ok {
			out[i].Count++
			continue
		}
		pos[k] = len(out)
		out = append(out, Facet{Name: k, Count: 1})
	}
	return out
}

func hasString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
