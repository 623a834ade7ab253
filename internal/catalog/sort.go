package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/iliyamo/progear-storefront/internal/model"
)

// SortMode selects a listing order.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortRating    SortMode = "rating"
	SortNewest    SortMode = "newest"
	SortName      SortMode = "name"
)

// ParseSortMode maps a query value onto a SortMode. Unknown values use the default order.
func ParseSortMode(s string) SortMode {
	switch m := SortMode(s); m {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortName:
		return m
	}
	return SortDefault
}

// Sort returns a sorted copy of list. The sort is stable, so ties keep their
// input order. The default order puts top-rated items first, then items
// tagged "new", then everything else by descending score.
func Sort(list []model.Product, mode SortMode, stats StatsFunc) []model.Product {
	out := append([]model.Product(nil), list...)
	cached := make(map[int64]Stats, len(out))
	st := func(id int64) Stats {
		s, ok := cached[id]
		if !ok {
			s = stats(id)
			cached[id] = s
		}
		return s
	}

	var less func(a, b model.Product) bool
	switch mode {
	case SortPriceLow:
		less = func(a, b model.Product) bool { return a.Price.LessThan(b.Price) }
	case SortPriceHigh:
		less = func(a, b model.Product) bool { return a.Price.GreaterThan(b.Price) }
	case SortRating:
		less = func(a, b model.Product) bool { return st(a.ID).Score > st(b.ID).Score }
	case SortNewest:
		less = func(a, b model.Product) bool { return a.ID > b.ID }
	case SortName:
		col := collate.New(language.English)
		less = func(a, b model.Product) bool { return col.CompareString(a.Title, b.Title) < 0 }
	default:
		less = func(a, b model.Product) bool {
			sa, sb := st(a.ID), st(b.ID)
			if ta, tb := sa.TopRated(), sb.TopRated(); ta != tb {
				return ta
			}
			if na, nb := a.HasTag(model.TagNew), b.HasTag(model.TagNew); na != nb {
				return na
			}
			return sa.Score > sb.Score
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
