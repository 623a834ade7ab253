package catalog

import (
	"math"

	"github.com/iliyamo/progear-storefront/internal/model"
)

// Stats is the ranking summary of a product.
type Stats struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
	Score  float64 `json:"score"`
}

// TopRated reports rating >= 4.5 with at least two ratings.
func (s Stats) TopRated() bool { return s.Rating >= 4.5 && s.Count >= 2 }

// StatsFunc looks up the stats of a product by id.
type StatsFunc func(id int64) Stats

// ComputeStats prefers local reviews: rating is their mean rounded to one
// decimal and score = rating * ln(count+1) * 2. Without reviews the feed rating
// is used with score = rate * ln(count+10) so unreviewed items still rank.
func ComputeStats(p model.Product, reviews []model.Review) Stats {
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		rating := math.Round(float64(sum)/float64(len(reviews))*10) / 10
		count := len(reviews)
		return Stats{Rating: rating, Count: count, Score: rating * math.Log(float64(count)+1) * 2}
	}
	rate, count := p.Rating.Rate, p.Rating.Count
	return Stats{Rating: rate, Count: count, Score: rate * math.Log(float64(count)+10)}
}

// StatsIndex computes stats for every product in one pass.
func StatsIndex(products []model.Product, reviews map[int64][]model.Review) StatsFunc {
	idx := make(map[int64]Stats, len(products))
	for _, p := range products {
		idx[p.ID] = ComputeStats(p, reviews[p.ID])
	}
	return func(id int64) Stats { return idx[id] }
}

// DisplayTags returns the stored tags plus the computed top-rated tag.
func DisplayTags(p model.Product, st Stats) []string {
	tags := append([]string(nil), p.Tags...)
	if st.TopRated() {
		tags = append(tags, model.TagTopRated)
	}
	return tags
}
