package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
	"github.com/iliyamo/progear-storefront/internal/utils"
)

// Reviews stores product reviews. A review is attributed to the author's
// email and display name; reviews are never edited.
type Reviews struct {
	reviews  *repository.ReviewRepo
	products *repository.ProductRepo
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewReviews(reviews *repository.ReviewRepo, products *repository.ProductRepo, log logrus.FieldLogger) *Reviews {
	if reviews == nil || products == nil {
		panic("nil repository passed to service.NewReviews")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reviews{reviews: reviews, products: products, log: log, now: time.Now}
}

// Add appends a review with rating 1..5.
func (r *Reviews) Add(ctx context.Context, s *model.Session, productID int64, rating int, comment string) (model.Review, error) {
	if !s.IsLoggedIn() {
		return model.Review{}, ErrLoginRequired
	}
	if rating < 1 || rating > 5 {
		return model.Review{}, ErrInvalidReview
	}
	if _, err := r.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.Review{}, ErrProductNotFound
		}
		return model.Review{}, err
	}
	rv := model.Review{
		ID:        utils.NewID("review"),
		ProductID: productID,
		UserID:    s.Email,
		User:      s.Name,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Date:      r.now().UTC(),
	}
	if err := r.reviews.Append(ctx, rv); err != nil {
		return model.Review{}, err
	}
	r.log.WithFields(logrus.Fields{"product_id": productID, "user_id": s.UserID, "rating": rating}).Info("reviews: review added")
	return rv, nil
}

// List returns the product's reviews, newest first.
func (r *Reviews) List(ctx context.Context, productID int64) []model.Review {
	list := r.reviews.ByProduct(ctx, productID)
	if list == nil {
		return []model.Review{}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list
}
