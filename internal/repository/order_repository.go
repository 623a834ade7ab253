package repository

import (
	"context"

	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/model"
)

// OrderRepo owns the `orders` key. Orders are kept newest first; the order of
// the stored sequence is the display order.
type OrderRepo struct{ store *kvstore.Store }

func NewOrderRepo(s *kvstore.Store) *OrderRepo { return &OrderRepo{store: s} }

// Prepend stores o ahead of every existing order.
func (r *OrderRepo) Prepend(ctx context.Context, o model.Order) error {
	err := kvstore.Update(ctx, r.store, KeyOrders, func(list *[]model.Order) error {
		*list = append([]model.Order{o}, *list...)
		return nil
	})
	return conflict(err)
}

// List returns all orders, newest first.
func (r *OrderRepo) List(ctx context.Context) []model.Order {
	return kvstore.Get(ctx, r.store, KeyOrders, []model.Order{})
}

// ListByUser returns the orders placed by userID, newest first.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) []model.Order {
	out := []model.Order{}
	for _, o := range r.List(ctx) {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// GetByID fetches one order.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (model.Order, error) {
	for _, o := range r.List(ctx) {
		if o.OrderID == id {
			return o, nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

// Mutate applies fn to the stored order in place and returns the result. fn
// returning an error leaves the order untouched.
func (r *OrderRepo) Mutate(ctx context.Context, id string, fn func(*model.Order) error) (model.Order, error) {
	var out model.Order
	err := kvstore.Update(ctx, r.store, KeyOrders, func(list *[]model.Order) error {
		for i := range *list {
			if (*list)[i].OrderID != id {
				continue
			}
			o := (*list)[i]
			if err := fn(&o); err != nil {
				return err
			}
			(*list)[i] = o
			out = o
			return nil
		}
		return ErrOrderNotFound
	})
	return out, conflict(err)
}
