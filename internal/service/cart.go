package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
)

// CartItem is a cart line joined with its current product.
type CartItem struct {
	Product  model.Product   `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// MaxLineQuantity caps the units of one product in a cart.
const MaxLineQuantity = 99

// Cart manages the per-user shopping cart.
type Cart struct {
	carts    *repository.CartRepo
	products *repository.ProductRepo
	log      logrus.FieldLogger
}

func NewCart(carts *repository.CartRepo, products *repository.ProductRepo, log logrus.FieldLogger) *Cart {
	if carts == nil || products == nil {
		panic("nil repository passed to service.NewCart")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cart{carts: carts, products: products, log: log}
}

// AddItem adds qty units of a product, merging with an existing line. A zero
// qty means one unit. A merge that would pass MaxLineQuantity is rejected.
func (c *Cart) AddItem(ctx context.Context, s *model.Session, productID int64, qty int) error {
	if !s.IsLoggedIn() {
		return ErrLoginRequired
	}
	if qty == 0 {
		qty = 1
	}
	if qty < 0 || qty > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	if _, err := c.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	err := c.carts.Mutate(ctx, s.UserID, func(lines []model.CartLine) ([]model.CartLine, error) {
		for i := range lines {
			if lines[i].ProductID == productID {
				if qty > MaxLineQuantity-lines[i].Quantity {
					return nil, ErrInvalidQuantity
				}
				lines[i].Quantity += qty
				return lines, nil
			}
		}
		return append(lines, model.CartLine{ProductID: productID, Quantity: qty}), nil
	})
	if err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{"user_id": s.UserID, "product_id": productID, "qty": qty}).Debug("cart: item added")
	return nil
}

// RemoveItem drops the product's line. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(ctx context.Context, s *model.Session, productID int64) error {
	if !s.IsLoggedIn() {
		return ErrLoginRequired
	}
	return c.carts.Mutate(ctx, s.UserID, func(lines []model.CartLine) ([]model.CartLine, error) {
		return dropLine(lines, productID), nil
	})
}

// UpdateQuantity sets the product's quantity. Anything below 1 removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, s *model.Session, productID int64, qty int) error {
	if !s.IsLoggedIn() {
		return ErrLoginRequired
	}
	if qty > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	return c.carts.Mutate(ctx, s.UserID, func(lines []model.CartLine) ([]model.CartLine, error) {
		if qty < 1 {
			return dropLine(lines, productID), nil
		}
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Quantity = qty
			}
		}
		return lines, nil
	})
}

func dropLine(lines []model.CartLine, productID int64) []model.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}

// Lines returns the raw cart lines in insertion order.
func (c *Cart) Lines(ctx context.Context, s *model.Session) []model.CartLine {
	if !s.IsLoggedIn() {
		return []model.CartLine{}
	}
	return c.carts.Lines(ctx, s.UserID)
}

// Items joins the cart with the catalog. Lines whose product has been deleted
// are skipped.
func (c *Cart) Items(ctx context.Context, s *model.Session) []CartItem {
	out := []CartItem{}
	for _, l := range c.Lines(ctx, s) {
		p, err := c.products.GetByID(ctx, l.ProductID)
		if err != nil {
			continue
		}
		out = append(out, CartItem{
			Product:  p,
			Quantity: l.Quantity,
			Subtotal: p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return out
}

// Count is the sum of quantities, shown on the nav badge.
func (c *Cart) Count(ctx context.Context, s *model.Session) int {
	n := 0
	for _, l := range c.Lines(ctx, s) {
		n += l.Quantity
	}
	return n
}

// Total is the sum of price times quantity at current catalog prices.
func (c *Cart) Total(ctx context.Context, s *model.Session) decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items(ctx, s) {
		total = total.Add(it.Subtotal)
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context, s *model.Session) error {
	if !s.IsLoggedIn() {
		return ErrLoginRequired
	}
	return c.carts.Clear(ctx, s.UserID)
}
