package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/queue"
	"github.com/iliyamo/progear-storefront/internal/repository"
	"github.com/iliyamo/progear-storefront/internal/utils"
	"github.com/iliyamo/progear-storefront/internal/validate"
)

// DeliveryWindow is added to the checkout time to estimate delivery.
const DeliveryWindow = 3 * 24 * time.Hour

// Checkout is the shopper-supplied part of an order.
type Checkout struct {
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod" validate:"required"`
	Address       string `json:"address" form:"address" validate:"required"`
}

// Dashboard summarises the store for admins. Revenue excludes cancelled orders.
type Dashboard struct {
	TotalProducts int             `json:"totalProducts"`
	TotalOrders   int             `json:"totalOrders"`
	TotalUsers    int             `json:"totalUsers"`
	Revenue       decimal.Decimal `json:"revenue"`
	PendingOrders int             `json:"pendingOrders"`
}

// Export kinds.
const (
	ExportUsers  = "users"
	ExportOrders = "orders"
)

// Ledger places, lists, cancels and administers orders.
type Ledger struct {
	orders   *repository.OrderRepo
	carts    *repository.CartRepo
	products *repository.ProductRepo
	users    *repository.UserRepo
	events   queue.Publisher
	validate *validator.Validate
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewLedger wires the order ledger. A nil publisher disables order events.
func NewLedger(orders *repository.OrderRepo, carts *repository.CartRepo, products *repository.ProductRepo,
	users *repository.UserRepo, events queue.Publisher, log logrus.FieldLogger) *Ledger {
	if orders == nil || carts == nil || products == nil || users == nil {
		panic("nil repository passed to service.NewLedger")
	}
	if events == nil {
		events = queue.NopPublisher{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Ledger{
		orders:   orders,
		carts:    carts,
		products: products,
		users:    users,
		events:   events,
		validate: validate.New(),
		log:      log,
		now:      time.Now,
	}
}

// Create turns the session's cart into a pending order. Product data is copied
// by value so later catalog edits do not change the order. Lines whose product
// no longer exists are dropped. Afterwards the lines that were read are taken
// out of the cart, and an order.placed event is published on a best-effort
// basis.
func (l *Ledger) Create(ctx context.Context, s *model.Session, in Checkout) (model.Order, error) {
	if !s.IsLoggedIn() {
		return model.Order{}, ErrOrderLoginRequired
	}
	lines := l.carts.Lines(ctx, s.UserID)
	if len(lines) == 0 {
		return model.Order{}, ErrEmptyCart
	}
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.Address = strings.TrimSpace(in.Address)
	if err := l.validate.Struct(in); err != nil {
		return model.Order{}, ErrInvalidCheckout
	}

	items := make([]model.OrderLine, 0, len(lines))
	total := decimal.Zero
	for _, cl := range lines {
		p, err := l.products.GetByID(ctx, cl.ProductID)
		if err != nil {
			l.log.WithFields(logrus.Fields{"user_id": s.UserID, "product_id": cl.ProductID}).Warn("orders: dropping cart line for missing product")
			continue
		}
		items = append(items, model.OrderLine{
			ProductID: p.ID,
			Title:     p.Title,
			Image:     p.Image,
			Quantity:  cl.Quantity,
			Price:     p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(cl.Quantity))))
	}
	if len(items) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	now := l.now().UTC()
	o := model.Order{
		OrderID:           utils.NewID("order"),
		UserID:            s.UserID,
		UserName:          s.Name,
		UserEmail:         s.Email,
		Products:          items,
		TotalAmount:       total,
		PaymentMethod:     in.PaymentMethod,
		Address:           in.Address,
		OrderStatus:       model.OrderPending,
		EstimatedDelivery: now.Add(DeliveryWindow),
		CreatedAt:         now,
	}
	if err := l.orders.Prepend(ctx, o); err != nil {
		return model.Order{}, err
	}
	err := l.carts.Mutate(ctx, s.UserID, func(cur []model.CartLine) ([]model.CartLine, error) {
		return subtractLines(cur, lines), nil
	})
	if err != nil {
		l.log.WithError(err).WithField("order_id", o.OrderID).Error("orders: cart clear failed after checkout")
	}
	l.log.WithFields(logrus.Fields{"order_id": o.OrderID, "user_id": o.UserID, "total": o.TotalAmount.StringFixed(2)}).Info("orders: order placed")
	l.publish(ctx, o)
	return o, nil
}

// subtractLines removes the quantities in taken from cur. Units added after
// taken was read stay in the cart.
func subtractLines(cur, taken []model.CartLine) []model.CartLine {
	used := make(map[int64]int, len(taken))
	for _, t := range taken {
		used[t.ProductID] += t.Quantity
	}
	out := make([]model.CartLine, 0, len(cur))
	for _, l := range cur {
		if left := l.Quantity - used[l.ProductID]; left > 0 {
			out = append(out, model.CartLine{ProductID: l.ProductID, Quantity: left})
		}
		delete(used, l.ProductID)
	}
	return out
}

func (l *Ledger) publish(ctx context.Context, o model.Order) {
	ev := queue.OrderPlacedEvent{
		OrderID:       o.OrderID,
		UserID:        o.UserID,
		UserEmail:     o.UserEmail,
		TotalAmount:   o.TotalAmount.StringFixed(2),
		PaymentMethod: o.PaymentMethod,
		PlacedAt:      o.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range o.Products {
		ev.Items += it.Quantity
		ev.ProductIDs = append(ev.ProductIDs, it.ProductID)
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := l.events.Publish(ctx, queue.OrderPlacedQueue, ev); err != nil {
		l.log.WithError(err).WithField("order_id", o.OrderID).Warn("orders: event publish failed")
	}
}

// Cancel lets the owner cancel an order that is neither delivered nor
// already cancelled.
func (l *Ledger) Cancel(ctx context.Context, s *model.Session, orderID string) (model.Order, error) {
	if !s.IsLoggedIn() {
		return model.Order{}, ErrLoginRequired
	}
	o, err := l.orders.Mutate(ctx, orderID, func(o *model.Order) error {
		if o.UserID != s.UserID {
			return ErrNotOwner
		}
		if o.OrderStatus.Terminal() {
			return ErrOrderNotCancellable
		}
		o.OrderStatus = model.OrderCancelled
		return nil
	})
	if err != nil {
		return model.Order{}, orderError(err)
	}
	l.log.WithFields(logrus.Fields{"order_id": orderID, "user_id": s.UserID}).Info("orders: order cancelled")
	return o, nil
}

// UpdateStatus sets any of the four statuses. Admins are not bound by the
// cancellation rules, so a delivered order may be reopened.
func (l *Ledger) UpdateStatus(ctx context.Context, s *model.Session, orderID string, status model.OrderStatus) (model.Order, error) {
	if !s.IsAdmin() {
		return model.Order{}, ErrAdminRequired
	}
	if !status.Valid() {
		return model.Order{}, ErrInvalidStatus
	}
	o, err := l.orders.Mutate(ctx, orderID, func(o *model.Order) error {
		o.OrderStatus = status
		return nil
	})
	if err != nil {
		return model.Order{}, orderError(err)
	}
	l.log.WithFields(logrus.Fields{"order_id": orderID, "status": status, "admin": s.Email}).Info("orders: status updated")
	return o, nil
}

func orderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// ListForUser returns the session's orders, newest first.
func (l *Ledger) ListForUser(ctx context.Context, s *model.Session) []model.Order {
	if !s.IsLoggedIn() {
		return []model.Order{}
	}
	return l.orders.ListByUser(ctx, s.UserID)
}

// ListAll returns every order, newest first.
func (l *Ledger) ListAll(ctx context.Context, s *model.Session) ([]model.Order, error) {
	if !s.IsAdmin() {
		return nil, ErrAdminRequired
	}
	return l.orders.List(ctx), nil
}

// Get returns an order visible to the session: its own, or any for admins.
func (l *Ledger) Get(ctx context.Context, s *model.Session, orderID string) (model.Order, error) {
	if !s.IsLoggedIn() {
		return model.Order{}, ErrLoginRequired
	}
	o, err := l.orders.GetByID(ctx, orderID)
	if err != nil {
		return model.Order{}, orderError(err)
	}
	if o.UserID != s.UserID && !s.IsAdmin() {
		return model.Order{}, ErrNotOwner
	}
	return o, nil
}

func (l *Ledger) Dashboard(ctx context.Context, s *model.Session) (Dashboard, error) {
	if !s.IsAdmin() {
		return Dashboard{}, ErrAdminRequired
	}
	orders := l.orders.List(ctx)
	d := Dashboard{
		TotalProducts: l.products.Count(ctx),
		TotalOrders:   len(orders),
		TotalUsers:    l.users.Count(ctx),
		Revenue:       decimal.Zero,
	}
	for _, o := range orders {
		if o.OrderStatus != model.OrderCancelled {
			d.Revenue = d.Revenue.Add(o.TotalAmount)
		}
		if o.OrderStatus == model.OrderPending {
			d.PendingOrders++
		}
	}
	return d, nil
}

// ExportedUser is a user record without its password hash.
type ExportedUser struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Export returns the users or orders collection as indented JSON, along with
// the download file name.
func (l *Ledger) Export(ctx context.Context, s *model.Session, kind string) (string, []byte, error) {
	if !s.IsAdmin() {
		return "", nil, ErrAdminRequired
	}
	var data any
	switch kind {
	case ExportUsers:
		users := []ExportedUser{}
		for _, u := range l.users.List(ctx) {
			users = append(users, ExportedUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt})
		}
		data = users
	case ExportOrders:
		data = l.orders.List(ctx)
	default:
		return "", nil, ErrInvalidExport
	}
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", nil, err
	}
	l.log.WithFields(logrus.Fields{"kind": kind, "admin": s.Email}).Info("orders: data exported")
	return kind + ".json", body, nil
}
