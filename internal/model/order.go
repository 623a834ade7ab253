package model

import (
    "time"

    "github.com/shopspring/decimal"
)

// OrderStatus values. Delivered and cancelled are terminal for user-initiated
// cancellation; admins may still move an order anywhere.
type OrderStatus string

const (
    OrderPending    OrderStatus = "pending"
    OrderProcessing OrderStatus = "processing"
    OrderDelivered  OrderStatus = "delivered"
    OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
    switch s {
    case OrderPending, OrderProcessing, OrderDelivered, OrderCancelled:
        return true
    }
    return false
}

// Terminal reports whether a customer can no longer cancel.
func (s OrderStatus) Terminal() bool { return s == OrderDelivered || s == OrderCancelled }

// OrderLine is a by-value copy of a product taken at checkout so later catalog
// edits do not rewrite history.
type OrderLine struct {
    ProductID int64           `json:"productId"`
    Title     string          `json:"title"`
    Image     string          `json:"image"`
    Quantity  int             `json:"quantity"`
    Price     decimal.Decimal `json:"price"`
}

// Order is an immutable checkout record whose only mutable field is OrderStatus.
type Order struct {
    OrderID           string          `json:"orderId"`
    UserID            string          `json:"userId"`
    UserName          string          `json:"userName"`
    UserEmail         string          `json:"userEmail"`
    Products          []OrderLine     `json:"products"`
    TotalAmount       decimal.Decimal `json:"totalAmount"`
    PaymentMethod     string          `json:"paymentMethod"`
    Address           string          `json:"address"`
    OrderStatus       OrderStatus     `json:"orderStatus"`
    EstimatedDelivery time.Time       `json:"estimatedDelivery"`
    CreatedAt         time.Time       `json:"createdAt"`
}
