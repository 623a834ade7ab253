// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names. Both queues are durable.
const (
    OrderPlacedQueue    = "order.placed"
    UserRegisteredQueue = "user.registered"
)

// OrderPlacedEvent is published after checkout. It carries enough for
// downstream consumers to log or notify without reading the store.
type OrderPlacedEvent struct {
    OrderID       string  `json:"order_id"`
    UserID        string  `json:"user_id"`
    UserEmail     string  `json:"user_email"`
    Items         int     `json:"items"`
    ProductIDs    []int64 `json:"product_ids"`
    TotalAmount   string  `json:"total_amount"`
    PaymentMethod string  `json:"payment_method"`
    PlacedAt      string  `json:"placed_at"`
}

// UserRegisteredEvent is published when a new account is created.
type UserRegisteredEvent struct {
    UserID       string `json:"user_id"`
    Name         string `json:"name"`
    Email        string `json:"email"`
    RegisteredAt string `json:"registered_at"`
}
