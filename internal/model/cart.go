package model

// CartLine is one product in a user's cart. Quantity is always at least 1:
// lowering it below 1 removes the line instead.
type CartLine struct {
    ProductID int64 `json:"productId"`
    Quantity  int   `json:"quantity"`
}
