package model

import "time"

// Review is a product comment. UserID holds the author's email, User the display
// name. Reviews are append-only.
type Review struct {
    ID        string    `json:"id"`
    ProductID int64     `json:"productId"`
    UserID    string    `json:"userId"`
    User      string    `json:"user"`
    Rating    int       `json:"rating"`
    Comment   string    `json:"comment"`
    Date      time.Time `json:"date"`
}
