package utils

import "github.com/google/uuid"

// NewID returns prefix_<uuid>, e.g. "order_6f1c...".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
