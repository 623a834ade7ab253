package handler

import (
    "github.com/go-playground/validator/v10"

    "github.com/iliyamo/progear-storefront/internal/validate"
)

// RequestValidator plugs the shared validator into echo so handlers can call
// c.Validate on their DTOs.
type RequestValidator struct {
    v *validator.Validate
}

func NewRequestValidator() *RequestValidator { return &RequestValidator{v: validate.New()} }

func (r *RequestValidator) Validate(i any) error { return r.v.Struct(i) }
