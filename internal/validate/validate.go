// Package validate wires go-playground/validator with the storefront's custom tags.
package validate

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

// emailPattern accepts anything shaped like local@domain.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// New returns the shared validator with the basic_email and bcrypt_len tags
// registered.
func New() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
			return Email(fl.Field().String())
		})
		// max= counts runes; bcrypt's limit is in bytes
		_ = v.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= MaxPasswordBytes
		})
		instance = v
	})
	return instance
}

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool { return emailPattern.MatchString(s) }

// FailedTags maps each failing struct field to the tag that rejected it.
func FailedTags(err error) map[string]string {
	out := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
