package auth

import "errors"

// Validation failures. The messages are shown to the user verbatim.
var (
	ErrFieldsRequired      = errors.New("All fields are required")
	ErrInvalidEmail        = errors.New("Invalid email address")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters")
	ErrPasswordTooLong     = errors.New("Password must be at most 72 bytes")
	ErrEmailTaken          = errors.New("Email already registered")
	ErrCredentialsRequired = errors.New("Email and password are required")
	ErrUserNotFound        = errors.New("User not found")
	ErrWrongPassword       = errors.New("Wrong password")
)

// IsUserFacing reports whether err carries a message meant for the end user.
func IsUserFacing(err error) bool {
	for _, e := range []error{
		ErrFieldsRequired, ErrInvalidEmail, ErrPasswordTooShort, ErrPasswordTooLong, ErrEmailTaken,
		ErrCredentialsRequired, ErrUserNotFound, ErrWrongPassword,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// Authorization failures shared by every gated operation.
var (
	ErrLoginRequired = errors.New("Please login to continue")
	ErrAdminRequired = errors.New("Admin access required")
)
