package middleware

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/progear-storefront/internal/model"
)

// CurrentSession returns the session resolved by Session, or nil for
// anonymous requests.
func CurrentSession(c echo.Context) *model.Session {
    if s, ok := c.Get("session").(*model.Session); ok {
        return s
    }
    return nil
}

// userID identifies the caller for rate-limit keys. Anonymous callers share
// the "guest" bucket per IP.
func userID(c echo.Context) string {
    if v, ok := c.Get("user_id").(string); ok && v != "" {
        return v
    }
    return "guest"
}
