package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/model"
)

// Navigator renders the page behind a request URI for a session. denied is
// set when the session may not open the page; markup then holds the access
// prompt.
type Navigator interface {
    NavigateURI(ctx context.Context, uri string, s *model.Session) (markup string, denied bool, err error)
}

// PageHandler serves every HTML page through the navigator.
type PageHandler struct {
    Nav Navigator
    Log logrus.FieldLogger
}

func NewPageHandler(nav Navigator, log logrus.FieldLogger) *PageHandler {
    if nav == nil {
        panic("nil navigator passed to NewPageHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &PageHandler{Nav: nav, Log: log}
}

// Show renders the requested page. Anonymous callers of a protected page are
// redirected to the login page, which returns them here afterwards; logged-in
// callers without the right role get the access-denied prompt with 403. The
// address bar therefore always matches the content.
func (h *PageHandler) Show(c echo.Context) error {
    s := middleware.CurrentSession(c)
    uri := c.Request().URL.RequestURI()
    markup, denied, err := h.Nav.NavigateURI(c.Request().Context(), uri, s)
    if err != nil {
        h.Log.WithError(err).WithField("uri", uri).Error("page: render failed")
        return c.String(http.StatusInternalServerError, msgInternal)
    }
    if denied {
        if !s.IsLoggedIn() {
            return c.Redirect(http.StatusSeeOther, loginURL(withNotice(uri, "")))
        }
        return c.HTML(http.StatusForbidden, markup)
    }
    return c.HTML(http.StatusOK, markup)
}
