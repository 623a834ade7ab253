// Package handler exposes the storefront over HTTP. Every /v1 endpoint serves
// two kinds of caller: API clients get JSON, and the HTML forms rendered by
// the view package get a 303 back to the page they came from with the
// outcome in a "notice" query parameter.
package handler

import (
    "context"
    "errors"
    "net/http"
    "net/url"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/auth"
    "github.com/iliyamo/progear-storefront/internal/catalog"
    "github.com/iliyamo/progear-storefront/internal/i18n"
    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/repository"
    "github.com/iliyamo/progear-storefront/internal/service"
)

const msgInternal = "Something went wrong, please try again"

// fromForm reports whether the request was submitted by an HTML form rather
// than an API client.
func fromForm(c echo.Context) bool { return middleware.WantsHTML(c) }

// safePath accepts only same-origin absolute paths.
func safePath(p string) bool {
    return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

// backTo picks where a form submission returns to: an explicit "next" field,
// then the Referer when it points at this host, then def.
func backTo(c echo.Context, def string) string {
    if next := c.FormValue("next"); safePath(next) {
        return next
    }
    if ref := c.Request().Referer(); ref != "" {
        if u, err := url.Parse(ref); err == nil && (u.Host == "" || u.Host == c.Request().Host) && safePath(u.Path) {
            q := u.Query()
            q.Del("notice")
            u.RawQuery = q.Encode()
            return u.RequestURI()
        }
    }
    return def
}

// withNotice sets the notice query parameter on path.
func withNotice(path, notice string) string {
    u, err := url.Parse(path)
    if err != nil {
        return path
    }
    q := u.Query()
    if notice == "" {
        q.Del("notice")
    } else {
        q.Set("notice", notice)
    }
    u.RawQuery = q.Encode()
    return u.RequestURI()
}

// loginURL is the login page that returns to next afterwards.
func loginURL(next string) string {
    return "/login?" + url.Values{"next": {next}}.Encode()
}

// reply finishes a successful request: JSON with status for API clients, a
// redirect to back carrying notice for forms.
func reply(c echo.Context, status int, body any, back, notice string) error {
    if fromForm(c) {
        return c.Redirect(http.StatusSeeOther, withNotice(back, notice))
    }
    if body == nil {
        return c.NoContent(status)
    }
    return c.JSON(status, body)
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
    switch {
    case errors.Is(err, auth.ErrLoginRequired), errors.Is(err, service.ErrOrderLoginRequired),
        errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrWrongPassword):
        return http.StatusUnauthorized
    case errors.Is(err, auth.ErrAdminRequired), errors.Is(err, service.ErrNotOwner),
        errors.Is(err, repository.ErrForbidden):
        return http.StatusForbidden
    case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrOrderNotFound),
        errors.Is(err, repository.ErrProductNotFound), errors.Is(err, repository.ErrOrderNotFound):
        return http.StatusNotFound
    case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, service.ErrOrderNotCancellable),
        errors.Is(err, repository.ErrConflict):
        return http.StatusConflict
    case errors.Is(err, catalog.ErrInvalidProduct), service.IsUserFacing(err):
        return http.StatusBadRequest
    }
    return http.StatusInternalServerError
}

// messageFor returns the text shown to the caller. Internal failures get a
// generic message.
func messageFor(err error) string {
    switch {
    case errors.Is(err, repository.ErrProductNotFound):
        return service.ErrProductNotFound.Error()
    case errors.Is(err, repository.ErrOrderNotFound):
        return service.ErrOrderNotFound.Error()
    case errors.Is(err, repository.ErrConflict):
        return "Please try again"
    case errors.Is(err, repository.ErrForbidden):
        return service.ErrNotOwner.Error()
    case errors.Is(err, catalog.ErrInvalidProduct), service.IsUserFacing(err):
        return err.Error()
    }
    return msgInternal
}

// fail reports err. Forms go back with the message as notice; anonymous form
// posts that need a login are sent to the login page instead.
func fail(c echo.Context, log logrus.FieldLogger, err error, back string) error {
    status := statusFor(err)
    msg := messageFor(err)
    if status == http.StatusInternalServerError {
        log.WithError(err).WithFields(logrus.Fields{
            "method": c.Request().Method,
            "path":   c.Request().URL.Path,
        }).Error("handler: request failed")
    }
    if fromForm(c) {
        if status == http.StatusUnauthorized && !errors.Is(err, auth.ErrUserNotFound) && !errors.Is(err, auth.ErrWrongPassword) {
            return c.Redirect(http.StatusSeeOther, withNotice(loginURL(back), msg))
        }
        return c.Redirect(http.StatusSeeOther, withNotice(back, msg))
    }
    return c.JSON(status, echo.Map{"error": msg})
}

// badRequest answers malformed input that never reached a service.
func badRequest(c echo.Context, msg, back string) error {
    if fromForm(c) {
        return c.Redirect(http.StatusSeeOther, withNotice(back, msg))
    }
    return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

// translate renders a success notice in the storefront language.
func translate(ctx context.Context, settings *service.Settings, key string) string {
    return i18n.T(settings.Get(ctx).Language, key)
}

func catalogChanged(ctx context.Context, log logrus.FieldLogger, hook func(context.Context) error) {
    if hook == nil {
        return
    }
    if err := hook(ctx); err != nil {
        log.WithError(err).Warn("handler: catalog change hook failed")
    }
}
