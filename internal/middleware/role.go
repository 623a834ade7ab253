package middleware

import (
    "net/http"
    "net/url"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/progear-storefront/internal/auth"
    "github.com/iliyamo/progear-storefront/internal/model"
)

// WantsHTML reports whether the caller is a browser submitting an HTML form
// (or following a link) rather than an API client sending JSON.
func WantsHTML(c echo.Context) bool {
    r := c.Request()
    ct := r.Header.Get(echo.HeaderContentType)
    if strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm) {
        return true
    }
    if strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
        return false
    }
    return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

// RequireLogin rejects anonymous callers. API clients get 401; browsers are
// sent to the login page, which returns them to the page they came from.
func RequireLogin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if CurrentSession(c).IsLoggedIn() {
                return next(c)
            }
            if WantsHTML(c) {
                q := url.Values{"next": {refererPath(c)}, "notice": {auth.ErrLoginRequired.Error()}}
                return c.Redirect(http.StatusSeeOther, "/login?"+q.Encode())
            }
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": auth.ErrLoginRequired.Error()})
        }
    }
}

// refererPath is the same-host page the request came from, or "/".
func refererPath(c echo.Context) string {
    u, err := url.Parse(c.Request().Referer())
    if err != nil || (u.Host != "" && u.Host != c.Request().Host) ||
        !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
        return "/"
    }
    return u.Path
}

// RequireRole allows the request only when the session role is one of roles.
// Anonymous callers are handled as in RequireLogin; logged-in callers with
// another role get 403, or a redirect home with a notice for browsers.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    allowed := map[model.Role]struct{}{}
    for _, r := range roles {
        allowed[r] = struct{}{}
    }
    login := RequireLogin()
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        gated := func(c echo.Context) error {
            if _, ok := allowed[CurrentSession(c).Role]; ok {
                return next(c)
            }
            if WantsHTML(c) {
                return c.Redirect(http.StatusSeeOther, "/?"+url.Values{"notice": {auth.ErrAdminRequired.Error()}}.Encode())
            }
            return c.JSON(http.StatusForbidden, echo.Map{"error": auth.ErrAdminRequired.Error()})
        }
        return login(gated)
    }
}
