package middleware

import (
    "context"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/model"
    "github.com/iliyamo/progear-storefront/internal/utils"
)

// SessionCookie is the cookie that carries the signed session token.
const SessionCookie = "progear_session"

// SessionResolver turns a session id into the stored session. A missing or
// expired session is reported as nil with no error.
type SessionResolver interface {
    Current(ctx context.Context, sessionID string) (*model.Session, error)
}

// Session resolves the caller's session from the session cookie or from an
// "Authorization: Bearer <token>" header. It never rejects a request: an
// absent, forged or expired token leaves the request anonymous, and the
// gates in role.go decide what anonymous callers may do.
//
// On success it stores the *model.Session under "session" plus the
// "user_id" and "role" keys used by the limiter and the access log.
func Session(secret string, sessions SessionResolver, log logrus.FieldLogger) echo.MiddlewareFunc {
    if log == nil {
        log = logrus.StandardLogger()
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            raw := tokenFrom(c)
            if raw == "" {
                return next(c)
            }
            claims, err := utils.ParseSessionToken(secret, raw)
            if err != nil {
                clearStaleCookie(c)
                return next(c)
            }
            sess, err := sessions.Current(c.Request().Context(), claims.SessionID)
            if err != nil {
                log.WithError(err).WithField("session_id", claims.SessionID).Warn("session: lookup failed")
                return next(c)
            }
            if sess == nil {
                clearStaleCookie(c)
                return next(c)
            }
            c.Set("session", sess)
            c.Set("user_id", sess.UserID)
            c.Set("role", string(sess.Role))
            return next(c)
        }
    }
}

func tokenFrom(c echo.Context) string {
    if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
        return ck.Value
    }
    h := c.Request().Header.Get(echo.HeaderAuthorization)
    if strings.HasPrefix(h, "Bearer ") {
        return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
    }
    return ""
}

func clearStaleCookie(c echo.Context) {
    if _, err := c.Cookie(SessionCookie); err != nil {
        return
    }
    c.SetCookie(ExpiredSessionCookie())
}

// NewSessionCookie wraps a signed token for the browser.
func NewSessionCookie(tok utils.SessionToken) *http.Cookie {
    return &http.Cookie{
        Name:     SessionCookie,
        Value:    tok.Token,
        Path:     "/",
        Expires:  tok.Exp,
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    }
}

// ExpiredSessionCookie deletes the session cookie on the client.
func ExpiredSessionCookie() *http.Cookie {
    return &http.Cookie{
        Name:     SessionCookie,
        Value:    "",
        Path:     "/",
        MaxAge:   -1,
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    }
}
