package handler

import (
    "context"  // provides context with cancellation for store calls
    "net/http" // HTTP status codes and primitives
    "net/url"  // query building for the return address
    "time"     // timeouts and token expiry

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/auth"
    "github.com/iliyamo/progear-storefront/internal/middleware"
    "github.com/iliyamo/progear-storefront/internal/model"
    "github.com/iliyamo/progear-storefront/internal/service"
    "github.com/iliyamo/progear-storefront/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Auth     *auth.Service
    Settings *service.Settings
    Secret   string
    Log      logrus.FieldLogger
}

func NewAuthHandler(a *auth.Service, settings *service.Settings, secret string, log logrus.FieldLogger) *AuthHandler {
    if a == nil || settings == nil {
        panic("nil service passed to NewAuthHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &AuthHandler{Auth: a, Settings: settings, Secret: secret, Log: log}
}

// ----- DTOs -----

type registerReq struct {
    Name     string `json:"name" form:"name"`
    Email    string `json:"email" form:"email"`
    Password string `json:"password" form:"password"`
    Next     string `json:"next" form:"next"`
}
type loginReq struct {
    Email    string `json:"email" form:"email"`
    Password string `json:"password" form:"password"`
    Next     string `json:"next" form:"next"`
}

type userPart struct {
    ID    string     `json:"id"`
    Name  string     `json:"name"`
    Email string     `json:"email"`
    Role  model.Role `json:"role"`
}
type sessionResp struct {
    User    userPart  `json:"user"`
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

func nextOr(next, def string) string {
    if safePath(next) {
        return next
    }
    return def
}

// Register: create the account, log it in and set the session cookie.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", "/login?mode=register")
    }
    q := url.Values{"mode": {"register"}}
    if safePath(req.Next) {
        q.Set("next", req.Next)
    }
    back := "/login?" + q.Encode()

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    sess, err := h.Auth.Register(ctx, req.Name, req.Email, req.Password)
    if err != nil {
        return fail(c, h.Log, err, back)
    }
    return h.issue(c, sess, http.StatusCreated, nextOr(req.Next, "/"), h.note(ctx, "registrationSuccessful"))
}

// Login: verify credentials and start a session.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", "/login")
    }
    back := "/login"
    if safePath(req.Next) {
        back = loginURL(req.Next)
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    sess, err := h.Auth.Login(ctx, req.Email, req.Password)
    if err != nil {
        return fail(c, h.Log, err, back)
    }
    notice := h.note(ctx, "welcomeBack")
    if sess.IsAdmin() {
        notice = h.note(ctx, "welcomeAdmin")
    }
    return h.issue(c, sess, http.StatusOK, nextOr(req.Next, "/"), notice)
}

// Logout ends the current session, if any, and clears the cookie. It is
// idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if s := middleware.CurrentSession(c); s != nil {
        if err := h.Auth.Logout(ctx, s.ID); err != nil {
            return fail(c, h.Log, err, "/")
        }
    }
    c.SetCookie(middleware.ExpiredSessionCookie())
    return reply(c, http.StatusNoContent, nil, "/", h.note(ctx, "loggedOut"))
}

// Me returns the logged-in user.
func (h *AuthHandler) Me(c echo.Context) error {
    s := middleware.CurrentSession(c)
    if s == nil {
        return fail(c, h.Log, auth.ErrLoginRequired, "/")
    }
    return c.JSON(http.StatusOK, echo.Map{
        "user":    userPart{ID: s.UserID, Name: s.Name, Email: s.Email, Role: s.Role},
        "expires": s.ExpiresAt,
    })
}

func (h *AuthHandler) issue(c echo.Context, sess model.Session, status int, next, notice string) error {
    tok, err := utils.NewSessionToken(h.Secret, sess.ID, sess.UserID, string(sess.Role), time.Until(sess.ExpiresAt))
    if err != nil {
        return fail(c, h.Log, err, "/login")
    }
    c.SetCookie(middleware.NewSessionCookie(tok))
    return reply(c, status, sessionResp{
        User:    userPart{ID: sess.UserID, Name: sess.Name, Email: sess.Email, Role: sess.Role},
        Token:   tok.Token,
        Expires: tok.Exp,
    }, next, notice)
}

func (h *AuthHandler) note(ctx context.Context, key string) string {
    return translate(ctx, h.Settings, key)
}
