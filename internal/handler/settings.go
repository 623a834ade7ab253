package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/progear-storefront/internal/service"
)

// SettingsHandler serves the storefront preferences.
type SettingsHandler struct {
    Settings *service.Settings
    Log      logrus.FieldLogger
}

func NewSettingsHandler(settings *service.Settings, log logrus.FieldLogger) *SettingsHandler {
    if settings == nil {
        panic("nil service passed to NewSettingsHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &SettingsHandler{Settings: settings, Log: log}
}

// settingsReq fields left empty keep their stored value.
type settingsReq struct {
    Language string `json:"language" form:"language"`
    Currency string `json:"currency" form:"currency"`
    Theme    string `json:"theme" form:"theme"`
}

func optional(s string) *string {
    s = strings.TrimSpace(s)
    if s == "" {
        return nil
    }
    return &s
}

// Get returns the current preferences.
func (h *SettingsHandler) Get(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Settings.Get(c.Request().Context()))
}

// Update changes language, currency or theme.
func (h *SettingsHandler) Update(c echo.Context) error {
    back := backTo(c, "/settings")
    var req settingsReq
    if err := c.Bind(&req); err != nil {
        return badRequest(c, "invalid body", back)
    }
    ctx := c.Request().Context()
    out, err := h.Settings.Update(ctx, service.SettingsPatch{
        Language: optional(req.Language),
        Currency: optional(req.Currency),
        Theme:    optional(req.Theme),
    })
    if err != nil {
        return fail(c, h.Log, err, back)
    }
    // translated after the write so a language change answers in the new language
    return reply(c, http.StatusOK, out, back, translate(ctx, h.Settings, "settingsSaved"))
}

// ToggleTheme flips between light and dark.
func (h *SettingsHandler) ToggleTheme(c echo.Context) error {
    back := backTo(c, "/settings")
    ctx := c.Request().Context()
    out, err := h.Settings.ToggleTheme(ctx)
    if err != nil {
        return fail(c, h.Log, err, back)
    }
    return reply(c, http.StatusOK, out, back, translate(ctx, h.Settings, "settingsSaved"))
}
