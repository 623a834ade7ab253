package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
)

// SettingsPatch carries the fields to change. Nil fields keep their value.
type SettingsPatch struct {
	Language *string `json:"language,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}

// Promotions is the state of the two winter-sale switches.
type Promotions struct {
	Banner bool `json:"winterSaleBanner"`
	Active bool `json:"winterSaleActive"`
}

// Settings manages storefront preferences and the promotion switches.
type Settings struct {
	repo *repository.SettingsRepo
	log  logrus.FieldLogger
}

func NewSettings(repo *repository.SettingsRepo, log logrus.FieldLogger) *Settings {
	if repo == nil {
		panic("nil repository passed to service.NewSettings")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Settings{repo: repo, log: log}
}

func (s *Settings) Get(ctx context.Context) model.Settings { return s.repo.Get(ctx) }

// Update merges p into the stored settings. Nothing is written when any
// field holds an unsupported value.
func (s *Settings) Update(ctx context.Context, p SettingsPatch) (model.Settings, error) {
	if !oneOf(p.Language, model.LangEnglish, model.LangMongolian) ||
		!oneOf(p.Currency, model.CurrencyUSD, model.CurrencyMNT) ||
		!oneOf(p.Theme, model.ThemeLight, model.ThemeDark) {
		return model.Settings{}, ErrInvalidSetting
	}
	out, err := s.repo.Update(ctx, func(cur *model.Settings) error {
		if p.Language != nil {
			cur.Language = *p.Language
		}
		if p.Currency != nil {
			cur.Currency = *p.Currency
		}
		if p.Theme != nil {
			cur.Theme = *p.Theme
		}
		return nil
	})
	if err != nil {
		return model.Settings{}, err
	}
	s.log.WithFields(logrus.Fields{"language": out.Language, "currency": out.Currency, "theme": out.Theme}).Debug("settings: updated")
	return out, nil
}

func oneOf(v *string, allowed ...string) bool {
	if v == nil {
		return true
	}
	for _, a := range allowed {
		if *v == a {
			return true
		}
	}
	return false
}

// ToggleTheme switches between light and dark.
func (s *Settings) ToggleTheme(ctx context.Context) (model.Settings, error) {
	return s.repo.Update(ctx, func(cur *model.Settings) error {
		if cur.Theme == model.ThemeDark {
			cur.Theme = model.ThemeLight
		} else {
			cur.Theme = model.ThemeDark
		}
		return nil
	})
}

func (s *Settings) Promotions(ctx context.Context) Promotions {
	return Promotions{
		Banner: s.repo.Flag(ctx, repository.KeyWinterSaleBanner),
		Active: s.repo.Flag(ctx, repository.KeyWinterSaleActive),
	}
}

// ToggleWinterSaleBanner flips the storefront banner and returns its new state.
func (s *Settings) ToggleWinterSaleBanner(ctx context.Context, sess *model.Session) (bool, error) {
	return s.toggle(ctx, sess, repository.KeyWinterSaleBanner)
}

// ToggleWinterSale flips the winter-sale pricing and returns its new state.
func (s *Settings) ToggleWinterSale(ctx context.Context, sess *model.Session) (bool, error) {
	return s.toggle(ctx, sess, repository.KeyWinterSaleActive)
}

func (s *Settings) toggle(ctx context.Context, sess *model.Session, key string) (bool, error) {
	if !sess.IsAdmin() {
		return false, ErrAdminRequired
	}
	on, err := s.repo.ToggleFlag(ctx, key)
	if err != nil {
		return false, err
	}
	s.log.WithFields(logrus.Fields{"key": key, "on": on, "admin": sess.Email}).Info("settings: promotion toggled")
	return on, nil
}
