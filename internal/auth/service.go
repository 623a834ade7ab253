// Package auth registers and logs in users, tracks their sessions, and decides
// which routes a session may open.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/model"
	"github.com/iliyamo/progear-storefront/internal/repository"
	"github.com/iliyamo/progear-storefront/internal/utils"
	"github.com/iliyamo/progear-storefront/internal/validate"
)

// EventKind names a successful auth transition.
type EventKind string

const (
	EventRegistered EventKind = "registered"
	EventLogin      EventKind = "login"
	EventLogout     EventKind = "logout"
)

// Event is delivered to observers after every successful register, login and
// logout.
type Event struct {
	Kind    EventKind
	Session model.Session
	At      time.Time
}

// Observer receives auth events. Observers run synchronously in subscription
// order and must not block.
type Observer func(ctx context.Context, ev Event)

// Config tunes hashing and session lifetime.
type Config struct {
	BcryptCost int
	SessionTTL time.Duration
}

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,basic_email"`
	Password string `validate:"required,min=6,bcrypt_len"`
}

// Service owns registration, login and session lifecycle.
type Service struct {
	users    *repository.UserRepo
	sessions *repository.SessionRepo
	cfg      Config
	validate *validator.Validate
	log      logrus.FieldLogger
	now      func() time.Time

	mu        sync.RWMutex
	observers []Observer
}

// NewService wires the auth service. It panics when a repository is missing.
func NewService(users *repository.UserRepo, sessions *repository.SessionRepo, cfg Config, log logrus.FieldLogger) *Service {
	if users == nil || sessions == nil {
		panic("nil repository passed to auth.NewService")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		validate: validate.New(),
		log:      log,
		now:      time.Now,
	}
}

// Subscribe adds an observer for auth events.
func (s *Service) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

func (s *Service) notify(ctx context.Context, kind EventKind, sess model.Session) {
	s.mu.RLock()
	obs := append([]Observer(nil), s.observers...)
	s.mu.RUnlock()
	ev := Event{Kind: kind, Session: sess, At: s.now().UTC()}
	for _, o := range obs {
		o(ctx, ev)
	}
}

// Register creates a user account with role user and logs it in. Validation
// runs in a fixed order: blank fields, email shape, password length, then
// email uniqueness. No user is stored when any check fails.
func (s *Service) Register(ctx context.Context, name, email, password string) (model.Session, error) {
	in := registerInput{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := s.validate.Struct(in); err != nil {
		return model.Session{}, registerError(err)
	}

	hash, err := utils.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return model.Session{}, err
	}
	u := model.User{
		ID:           utils.NewID("user"),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return model.Session{}, ErrEmailTaken
		}
		return model.Session{}, err
	}
	s.log.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("auth: user registered")

	sess, err := s.startSession(ctx, u)
	if err != nil {
		return model.Session{}, err
	}
	s.notify(ctx, EventRegistered, sess)
	return sess, nil
}

func registerError(err error) error {
	failed := validate.FailedTags(err)
	for _, tag := range failed {
		if tag == "required" {
			return ErrFieldsRequired
		}
	}
	if _, ok := failed["Email"]; ok {
		return ErrInvalidEmail
	}
	switch failed["Password"] {
	case "":
	case "bcrypt_len":
		return ErrPasswordTooLong
	default:
		return ErrPasswordTooShort
	}
	return ErrFieldsRequired
}

// Login checks credentials against the stored users. Unknown email and wrong
// password are distinct failures; neither touches the users collection.
func (s *Service) Login(ctx context.Context, email, password string) (model.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.Session{}, ErrCredentialsRequired
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Session{}, ErrUserNotFound
		}
		return model.Session{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.Session{}, ErrWrongPassword
	}
	sess, err := s.startSession(ctx, u)
	if err != nil {
		return model.Session{}, err
	}
	s.notify(ctx, EventLogin, sess)
	return sess, nil
}

// Logout ends the session. Unknown ids are ignored.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.notify(ctx, EventLogout, sess)
	return nil
}

// Current resolves a session id. A missing or expired session yields nil and
// no error.
func (s *Service) Current(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// SeedAdmin creates or refreshes the privileged account. The role is forced
// to admin and the password reset on every boot so the configured credential
// always works.
func (s *Service) SeedAdmin(ctx context.Context, name, email, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if !validate.Email(email) {
		return model.User{}, ErrInvalidEmail
	}
	if len(password) < 6 {
		return model.User{}, ErrPasswordTooShort
	}
	if strings.TrimSpace(name) == "" {
		name = "Admin"
	}
	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return model.User{}, err
	}
	u, err := s.users.Upsert(ctx, model.User{
		ID:           utils.NewID("user"),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return model.User{}, err
	}
	s.log.WithField("email", u.Email).Info("auth: admin account seeded")
	return u, nil
}

func (s *Service) startSession(ctx context.Context, u model.User) (model.Session, error) {
	now := s.now().UTC()
	sess := model.Session{
		ID:        utils.NewID("sess"),
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}
