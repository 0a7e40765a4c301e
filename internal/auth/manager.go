// Package auth hashes passwords and manages the users of clientrec.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/inovacc/clientrec/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when a username/password pair does
	// not match a stored user, or when either is empty.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordMismatch is returned when a password and its confirmation
	// differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// CreateOutcome tells a successful registration apart from a taken username.
type CreateOutcome int

const (
	OutcomeCreated CreateOutcome = iota + 1
	OutcomeConflict
)

func (o CreateOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// UserStore is the part of the record store the manager needs.
type UserStore interface {
	InsertUser(ctx context.Context, username, passwordHash string, isAdmin bool) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) (bool, error)
	CountUsers(ctx context.Context) (int, error)
}

// Manager creates and authenticates users.
type Manager struct {
	users UserStore
	cost  int
	log   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithCost overrides the bcrypt cost.
func WithCost(cost int) Option {
	return func(m *Manager) {
		m.cost = cost
	}
}

// WithLogger sets the logger for authentication events.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager returns a Manager backed by users.
func NewManager(users UserStore, opts ...Option) *Manager {
	m := &Manager{
		users: users,
		cost:  bcrypt.DefaultCost,
		log:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Hash returns a salted bcrypt hash of password.
func (m *Manager) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash.
func (m *Manager) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateUser registers a user. A taken username yields OutcomeConflict with a
// nil error.
func (m *Manager) CreateUser(ctx context.Context, username, password string, isAdmin bool) (CreateOutcome, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, ErrInvalidCredentials
	}

	hash, err := m.Hash(password)
	if err != nil {
		return 0, err
	}

	if _, err := m.users.InsertUser(ctx, username, hash, isAdmin); err != nil {
		if errors.Is(err, store.ErrConstraintViolation) {
			m.log.Info("registration rejected, username taken", "username", username)
			return OutcomeConflict, nil
		}

		return 0, fmt.Errorf("create user: %w", err)
	}

	m.log.Info("user registered", "username", username, "is_admin", isAdmin)

	return OutcomeCreated, nil
}

// Authenticate checks a username/password pair.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (*model.UserSummary, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := m.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.log.Warn("login failed", "username", username)
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !m.Verify(password, u.PasswordHash) {
		m.log.Warn("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	summary := u.Summary()

	return &summary, nil
}

// UserExists reports whether at least one user is registered.
func (m *Manager) UserExists(ctx context.Context) (bool, error) {
	n, err := m.users.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}

	return n > 0, nil
}

// ChangePassword replaces the password of userID after checking the old one.
// It returns false when the user does not exist or oldPassword is wrong. An
// empty newPassword is rejected with ErrInvalidCredentials before any lookup.
func (m *Manager) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) (bool, error) {
	if newPassword == "" {
		return false, ErrInvalidCredentials
	}

	u, err := m.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("change password: %w", err)
	}

	if !m.Verify(oldPassword, u.PasswordHash) {
		return false, nil
	}

	hash, err := m.Hash(newPassword)
	if err != nil {
		return false, err
	}

	ok, err := m.users.UpdatePasswordHash(ctx, userID, hash)
	if err != nil {
		return false, fmt.Errorf("change password: %w", err)
	}

	if ok {
		m.log.Info("password changed", "user_id", userID)
	}

	return ok, nil
}

// GetUserByUsername returns the public view of a user. A missing user yields
// store.ErrNotFound.
func (m *Manager) GetUserByUsername(ctx context.Context, username string) (*model.UserSummary, error) {
	u, err := m.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrNotFound
		}

		return nil, fmt.Errorf("get user: %w", err)
	}

	summary := u.Summary()

	return &summary, nil
}

// ConfirmPassword returns ErrPasswordMismatch when the two entries differ.
func ConfirmPassword(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordMismatch
	}

	return nil
}
