package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/logger"
	"cryptodash/internal/models"
)

// TokenIssuer creates the auth token saved for a logged-in user.
type TokenIssuer func(user *models.User) (string, error)

// Manager is the session context: it holds the current user and token in
// memory and saves them to the store on login and logout.
type Manager struct {
	store      Store
	auth       Authenticator
	issueToken TokenIssuer

	mu    sync.RWMutex
	user  *models.User
	token string
}

// NewManager creates a new session manager. Call Load to restore a saved session.
func NewManager(store Store, auth Authenticator, issueToken TokenIssuer) *Manager {
	return &Manager{store: store, auth: auth, issueToken: issueToken}
}

// Load restores the saved session. A missing or unreadable user record
// leaves the session logged out.
func (m *Manager) Load(ctx context.Context) error {
	token, err := m.store.Get(ctx, KeyAuthToken)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return apperrors.Wrap(apperrors.ErrSessionStore, err)
	}

	var user *models.User
	raw, err := m.store.Get(ctx, KeyCurrentUser)
	switch {
	case err == nil:
		user = &models.User{}
		if jsonErr := json.Unmarshal([]byte(raw), user); jsonErr != nil {
			logger.Get().Warnw("Discarding unreadable session user", "error", jsonErr)
			user = nil
		}
	case !errors.Is(err, ErrKeyNotFound):
		return apperrors.Wrap(apperrors.ErrSessionStore, err)
	}

	m.mu.Lock()
	m.user = user
	m.token = token
	m.mu.Unlock()
	return nil
}

// Login authenticates the credentials, issues a token and saves both keys.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, "", err
		}
		return nil, "", apperrors.Wrap(apperrors.ErrLoginFailed, err)
	}

	token, err := m.issueToken(user)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("issuing token: %w", err))
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := m.store.Set(ctx, KeyCurrentUser, string(raw)); err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrSessionStore, err)
	}
	if err := m.store.Set(ctx, KeyAuthToken, token); err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrSessionStore, err)
	}

	m.mu.Lock()
	m.user = user
	m.token = token
	m.mu.Unlock()

	logger.Get().Infow("User logged in", "email", user.Email)
	return user, token, nil
}

// Logout deletes both session keys and clears the in-memory session.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, KeyCurrentUser, KeyAuthToken); err != nil {
		return apperrors.Wrap(apperrors.ErrSessionStore, err)
	}

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether a token is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// Current returns a copy of the logged-in user, if any.
func (m *Manager) Current() (*models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

// Token returns the current auth token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}
