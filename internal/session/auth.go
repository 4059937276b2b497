package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/models"
)

// Authenticator checks credentials and returns the logged-in user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// HTTPAuthenticator posts credentials to {baseURL}/login. The response body is
// not interpreted: any 2xx answer logs the user in and the user record is
// derived from the email.
type HTTPAuthenticator struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPAuthenticator creates a new authenticator.
func NewHTTPAuthenticator(httpClient *http.Client, baseURL string) *HTTPAuthenticator {
	return &HTTPAuthenticator{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticate performs the login call.
func (a *HTTPAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoginFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoginFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoginFailed, fmt.Errorf("login request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Wrap(apperrors.ErrLoginFailed, fmt.Errorf("login: unexpected status %d", resp.StatusCode))
	}

	return FabricateUser(email), nil
}

// FabricateUser builds the session user for email. The id is always 1 and the
// name is the part of the email before '@'.
func FabricateUser(email string) *models.User {
	name, _, _ := strings.Cut(email, "@")
	return &models.User{ID: 1, Email: email, Name: name}
}
