package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cryptodash/internal/config"
	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/logger"
	"cryptodash/internal/middleware"
	"cryptodash/internal/models"
	"cryptodash/internal/services"
	"cryptodash/internal/validator"
)

// --- mock session service ---

type mockSessionService struct {
	loginFn  func(ctx context.Context, email, password string) (*models.User, string, error)
	logoutFn func(ctx context.Context) error
	user     *models.User
	token    string
}

var _ services.SessionServicer = (*mockSessionService)(nil)

func (m *mockSessionService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return &models.User{ID: 1, Email: email}, "token", nil
}

func (m *mockSessionService) Logout(ctx context.Context) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx)
	}
	return nil
}

func (m *mockSessionService) Current() (*models.User, bool) {
	return m.user, m.user != nil
}

func (m *mockSessionService) IsAuthenticated() bool { return m.token != "" }

func (m *mockSessionService) Token() string { return m.token }

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/logout", handler.Logout)
	r.GET("/auth/session", handler.GetSession)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockSessionService{
			loginFn: func(_ context.Context, email, _ string) (*models.User, string, error) {
				return &models.User{ID: 1, Email: email, Name: "jane"}, "jwt-token", nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"jane@example.com","password":"secret"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] != "jwt-token" {
			t.Errorf("expected token jwt-token, got %v", result["token"])
		}
		user := result["user"].(map[string]interface{})
		if user["email"] != "jane@example.com" || user["name"] != "jane" {
			t.Errorf("unexpected user: %v", user)
		}
	})

	t.Run("returns 400 on invalid email", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockSessionService{}))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"not-an-email","password":"secret"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockSessionService{}))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"jane@example.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 when login fails", func(t *testing.T) {
		svc := &mockSessionService{
			loginFn: func(_ context.Context, _, _ string) (*models.User, string, error) {
				return nil, "", apperrors.Wrap(apperrors.ErrLoginFailed, errors.New("status 403"))
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"jane@example.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "LOGIN_FAILED")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "Login failed. Check your credentials." {
			t.Errorf("unexpected message %v", msg)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		called := false
		svc := &mockSessionService{logoutFn: func(context.Context) error {
			called = true
			return nil
		}}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/logout", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !called {
			t.Error("expected the session to be cleared")
		}
	})

	t.Run("returns 500 when the store fails", func(t *testing.T) {
		svc := &mockSessionService{logoutFn: func(context.Context) error {
			return apperrors.Wrap(apperrors.ErrSessionStore, errors.New("disk full"))
		}}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, "POST", "/auth/logout", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SESSION_STORE_ERROR")
	})
}

func TestAuthHandler_RegisterRoutes(t *testing.T) {
	config.Set(&config.Config{JWTSecret: "test-secret", JWTExpirationDur: time.Hour})
	token, err := middleware.GenerateToken(&models.User{ID: 1, Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantLogout bool
	}{
		{name: "logout without token", header: "", wantStatus: http.StatusUnauthorized},
		{name: "logout with foreign token", header: "Bearer other", wantStatus: http.StatusUnauthorized},
		{name: "logout with session token", header: "Bearer " + token, wantStatus: http.StatusOK, wantLogout: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &mockSessionService{token: token, logoutFn: func(context.Context) error {
				called = true
				return nil
			}}
			r := gin.New()
			NewAuthHandler(svc).RegisterRoutes(r.Group("/auth"), middleware.AuthMiddleware(svc))

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if called != tt.wantLogout {
				t.Errorf("logout called = %v, want %v", called, tt.wantLogout)
			}
		})
	}

	t.Run("login and session stay public", func(t *testing.T) {
		r := gin.New()
		NewAuthHandler(&mockSessionService{}).RegisterRoutes(r.Group("/auth"), middleware.AuthMiddleware(&mockSessionService{}))

		if rec := doRequest(r, "POST", "/auth/login", `{"email":"jane@example.com","password":"secret"}`); rec.Code != http.StatusOK {
			t.Errorf("login: expected 200, got %d", rec.Code)
		}
		if rec := doRequest(r, "GET", "/auth/session", ""); rec.Code != http.StatusOK {
			t.Errorf("session: expected 200, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_GetSession(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockSessionService{}))

		result := parseJSON(t, doRequest(r, "GET", "/auth/session", ""))

		if result["authenticated"] != false || result["user"] != nil {
			t.Errorf("expected an empty session, got %v", result)
		}
	})

	t.Run("logged in", func(t *testing.T) {
		svc := &mockSessionService{user: &models.User{ID: 1, Email: "jane@example.com", Name: "jane"}, token: "t"}
		r := setupAuthRouter(NewAuthHandler(svc))

		result := parseJSON(t, doRequest(r, "GET", "/auth/session", ""))

		if result["authenticated"] != true {
			t.Errorf("expected authenticated, got %v", result["authenticated"])
		}
		if user := result["user"].(map[string]interface{}); user["email"] != "jane@example.com" {
			t.Errorf("unexpected user %v", user)
		}
	})
}
