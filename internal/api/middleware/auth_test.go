package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/leadsmanager/leads-api/internal/core/domain"
	"github.com/leadsmanager/leads-api/internal/core/ports"
)

type stubAuthService struct {
	currentUserFn func(ctx context.Context, token string) (domain.PublicUser, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*ports.Token, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.Token, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) CurrentUser(ctx context.Context, token string) (domain.PublicUser, error) {
	return s.currentUserFn(ctx, token)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (domain.PublicUser, error) {
			if token != "valid-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return domain.PublicUser{ID: 7, Email: "a@x.com"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(stub)
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get(userContextKey).(domain.PublicUser)
		if !ok {
			t.Fatalf("user not set in context")
		}
		if user.ID != 7 || user.Email != "a@x.com" {
			t.Fatalf("unexpected identity: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (domain.PublicUser, error) {
			t.Fatalf("should not be called")
			return domain.PublicUser{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(stub)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (domain.PublicUser, error) {
			t.Fatalf("should not be called")
			return domain.PublicUser{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(stub)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (domain.PublicUser, error) {
			return domain.PublicUser{}, domain.ErrUserNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(stub)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
