package ports

import (
	"context"

	"github.com/leadsmanager/leads-api/internal/core/domain"
)

// Token is the credential envelope returned by both register and login.
// TokenType is always "bearer".
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService implements registration, login and token verification.
type AuthService interface {
	// Register creates a new account and, on success, behaves exactly like
	// Login: it returns a signed token for the fresh user.
	Register(ctx context.Context, email, password string) (*Token, error)
	Login(ctx context.Context, email, password string) (*Token, error)
	// CurrentUser verifies the bearer token and resolves it to the public
	// identity of the user it was issued for. All failure causes collapse
	// into domain.ErrUserNotFound.
	CurrentUser(ctx context.Context, token string) (domain.PublicUser, error)
}
