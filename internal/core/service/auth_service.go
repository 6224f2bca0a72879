package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadsmanager/leads-api/internal/core/domain"
	"github.com/leadsmanager/leads-api/internal/core/ports"
)

const tokenType = "bearer"

// AuthService implements registration, login and token verification.
// The signing secret lives for the process lifetime only; tokens do not
// survive a restart.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an account and issues a token exactly as Login does.
func (s *AuthService) Register(ctx context.Context, email, password string) (*ports.Token, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:          email,
		HashedPassword: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(created)
}

// Login verifies the credentials and returns a signed token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Token, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// CurrentUser verifies the token signature, extracts the id claim and loads
// the user row. Every failure cause collapses into ErrUserNotFound so the
// response never leaks which check rejected the token.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.PublicUser, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.PublicUser{}, domain.ErrUserNotFound
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return domain.PublicUser{}, domain.ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, uint(id))
	if err != nil {
		return domain.PublicUser{}, domain.ErrUserNotFound
	}

	return user.Public(), nil
}

func (s *AuthService) issueToken(user *domain.User) (*ports.Token, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &ports.Token{AccessToken: signed, TokenType: tokenType}, nil
}
