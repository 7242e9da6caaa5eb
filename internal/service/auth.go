// Package service implements the tracker's workflows on top of the
// repositories: login and sessions, role enforcement, job status transitions
// with their notifications, dashboard and calendar projections, and CSV
// export.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// UserRepository defines the user lookups required by the authentication
// service.
type UserRepository interface {
	// FindByCredentials returns the user matching both email and password.
	FindByCredentials(ctx context.Context, email, password string) (models.User, bool)
	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id string) (models.User, bool)
	// List returns every user.
	List(ctx context.Context) []models.User
	// Engineers returns the users with the Engineer role.
	Engineers(ctx context.Context) []models.User
}

// AuthService checks credentials and issues signed session tokens.
type AuthService struct {
	users  UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService constructs an AuthService. secret signs HS256 session
// tokens that stay valid for ttl.
func NewAuthService(users UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Login matches email and password against the user list. The returned user
// carries no password. Any mismatch yields models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	u, ok := s.users.FindByCredentials(ctx, email, password)
	if !ok {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u.Public(), nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// IssueToken signs a session token for u.
func (s *AuthService) IssueToken(u models.User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    "fleetkeeper",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: string(u.Role),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Authenticate validates a session token and returns its user, looked up
// afresh so that role changes take effect immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, models.ErrUnauthorized
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer("fleetkeeper"))
	if err != nil {
		return models.User{}, errors.Join(models.ErrUnauthorized, err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return models.User{}, models.ErrUnauthorized
	}
	u, found := s.users.GetByID(ctx, claims.Subject)
	if !found {
		return models.User{}, models.ErrUnauthorized
	}
	return u.Public(), nil
}

// Users lists every user. Only admins may see the list.
func (s *AuthService) Users(ctx context.Context, actor *models.User) ([]models.User, error) {
	if actor == nil {
		return nil, models.ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin {
		return nil, models.ErrForbidden
	}
	return s.users.List(ctx), nil
}

// Engineers lists the users a job can be assigned to.
func (s *AuthService) Engineers(ctx context.Context, actor *models.User) ([]models.User, error) {
	if actor == nil {
		return nil, models.ErrUnauthorized
	}
	return s.users.Engineers(ctx), nil
}
