package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

type mockUserRepo struct {
	FindByCredentialsFunc func(ctx context.Context, email, password string) (models.User, bool)
	GetByIDFunc           func(ctx context.Context, id string) (models.User, bool)
	ListFunc              func(ctx context.Context) []models.User
	EngineersFunc         func(ctx context.Context) []models.User
}

func (m *mockUserRepo) FindByCredentials(ctx context.Context, email, password string) (models.User, bool) {
	return m.FindByCredentialsFunc(ctx, email, password)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (models.User, bool) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockUserRepo) List(ctx context.Context) []models.User { return m.ListFunc(ctx) }
func (m *mockUserRepo) Engineers(ctx context.Context) []models.User {
	return m.EngineersFunc(ctx)
}

var inspectorUser = models.User{ID: "2", Email: "inspector@test.in", Password: "inspect123", Role: models.RoleInspector, Name: "Inspector User"}

func singleUserRepo(u models.User) *mockUserRepo {
	return &mockUserRepo{
		FindByCredentialsFunc: func(ctx context.Context, email, password string) (models.User, bool) {
			if email == u.Email && password == u.Password {
				return u, true
			}
			return models.User{}, false
		},
		GetByIDFunc: func(ctx context.Context, id string) (models.User, bool) {
			if id == u.ID {
				return u, true
			}
			return models.User{}, false
		},
		ListFunc:      func(ctx context.Context) []models.User { return []models.User{u.Public()} },
		EngineersFunc: func(ctx context.Context) []models.User { return nil },
	}
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(singleUserRepo(inspectorUser), "secret", time.Hour)

	got, err := svc.Login(context.Background(), "inspector@test.in", "inspect123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got.ID != "2" || got.Role != models.RoleInspector {
		t.Errorf("Login = %+v; want inspector", got)
	}
	if got.Password != "" {
		t.Errorf("Login leaked password %q", got.Password)
	}
}

func TestLogin_GenericFailure(t *testing.T) {
	svc := NewAuthService(singleUserRepo(inspectorUser), "secret", time.Hour)

	for _, tc := range []struct{ email, password string }{
		{"inspector@test.in", "wrong"},
		{"nobody@test.in", "inspect123"},
	} {
		_, err := svc.Login(context.Background(), tc.email, tc.password)
		if !errors.Is(err, models.ErrInvalidCredentials) {
			t.Fatalf("Login(%q) error = %v; want ErrInvalidCredentials", tc.email, err)
		}
		if err.Error() != "Invalid email or password" {
			t.Errorf("Login(%q) message = %q", tc.email, err.Error())
		}
	}
}

func TestToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(singleUserRepo(inspectorUser), "secret", time.Hour)

	token, err := svc.IssueToken(inspectorUser)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	got, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if got.ID != inspectorUser.ID || got.Password != "" {
		t.Errorf("Authenticate = %+v", got)
	}
}

func TestToken_Rejected(t *testing.T) {
	issuer := NewAuthService(singleUserRepo(inspectorUser), "secret", time.Hour)
	token, _ := issuer.IssueToken(inspectorUser)

	other := NewAuthService(singleUserRepo(inspectorUser), "other-secret", time.Hour)
	if _, err := other.Authenticate(context.Background(), token); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("wrong secret: error = %v; want ErrUnauthorized", err)
	}

	expired := NewAuthService(singleUserRepo(inspectorUser), "secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := expired.Authenticate(context.Background(), token); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("expired: error = %v; want ErrUnauthorized", err)
	}

	if _, err := issuer.Authenticate(context.Background(), ""); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("empty: error = %v; want ErrUnauthorized", err)
	}

	gone := NewAuthService(singleUserRepo(models.User{ID: "99"}), "secret", time.Hour)
	if _, err := gone.Authenticate(context.Background(), token); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("unknown subject: error = %v; want ErrUnauthorized", err)
	}
}

func TestUsers_AdminOnly(t *testing.T) {
	svc := NewAuthService(singleUserRepo(inspectorUser), "secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Users(ctx, &inspectorUser); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("inspector: error = %v; want ErrForbidden", err)
	}
	if _, err := svc.Users(ctx, nil); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("anonymous: error = %v; want ErrUnauthorized", err)
	}
	users, err := svc.Users(ctx, &models.User{ID: "1", Role: models.RoleAdmin})
	if err != nil || len(users) != 1 {
		t.Errorf("admin: users = %v, err = %v", users, err)
	}
}
