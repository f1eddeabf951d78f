package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"digiboard/api/internal/db/repositories"
	gormModels "digiboard/api/internal/models/gorm"
)

func newAuthFixture(t *testing.T) (*AuthService, *repositories.UserRepository, *gormModels.User) {
	t.Helper()

	db := setupTestDB(t)
	users := repositories.NewUserRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &gormModels.User{Name: "Operator", Email: "ops@digiboard.local", Password: string(hash)}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	return NewAuthService(users, NewMemoryTokenStore(), time.Hour), users, user
}

func TestAuthService_LoginAndResolve(t *testing.T) {
	service, _, user := newAuthFixture(t)
	ctx := context.Background()

	token, loggedIn, err := service.Login(ctx, "ops@digiboard.local", "password123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, loggedIn.ID)
	}
	// Two dashless UUIDs.
	if len(token) != 64 {
		t.Errorf("Expected a 64-char token, got %d chars", len(token))
	}

	resolved, err := service.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("Expected token to resolve, got %v", err)
	}
	if resolved.Email != user.Email {
		t.Errorf("Expected %s, got %s", user.Email, resolved.Email)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := service.Login(ctx, "ops@digiboard.local", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := service.Login(ctx, "nobody@digiboard.local", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	token, _, err := service.Login(ctx, "ops@digiboard.local", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := service.Logout(ctx, token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := service.ResolveToken(ctx, token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected revoked token to be invalid, got %v", err)
	}

	// Revoking again is a no-op.
	if err := service.Logout(ctx, token); err != nil {
		t.Errorf("Expected repeated logout to succeed, got %v", err)
	}
}

func TestAuthService_ResolveTokenForDeletedUser(t *testing.T) {
	service, users, user := newAuthFixture(t)
	ctx := context.Background()

	token, _, err := service.Login(ctx, "ops@digiboard.local", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}
	if _, err := service.ResolveToken(ctx, token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected orphaned token to be invalid, got %v", err)
	}
}

func TestAuthService_ResolveUnknownToken(t *testing.T) {
	service, _, _ := newAuthFixture(t)

	if _, err := service.ResolveToken(context.Background(), "not-a-real-token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected unknown token to be invalid, got %v", err)
	}
}
