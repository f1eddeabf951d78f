package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"digiboard/api/internal/db/repositories"
	gormModels "digiboard/api/internal/models/gorm"
)

// ErrInvalidCredentials is returned for a bad email/password pair and for
// unknown or revoked tokens. Callers surface it uniformly as 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and resolves opaque bearer tokens. Only the SHA-256
// digest of a token is stored, so a leaked store does not leak usable
// credentials.
type AuthService struct {
	users  *repositories.UserRepository
	tokens TokenStore
	ttl    time.Duration
}

func NewAuthService(users *repositories.UserRepository, tokens TokenStore, ttl time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, ttl: ttl}
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login verifies the password and returns a fresh plain-text token together
// with the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *gormModels.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	if err := s.tokens.Put(ctx, digest(token), user.ID, s.ttl); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the token. Revoking an unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Delete(ctx, digest(token))
}

// ResolveToken maps a bearer token back to its user, or
// ErrInvalidCredentials when the token is unknown, expired or orphaned.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*gormModels.User, error) {
	userID, found, err := s.tokens.Get(ctx, digest(token))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// The user was deleted after the token was issued.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
