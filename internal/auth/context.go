package auth

import (
	"context"

	gormModels "digiboard/api/internal/models/gorm"
)

type contextKey string

var currentUserKey contextKey = "current_user"

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(ctx context.Context, user *gormModels.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the authenticated user, or nil outside protected
// routes.
func CurrentUser(ctx context.Context) *gormModels.User {
	val := ctx.Value(currentUserKey)
	if user, ok := val.(*gormModels.User); ok {
		return user
	}
	return nil
}
