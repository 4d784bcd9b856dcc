package auth

import (
	"context"

	"github.com/bagdasarian/group-managers/internal/domain"
)

type contextKey struct{}

// WithUser кладет текущего пользователя в контекст
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext возвращает текущего пользователя или nil
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(contextKey{}).(*domain.User)
	return user
}
