package api

import (
	"context"

	"github.com/bloghive/backend/models"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal attaches the authenticated user to the context.
func ctxWithPrincipal(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// principalFromCtx retrieves the authenticated user from the context.
func principalFromCtx(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(principalKey).(*models.User)
	return user, ok
}
