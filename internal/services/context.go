package services

import (
	"context"

	"github.com/google/uuid"

	"pixelpost/pkg/logger"
)

type userCtxKey string

const userIDKey userCtxKey = "auth_user_id"

// WithUserContext stores the authenticated user id on the context, both
// for handlers and for log enrichment.
func WithUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, logger.UserIdKey, userID.String())
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
