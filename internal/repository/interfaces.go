package repository

import (
	"context"

	"github.com/google/uuid"

	"pixelpost/internal/domain/post"
	"pixelpost/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	GetAllUsers(ctx context.Context) ([]user.User, error)
}

// TextPostRepository covers the early, unauthenticated post variant.
type TextPostRepository interface {
	Create(ctx context.Context, p *post.TextPost) error
	List(ctx context.Context, limit, skip int) ([]post.TextPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (post.TextPost, error)
	Update(ctx context.Context, p post.TextPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostRepository covers the authenticated media variant.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (post.Post, error)
	ListAll(ctx context.Context) ([]post.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
