package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pixelpost/internal/domain/post"
	"pixelpost/internal/repository"
)

// PostService implements the unauthenticated text-post variant: plain CRUD
// with no ownership.
type PostService struct {
	repo repository.TextPostRepository
}

func NewPostService(repo repository.TextPostRepository) *PostService {
	return &PostService{repo: repo}
}

type PostInput struct {
	Title   string
	Content string
}

func (s *PostService) Create(ctx context.Context, in PostInput) (post.TextPost, error) {
	now := time.Now()
	p := post.TextPost{
		ID:        uuid.New(),
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return post.TextPost{}, err
	}
	return p, nil
}

// List returns posts newest-first. limit <= 0 means no limit, skip <= 0
// means start from the beginning.
func (s *PostService) List(ctx context.Context, limit, skip int) ([]post.TextPost, error) {
	return s.repo.List(ctx, limit, skip)
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (post.TextPost, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces both fields unconditionally, even with empty values.
func (s *PostService) Update(ctx context.Context, id uuid.UUID, in PostInput) (post.TextPost, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return post.TextPost{}, err
	}

	p.Title = in.Title
	p.Content = in.Content
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return post.TextPost{}, err
	}
	return p, nil
}

// Patch replaces only non-empty fields. An explicit empty string counts as
// "not supplied" and is silently ignored — surprising, but long-standing
// behavior that clients rely on.
func (s *PostService) Patch(ctx context.Context, id uuid.UUID, in PostInput) (post.TextPost, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return post.TextPost{}, err
	}

	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Content != "" {
		p.Content = in.Content
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return post.TextPost{}, err
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
