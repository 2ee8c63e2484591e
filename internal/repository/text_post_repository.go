package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pixelpost/internal/domain/post"
	pixel_errors "pixelpost/pkg/errors"
)

type PostgresTextPostRepository struct {
	db *gorm.DB
}

func NewTextPostRepository(db *gorm.DB) TextPostRepository {
	return &PostgresTextPostRepository{db: db}
}

func (r *PostgresTextPostRepository) Create(ctx context.Context, p *post.TextPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresTextPostRepository) List(ctx context.Context, limit, skip int) ([]post.TextPost, error) {
	var posts []post.TextPost

	q := r.db.WithContext(ctx).
		Model(&post.TextPost{}).
		Order("created_at DESC")
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostgresTextPostRepository) GetByID(ctx context.Context, id uuid.UUID) (post.TextPost, error) {
	var p post.TextPost
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return post.TextPost{}, pixel_errors.ErrNotFound
		}
		return post.TextPost{}, err
	}
	return p, nil
}

func (r *PostgresTextPostRepository) Update(ctx context.Context, p post.TextPost) error {
	res := r.db.WithContext(ctx).Save(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pixel_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresTextPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&post.TextPost{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pixel_errors.ErrNotFound
	}
	return nil
}
