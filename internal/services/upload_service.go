package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"pixelpost/internal/domain/post"
	"pixelpost/internal/repository"
	"pixelpost/internal/storage"
	pixel_errors "pixelpost/pkg/errors"
	"pixelpost/pkg/logger"
)

// UploadService runs the upload workflow: stage the incoming stream to a
// scratch file, push it to the object store, persist the post metadata in
// one transaction, and read the row back. The staging file is removed on
// every exit path. It also owns the ownership-checked delete of media
// posts.
type UploadService struct {
	posts      repository.PostRepository
	gateway    storage.Uploader
	stagingDir string
	log        *logger.Logger
}

func NewUploadService(posts repository.PostRepository, gateway storage.Uploader, stagingDir string, log *logger.Logger) *UploadService {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &UploadService{
		posts:      posts,
		gateway:    gateway,
		stagingDir: stagingDir,
		log:        log,
	}
}

type UploadInput struct {
	UserID      uuid.UUID
	FileName    string
	ContentType string
	Title       string
	Content     string
	Body        io.Reader
}

func (s *UploadService) Upload(ctx context.Context, in UploadInput) (post.Post, error) {
	if in.UserID == uuid.Nil || in.Body == nil || in.FileName == "" {
		return post.Post{}, pixel_errors.ErrInvalidInput
	}

	staged, err := os.CreateTemp(s.stagingDir, "upload-*")
	if err != nil {
		return post.Post{}, fmt.Errorf("stage upload: %w", err)
	}
	defer func() {
		staged.Close()
		if err := os.Remove(staged.Name()); err != nil && s.log != nil {
			s.log.Errorf("remove staging file %s: %v", staged.Name(), err)
		}
	}()

	size, err := io.Copy(staged, in.Body)
	if err != nil {
		return post.Post{}, fmt.Errorf("stage upload: %w", err)
	}
	if _, err := staged.Seek(0, io.SeekStart); err != nil {
		return post.Post{}, fmt.Errorf("stage upload: %w", err)
	}

	result, err := s.gateway.Upload(ctx, staged, in.FileName, in.ContentType, size)
	if err != nil {
		return post.Post{}, fmt.Errorf("%w: %v", pixel_errors.ErrUploadFailed, err)
	}
	if result.URL == "" {
		// HTTP-level success without a URL still counts as a failure.
		return post.Post{}, pixel_errors.ErrUploadFailed
	}

	fileName := result.Name
	if fileName == "" {
		fileName = in.FileName
	}

	now := time.Now()
	p := &post.Post{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Title:     in.Title,
		Content:   in.Content,
		URL:       result.URL,
		FileType:  post.FileTypeFor(in.ContentType),
		FileName:  fileName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, p); err != nil {
		// The remote object stays behind; orphans are accepted rather
		// than compensated.
		if s.log != nil {
			s.log.Errorf("persist post for upload %s: %v", result.Name, err)
		}
		return post.Post{}, err
	}

	return s.posts.GetByID(ctx, p.ID)
}

// DeletePost removes a media post. Only the owner may delete.
func (s *UploadService) DeletePost(ctx context.Context, id, callerID uuid.UUID) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != callerID {
		return pixel_errors.ErrForbidden
	}
	return s.posts.Delete(ctx, id)
}
