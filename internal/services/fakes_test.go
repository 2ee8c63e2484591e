package services

import (
	"context"
	"io"
	"sort"

	"github.com/google/uuid"

	"pixelpost/internal/domain/post"
	"pixelpost/internal/domain/user"
	"pixelpost/internal/storage"
	pixel_errors "pixelpost/pkg/errors"
)

type fakeTextPostRepo struct {
	posts map[uuid.UUID]post.TextPost
}

func newFakeTextPostRepo() *fakeTextPostRepo {
	return &fakeTextPostRepo{posts: make(map[uuid.UUID]post.TextPost)}
}

func (f *fakeTextPostRepo) Create(_ context.Context, p *post.TextPost) error {
	f.posts[p.ID] = *p
	return nil
}

func (f *fakeTextPostRepo) List(_ context.Context, limit, skip int) ([]post.TextPost, error) {
	out := make([]post.TextPost, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if skip > 0 {
		if skip >= len(out) {
			return nil, nil
		}
		out = out[skip:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTextPostRepo) GetByID(_ context.Context, id uuid.UUID) (post.TextPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return post.TextPost{}, pixel_errors.ErrNotFound
	}
	return p, nil
}

func (f *fakeTextPostRepo) Update(_ context.Context, p post.TextPost) error {
	if _, ok := f.posts[p.ID]; !ok {
		return pixel_errors.ErrNotFound
	}
	f.posts[p.ID] = p
	return nil
}

func (f *fakeTextPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return pixel_errors.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakePostRepo struct {
	posts     map[uuid.UUID]post.Post
	order     []uuid.UUID
	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]post.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, p *post.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.posts[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return post.Post{}, pixel_errors.ErrNotFound
	}
	return p, nil
}

// ListAll returns newest-first, mirroring the SQL ordering.
func (f *fakePostRepo) ListAll(_ context.Context) ([]post.Post, error) {
	out := make([]post.Post, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if p, ok := f.posts[f.order[i]]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return pixel_errors.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return pixel_errors.ErrAlreadyExists
		}
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pixel_errors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pixel_errors.ErrNotFound
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeGateway struct {
	result      storage.UploadResult
	err         error
	gotFilename string
	gotType     string
	gotSize     int64
	gotBytes    []byte
	calls       int
}

func (f *fakeGateway) Upload(_ context.Context, body io.Reader, filename, contentType string, size int64) (storage.UploadResult, error) {
	f.calls++
	f.gotFilename = filename
	f.gotType = contentType
	f.gotSize = size
	data, err := io.ReadAll(body)
	if err != nil {
		return storage.UploadResult{}, err
	}
	f.gotBytes = data
	if f.err != nil {
		return storage.UploadResult{}, f.err
	}
	return f.result, nil
}
