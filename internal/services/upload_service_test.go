package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"pixelpost/internal/storage"
	pixel_errors "pixelpost/pkg/errors"
)

func assertStagingEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read staging dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("staging dir not cleaned up, %d entries remain", len(entries))
	}
}

func TestUploadCreatesImagePost(t *testing.T) {
	repo := newFakePostRepo()
	gateway := &fakeGateway{result: storage.UploadResult{URL: "https://cdn.example.com/uploads/abc.png", Name: "uploads/abc.png"}}
	staging := t.TempDir()
	svc := NewUploadService(repo, gateway, staging, nil)
	owner := uuid.New()

	p, err := svc.Upload(context.Background(), UploadInput{
		UserID:      owner,
		FileName:    "a.png",
		ContentType: "image/png",
		Title:       "T",
		Body:        strings.NewReader("0123456789"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if p.FileType != "image" {
		t.Fatalf("file type: got %q want image", p.FileType)
	}
	if p.Title != "T" {
		t.Fatalf("title: got %q want T", p.Title)
	}
	if p.URL != gateway.result.URL {
		t.Fatalf("url not passed through untransformed: got %q", p.URL)
	}
	if p.FileName != "uploads/abc.png" {
		t.Fatalf("file name: got %q", p.FileName)
	}
	if p.UserID != owner {
		t.Fatalf("user id: got %s want %s", p.UserID, owner)
	}
	if p.ID == uuid.Nil {
		t.Fatal("post id not assigned")
	}
	if _, err := uuid.Parse(p.ID.String()); err != nil {
		t.Fatalf("post id is not a valid uuid: %v", err)
	}
	if string(gateway.gotBytes) != "0123456789" {
		t.Fatalf("gateway did not receive staged bytes: got %q", gateway.gotBytes)
	}
	if gateway.gotSize != 10 {
		t.Fatalf("gateway size: got %d want 10", gateway.gotSize)
	}
	assertStagingEmpty(t, staging)
}

func TestUploadDerivesVideoFileType(t *testing.T) {
	repo := newFakePostRepo()
	gateway := &fakeGateway{result: storage.UploadResult{URL: "https://cdn.example.com/v.mp4", Name: "uploads/v.mp4"}}
	svc := NewUploadService(repo, gateway, t.TempDir(), nil)

	p, err := svc.Upload(context.Background(), UploadInput{
		UserID:      uuid.New(),
		FileName:    "v.mp4",
		ContentType: "video/mp4",
		Body:        strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if p.FileType != "video" {
		t.Fatalf("file type: got %q want video", p.FileType)
	}
}

func TestUploadFileNameFallsBackToOriginal(t *testing.T) {
	repo := newFakePostRepo()
	gateway := &fakeGateway{result: storage.UploadResult{URL: "https://cdn.example.com/x"}}
	svc := NewUploadService(repo, gateway, t.TempDir(), nil)

	p, err := svc.Upload(context.Background(), UploadInput{
		UserID:      uuid.New(),
		FileName:    "original.png",
		ContentType: "image/png",
		Body:        strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if p.FileName != "original.png" {
		t.Fatalf("file name fallback: got %q want original.png", p.FileName)
	}
}

func TestUploadGatewayWithoutURLFails(t *testing.T) {
	repo := newFakePostRepo()
	gateway := &fakeGateway{result: storage.UploadResult{Name: "uploads/ghost.png"}}
	staging := t.TempDir()
	svc := NewUploadService(repo, gateway, staging, nil)

	_, err := svc.Upload(context.Background(), UploadInput{
		UserID:      uuid.New(),
		FileName:    "ghost.png",
		ContentType: "image/png",
		Body:        strings.NewReader("data"),
	})
	if !errors.Is(err, pixel_errors.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("no post row may exist after a failed upload, found %d", len(repo.posts))
	}
	assertStagingEmpty(t, staging)
}

func TestUploadGatewayErrorFails(t *testing.T) {
	repo := newFakePostRepo()
	gateway := &fakeGateway{err: errors.New("connection reset")}
	staging := t.TempDir()
	svc := NewUploadService(repo, gateway, staging, nil)

	_, err := svc.Upload(context.Background(), UploadInput{
		UserID:      uuid.New(),
		FileName:    "a.png",
		ContentType: "image/png",
		Body:        strings.NewReader("data"),
	})
	if !errors.Is(err, pixel_errors.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("no post row may exist after a failed upload, found %d", len(repo.posts))
	}
	assertStagingEmpty(t, staging)
}

func TestUploadPersistFailureLeavesNoRowOrTempFile(t *testing.T) {
	repo := newFakePostRepo()
	repo.createErr = errors.New("insert failed")
	gateway := &fakeGateway{result: storage.UploadResult{URL: "https://cdn.example.com/x", Name: "uploads/x"}}
	staging := t.TempDir()
	svc := NewUploadService(repo, gateway, staging, nil)

	_, err := svc.Upload(context.Background(), UploadInput{
		UserID:      uuid.New(),
		FileName:    "a.png",
		ContentType: "image/png",
		Body:        strings.NewReader("data"),
	})
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if len(repo.posts) != 0 {
		t.Fatalf("no post row may exist after a failed persist, found %d", len(repo.posts))
	}
	// The remote object is deliberately not rolled back.
	if gateway.calls != 1 {
		t.Fatalf("gateway calls: got %d want 1", gateway.calls)
	}
	assertStagingEmpty(t, staging)
}

func TestUploadRejectsMissingInput(t *testing.T) {
	svc := NewUploadService(newFakePostRepo(), &fakeGateway{}, t.TempDir(), nil)

	_, err := svc.Upload(context.Background(), UploadInput{
		FileName:    "a.png",
		ContentType: "image/png",
		Body:        strings.NewReader("data"),
	})
	if !errors.Is(err, pixel_errors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
}

func TestDeletePostOwnership(t *testing.T) {
	repo := newFakePostRepo()
	gateway := &fakeGateway{result: storage.UploadResult{URL: "https://cdn.example.com/x", Name: "uploads/x"}}
	svc := NewUploadService(repo, gateway, t.TempDir(), nil)
	owner := uuid.New()
	stranger := uuid.New()

	p, err := svc.Upload(context.Background(), UploadInput{
		UserID:      owner,
		FileName:    "a.png",
		ContentType: "image/png",
		Body:        strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.DeletePost(context.Background(), p.ID, stranger); !errors.Is(err, pixel_errors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), p.ID); err != nil {
		t.Fatalf("post must survive a forbidden delete: %v", err)
	}

	if err := svc.DeletePost(context.Background(), p.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), p.ID); !errors.Is(err, pixel_errors.ErrNotFound) {
		t.Fatalf("post must be gone after owner delete, got %v", err)
	}

	if err := svc.DeletePost(context.Background(), p.ID, owner); !errors.Is(err, pixel_errors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted post, got %v", err)
	}
}
