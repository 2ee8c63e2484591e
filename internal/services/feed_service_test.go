package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"pixelpost/internal/domain/post"
	"pixelpost/internal/domain/user"
)

func TestAssembleFeedDecoration(t *testing.T) {
	posts := newFakePostRepo()
	users := newFakeUserRepo()
	svc := NewFeedService(posts, users)

	caller := user.User{ID: uuid.New(), Email: "caller@example.com"}
	other := user.User{ID: uuid.New(), Email: "other@example.com"}
	users.users[caller.ID] = caller
	users.users[other.ID] = other
	ghostID := uuid.New() // user deleted out-of-band

	now := time.Now()
	for i, owner := range []uuid.UUID{caller.ID, other.ID, ghostID} {
		p := post.Post{
			ID:        uuid.New(),
			UserID:    owner,
			URL:       "https://cdn.example.com/x",
			FileType:  post.FileTypeImage,
			FileName:  "x.png",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := posts.Create(context.Background(), &p); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	feed, err := svc.AssembleFeed(context.Background(), caller.ID)
	if err != nil {
		t.Fatalf("assemble feed: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("feed size: got %d want 3", len(feed))
	}

	// Newest-first: ghost, other, caller.
	if feed[0].Email != "Unknown" {
		t.Fatalf("missing author must read Unknown, got %q", feed[0].Email)
	}
	if feed[0].IsOwner {
		t.Fatal("ghost post must not be owned by caller")
	}
	if feed[1].Email != "other@example.com" || feed[1].IsOwner {
		t.Fatalf("unexpected decoration for other's post: %q owner=%v", feed[1].Email, feed[1].IsOwner)
	}
	if feed[2].Email != "caller@example.com" || !feed[2].IsOwner {
		t.Fatalf("unexpected decoration for caller's post: %q owner=%v", feed[2].Email, feed[2].IsOwner)
	}
}

func TestAssembleFeedEmpty(t *testing.T) {
	svc := NewFeedService(newFakePostRepo(), newFakeUserRepo())

	feed, err := svc.AssembleFeed(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("assemble feed: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d", len(feed))
	}
}
