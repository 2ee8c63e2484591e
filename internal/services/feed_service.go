package services

import (
	"context"

	"github.com/google/uuid"

	"pixelpost/internal/domain/post"
	"pixelpost/internal/repository"
)

// unknownAuthor is reported when a post references a user that no longer
// exists (deleted out-of-band).
const unknownAuthor = "Unknown"

type FeedService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewFeedService(posts repository.PostRepository, users repository.UserRepository) *FeedService {
	return &FeedService{posts: posts, users: users}
}

// DecoratedPost is a media post annotated with the caller's relationship
// to it and the author's display email.
type DecoratedPost struct {
	post.Post
	IsOwner bool   `json:"is_owner"`
	Email   string `json:"email"`
}

// AssembleFeed returns every media post newest-first, decorated for the
// given caller. Full two-table scan per call.
func (s *FeedService) AssembleFeed(ctx context.Context, callerID uuid.UUID) ([]DecoratedPost, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	emails := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}

	feed := make([]DecoratedPost, 0, len(posts))
	for _, p := range posts {
		email, ok := emails[p.UserID]
		if !ok {
			email = unknownAuthor
		}
		feed = append(feed, DecoratedPost{
			Post:    p,
			IsOwner: p.UserID == callerID,
			Email:   email,
		})
	}
	return feed, nil
}
