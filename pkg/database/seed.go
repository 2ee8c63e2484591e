package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pixelpost/internal/domain/post"
)

// seedTitles and seedContents make up the starter dataset for the text-post
// variant: six posts, inserted oldest-first so listing order is stable.
var seedTitles = []string{
	"First Post",
	"Second Post",
	"Third Post",
	"Fourth Post",
	"Fifth Post",
	"Sixth Post",
}

var seedContents = []string{
	"This is the content of the first post",
	"This is the content of the second post",
	"This is the content of the third post",
	"This is the content of the fourth post",
	"This is the content of the fifth post",
	"This is the content of the sixth post",
}

// SeedTextPosts inserts the starter text posts if the table is empty.
// Safe to run on every startup.
func SeedTextPosts(db *gorm.DB) error {
	var total int64
	if err := db.Model(&post.TextPost{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	base := time.Now().Add(-time.Duration(len(seedTitles)) * time.Minute)
	posts := make([]post.TextPost, 0, len(seedTitles))
	for i := range seedTitles {
		ts := base.Add(time.Duration(i) * time.Minute)
		posts = append(posts, post.TextPost{
			ID:        uuid.New(),
			Title:     seedTitles[i],
			Content:   seedContents[i],
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}

	if err := db.Create(&posts).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d text posts", len(posts))
	return nil
}
