package post

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// File types a media post can carry.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// TextPost is the early schema version: plain title/content records with
// no ownership and no media columns. It is deliberately kept as a table of
// its own rather than folded into Post; the two variants never shared a
// migration path.
type TextPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (TextPost) TableName() string {
	return "text_posts"
}

// Post represents the posts table. A row only ever exists for a fully
// completed upload: url, file_type and file_name are set once by the
// upload workflow and never recomputed.
type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	FileType  string    `gorm:"type:varchar(50);not null" json:"file_type"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"file_name"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// FileTypeFor derives the stored file type from the declared content type:
// video iff it starts with "video/", image otherwise.
func FileTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return FileTypeVideo
	}
	return FileTypeImage
}
