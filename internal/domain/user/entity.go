package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents the users table. Credential material lives here but is
// only ever touched by the auth service.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamptz" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
