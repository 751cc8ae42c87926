package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field length limits enforced by validation before anything reaches the store.
const (
	EmailMaxLength     = 255
	PasswordMinLength  = 8
	PasswordMaxLength  = 255
	FirstNameMaxLength = 100
	LastNameMaxLength  = 100
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
