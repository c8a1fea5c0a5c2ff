package models

import (
	"time"
)

const (
	MaxContactLength = 50
	MaxBioLength     = 800
)

type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	Verified  bool      `gorm:"default:false" json:"verified"`
	Contact   string    `gorm:"size:50" json:"contact"`
	Bio       string    `gorm:"type:text" json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VerificationToken is consumed only by the email verification flow.
type VerificationToken struct {
	UserID int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Token  string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	SentAt time.Time `gorm:"not null" json:"sent_at"`
}

// ProfileFieldLimits maps each editable profile column to its maximum length.
var ProfileFieldLimits = map[string]int{
	"contact": MaxContactLength,
	"bio":     MaxBioLength,
}
