package models

import (
	"time"
)

// MaxAudioSize is the largest accepted audio payload, in bytes.
const MaxAudioSize = 1 << 20

type Post struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:60;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Audio       string    `gorm:"not null" json:"audio"` // storage reference, upload happens elsewhere
	AudioSize   int64     `gorm:"not null" json:"audio_size"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostHighlight is the listing projection.
type PostHighlight struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PostDetail is a post joined with its author and like count.
type PostDetail struct {
	Post
	Username string `json:"username"`
	Likes    int64  `json:"likes"`
}
