package models

import (
	"time"
)

const (
	MinCommentLength = 4
	MaxCommentLength = 400
)

type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PostID    int64     `gorm:"not null;index" json:"post_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentView is a comment with its author's username.
type CommentView struct {
	Comment
	Username string `json:"username"`
}
