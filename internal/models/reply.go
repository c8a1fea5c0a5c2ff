package models

import (
	"time"
)

// Reply is one entry of the chain rooted at a comment. CommentID is shared by
// every reply of the chain regardless of depth; ReplyID points at the reply
// being answered, nil when answering the comment itself. PostID always equals
// the comment's PostID.
type Reply struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CommentID int64     `gorm:"not null;index" json:"comment_id"`
	ReplyID   *int64    `gorm:"index" json:"reply_id"`
	PostID    int64     `gorm:"not null;index" json:"post_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReplyView is a reply with its author's username.
type ReplyView struct {
	Reply
	Username string `json:"username"`
}
