package models

// Like marks a post as liked by a user. Presence is the whole state.
type Like struct {
	PostID int64 `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID int64 `gorm:"primaryKey;autoIncrement:false;index" json:"user_id"`
}
