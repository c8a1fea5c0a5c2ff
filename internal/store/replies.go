package store

import (
	"context"

	"soundthread/internal/models"
)

func (s *Store) CreateReply(ctx context.Context, reply *models.Reply) error {
	if err := s.conn(ctx).Create(reply).Error; err != nil {
		return fault("create reply", err)
	}
	return nil
}

func (s *Store) ReplyByID(ctx context.Context, id int64) (*models.Reply, error) {
	var reply models.Reply
	if err := s.conn(ctx).First(&reply, id).Error; err != nil {
		return nil, lookup("reply by id", err)
	}
	return &reply, nil
}

// RepliesByComment fetches the whole chain of a comment in one query,
// oldest first.
func (s *Store) RepliesByComment(ctx context.Context, commentID int64) ([]models.ReplyView, error) {
	var out []models.ReplyView
	err := s.conn(ctx).
		Table("replies").
		Select("replies.*, users.username AS username").
		Joins("JOIN users ON users.id = replies.user_id").
		Where("replies.comment_id = ?", commentID).
		Order("replies.created_at ASC, replies.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fault("replies by comment", err)
	}
	return out, nil
}

// UpdateReplyText replaces the body only; chain pointers are never written.
func (s *Store) UpdateReplyText(ctx context.Context, id int64, text string) error {
	res := s.conn(ctx).Model(&models.Reply{}).Where("id = ?", id).Update("text", text)
	return affected("update reply", res)
}

// DeleteReplyRow removes one reply. Replies pointing at it keep their
// ReplyID.
func (s *Store) DeleteReplyRow(ctx context.Context, id int64) error {
	res := s.conn(ctx).Where("id = ?", id).Delete(&models.Reply{})
	return affected("delete reply", res)
}

func (s *Store) DeleteRepliesByComment(ctx context.Context, commentID int64) error {
	if err := s.conn(ctx).Where("comment_id = ?", commentID).Delete(&models.Reply{}).Error; err != nil {
		return fault("delete replies by comment", err)
	}
	return nil
}

func (s *Store) DeleteRepliesByPost(ctx context.Context, postID int64) error {
	if err := s.conn(ctx).Where("post_id = ?", postID).Delete(&models.Reply{}).Error; err != nil {
		return fault("delete replies by post", err)
	}
	return nil
}
