package store

import (
	"context"

	"soundthread/internal/models"
)

func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := s.conn(ctx).Create(comment).Error; err != nil {
		return fault("create comment", err)
	}
	return nil
}

func (s *Store) CommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := s.conn(ctx).First(&comment, id).Error; err != nil {
		return nil, lookup("comment by id", err)
	}
	return &comment, nil
}

// CommentsByPost lists a post's comments oldest first.
func (s *Store) CommentsByPost(ctx context.Context, postID int64) ([]models.CommentView, error) {
	var out []models.CommentView
	err := s.conn(ctx).
		Table("comments").
		Select("comments.*, users.username AS username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fault("comments by post", err)
	}
	return out, nil
}

// UpdateCommentText replaces the body only.
func (s *Store) UpdateCommentText(ctx context.Context, id int64, text string) error {
	res := s.conn(ctx).Model(&models.Comment{}).Where("id = ?", id).Update("text", text)
	return affected("update comment", res)
}

func (s *Store) DeleteCommentRow(ctx context.Context, id int64) error {
	res := s.conn(ctx).Where("id = ?", id).Delete(&models.Comment{})
	return affected("delete comment", res)
}

func (s *Store) DeleteCommentsByPost(ctx context.Context, postID int64) error {
	if err := s.conn(ctx).Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		return fault("delete comments by post", err)
	}
	return nil
}
