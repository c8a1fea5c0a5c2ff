package store

import (
	"context"

	"soundthread/internal/models"
)

// CreatePost inserts the post and its tag-set in one transaction.
func (s *Store) CreatePost(ctx context.Context, post *models.Post, tags models.Tags) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.conn(ctx).Create(post).Error; err != nil {
			return fault("create post", err)
		}
		tags.PostID = post.ID
		return tx.CreateTags(ctx, &tags)
	})
}

func (s *Store) PostByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := s.conn(ctx).First(&post, id).Error; err != nil {
		return nil, lookup("post by id", err)
	}
	return &post, nil
}

func (s *Store) PostExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.conn(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fault("post exists", err)
	}
	return count > 0, nil
}

// PostDetail loads the post with its author's username and like count.
func (s *Store) PostDetail(ctx context.Context, id int64) (*models.PostDetail, error) {
	var detail models.PostDetail
	err := s.conn(ctx).
		Table("posts").
		Select("posts.*, users.username AS username, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.id = ?", id).
		Take(&detail).Error
	if err != nil {
		return nil, lookup("post detail", err)
	}
	return &detail, nil
}

// PostsByUser lists the highlights of one user's posts, newest first.
func (s *Store) PostsByUser(ctx context.Context, userID int64, limit int) ([]models.PostHighlight, error) {
	var out []models.PostHighlight
	err := s.conn(ctx).
		Table("posts").
		Select("posts.id, users.username, posts.title, posts.description").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, fault("posts by user", err)
	}
	return out, nil
}

func (s *Store) UpdatePostDescription(ctx context.Context, id int64, description string) error {
	res := s.conn(ctx).Model(&models.Post{}).Where("id = ?", id).Update("description", description)
	return affected("update post description", res)
}

// DeletePostRow removes the post row only.
func (s *Store) DeletePostRow(ctx context.Context, id int64) error {
	res := s.conn(ctx).Where("id = ?", id).Delete(&models.Post{})
	return affected("delete post", res)
}
