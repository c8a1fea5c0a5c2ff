package store

import (
	"context"

	"gorm.io/gorm/clause"

	"soundthread/internal/models"
)

// CreateLike is idempotent: liking twice leaves one row.
func (s *Store) CreateLike(ctx context.Context, postID, userID int64) error {
	like := models.Like{PostID: postID, UserID: userID}
	if err := s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
		return fault("create like", err)
	}
	return nil
}

// DeleteLike is idempotent: removing an absent like is not an error.
func (s *Store) DeleteLike(ctx context.Context, postID, userID int64) error {
	err := s.conn(ctx).Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{}).Error
	if err != nil {
		return fault("delete like", err)
	}
	return nil
}

func (s *Store) HasLike(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	if err != nil {
		return false, fault("has like", err)
	}
	return count > 0, nil
}

func (s *Store) CountLikes(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := s.conn(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fault("count likes", err)
	}
	return count, nil
}

func (s *Store) DeleteLikesByPost(ctx context.Context, postID int64) error {
	if err := s.conn(ctx).Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
		return fault("delete likes by post", err)
	}
	return nil
}
