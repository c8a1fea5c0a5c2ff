package store

import (
	"context"
	"errors"

	"gorm.io/gorm/clause"

	"soundthread/internal/models"
)

func (s *Store) CreateTags(ctx context.Context, tags *models.Tags) error {
	if err := s.conn(ctx).Create(tags).Error; err != nil {
		return fault("create tags", err)
	}
	return nil
}

// TagsByPost returns ErrNotFound when the post has no tag-set row.
func (s *Store) TagsByPost(ctx context.Context, postID int64) (*models.Tags, error) {
	var tags models.Tags
	if err := s.conn(ctx).Where("post_id = ?", postID).First(&tags).Error; err != nil {
		return nil, lookup("tags by post", err)
	}
	return &tags, nil
}

// GetOrCreateTags returns the post's tag-set, inserting an all-false row
// first when none exists yet.
func (s *Store) GetOrCreateTags(ctx context.Context, postID int64) (*models.Tags, error) {
	tags, err := s.TagsByPost(ctx, postID)
	if err == nil {
		return tags, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// A concurrent reader may have inserted the row first.
	blank := models.Tags{PostID: postID}
	if err := s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&blank).Error; err != nil {
		return nil, fault("create default tags", err)
	}
	return s.TagsByPost(ctx, postID)
}

func (s *Store) DeleteTagsByPost(ctx context.Context, postID int64) error {
	if err := s.conn(ctx).Where("post_id = ?", postID).Delete(&models.Tags{}).Error; err != nil {
		return fault("delete tags", err)
	}
	return nil
}
