package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"soundthread/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.conn(ctx).Create(user).Error; err != nil {
		return fault("create user", err)
	}
	return nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).First(&user, id).Error; err != nil {
		return nil, lookup("user by id", err)
	}
	return &user, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, lookup("user by username", err)
	}
	return &user, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, lookup("user by email", err)
	}
	return &user, nil
}

func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := s.conn(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fault("username taken", err)
	}
	return count > 0, nil
}

func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.conn(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fault("email taken", err)
	}
	return count > 0, nil
}

func (s *Store) MarkVerified(ctx context.Context, userID int64) error {
	res := s.conn(ctx).Model(&models.User{}).Where("id = ?", userID).Update("verified", true)
	return affected("mark verified", res)
}

// UpdateProfileField writes one of the free-text profile columns.
func (s *Store) UpdateProfileField(ctx context.Context, userID int64, field, value string) error {
	if _, ok := models.ProfileFieldLimits[field]; !ok {
		return fmt.Errorf("update profile: unknown field %q", field)
	}
	res := s.conn(ctx).Model(&models.User{}).Where("id = ?", userID).Update(field, value)
	return affected("update profile", res)
}

// SaveVerificationToken replaces any previous token of the user.
func (s *Store) SaveVerificationToken(ctx context.Context, userID int64, token string, sentAt time.Time) error {
	row := models.VerificationToken{UserID: userID, Token: token, SentAt: sentAt}
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "sent_at"}),
	}).Create(&row).Error
	if err != nil {
		return fault("save verification token", err)
	}
	return nil
}

func (s *Store) VerificationTokenByValue(ctx context.Context, token string) (*models.VerificationToken, error) {
	var row models.VerificationToken
	if err := s.conn(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, lookup("verification token", err)
	}
	return &row, nil
}

func (s *Store) DeleteVerificationToken(ctx context.Context, userID int64) error {
	if err := s.conn(ctx).Where("user_id = ?", userID).Delete(&models.VerificationToken{}).Error; err != nil {
		return fault("delete verification token", err)
	}
	return nil
}
