package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"soundthread/internal/listing"
	"soundthread/internal/models"
)

var (
	// ErrNotFound reports that a looked-up row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStoreFault wraps every other backing-store failure.
	ErrStoreFault = errors.New("store fault")
)

// Store is the typed accessor layer over the relations. It holds no business
// rules and never cascades on its own.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn against a Store bound to a single transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// ListPosts runs the listing query described by q.
func (s *Store) ListPosts(ctx context.Context, q listing.Query) ([]models.PostHighlight, error) {
	var out []models.PostHighlight
	if err := listing.Build(s.db.WithContext(ctx), q).Scan(&out).Error; err != nil {
		return nil, fault("list posts", err)
	}
	return out, nil
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func fault(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFault, err)
}

// lookup maps a First() error onto ErrNotFound or a fault.
func lookup(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fault(op, err)
}

// affected maps an update/delete result onto ErrNotFound when no row matched.
func affected(op string, res *gorm.DB) error {
	if res.Error != nil {
		return fault(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
