package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatube/backend/internal/models"
)

// Follow creates the edge user -> author and reports whether a new edge was
// written. An existing edge is not an error: the composite primary key
// rejects the duplicate and the insert becomes a no-op.
func (s *Store) Follow(ctx context.Context, userID, authorID uint) (bool, error) {
	edge := models.Follow{UserID: userID, AuthorID: authorID}
	result := s.db.WithContext(ctx).
		Omit("User", "Author").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if result.Error != nil {
		return false, fmt.Errorf("create follow: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Unfollow removes the edge user -> author and reports whether one existed.
func (s *Store) Unfollow(ctx context.Context, userID, authorID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, fmt.Errorf("delete follow: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// IsFollowing reports whether user follows author.
func (s *Store) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return n > 0, nil
}

// FollowCounts returns how many users follow userID and how many authors userID follows.
func (s *Store) FollowCounts(ctx context.Context, userID uint) (followers, following int64, err error) {
	db := s.db.WithContext(ctx)
	if err = db.Model(&models.Follow{}).Where("author_id = ?", userID).Count(&followers).Error; err != nil {
		return 0, 0, fmt.Errorf("count followers: %w", err)
	}
	if err = db.Model(&models.Follow{}).Where("user_id = ?", userID).Count(&following).Error; err != nil {
		return 0, 0, fmt.Errorf("count following: %w", err)
	}
	return followers, following, nil
}

// FollowerIDs lists the users following authorID.
func (s *Store) FollowerIDs(ctx context.Context, authorID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("author_id = ?", authorID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	return ids, nil
}
