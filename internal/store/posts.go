package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"yatube/backend/internal/models"
)

// PostFilter narrows a post listing. Zero fields are ignored.
type PostFilter struct {
	AuthorID   uint
	GroupID    uint
	FollowerID uint // posts by authors this user follows
}

// PostsQuery returns the filtered listing newest first. Posts sharing a
// timestamp are ordered by id so pages stay stable between requests.
func (s *Store) PostsQuery(ctx context.Context, f PostFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Post{})
	if f.AuthorID != 0 {
		q = q.Where("posts.author_id = ?", f.AuthorID)
	}
	if f.GroupID != 0 {
		q = q.Where("posts.group_id = ?", f.GroupID)
	}
	if f.FollowerID != 0 {
		followed := s.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", f.FollowerID)
		q = q.Where("posts.author_id IN (?)", followed)
	}
	return q.Order("posts.created_at DESC").Order("posts.id DESC")
}

// WithPostRelations preloads what a rendered post needs.
func WithPostRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Group")
}

// CountPosts counts the posts matching f.
func (s *Store) CountPosts(ctx context.Context, f PostFilter) (int64, error) {
	var n int64
	if err := s.PostsQuery(ctx, f).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// CreatePost inserts a post. CreatedAt is assigned by the store.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	if err := s.db.WithContext(ctx).Omit("Author", "Group", "Comments").Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// UpdatePost persists the mutable fields of a post: text, group and image.
func (s *Store) UpdatePost(ctx context.Context, post *models.Post) error {
	result := s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"text":     post.Text,
		"group_id": post.GroupID,
		"image":    post.Image,
	})
	if result.Error != nil {
		return fmt.Errorf("update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PostByID finds a post with its author and group.
func (s *Store) PostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := WithPostRelations(s.db.WithContext(ctx)).First(&post, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

// DeletePost removes a post together with its comments.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
