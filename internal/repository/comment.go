package repository

import (
	"context"
	"errors"

	"foodiegram/internal/cache"
	"foodiegram/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *gorm.DB, c *cache.Cache) CommentRepository {
	return &commentRepository{db: db, cache: c}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewStorageError(err)
	}
	r.cache.Invalidate(ctx, cache.PostKey(comment.PostID), cache.FeedKey)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewStorageError(err)
	}
	return &comment, nil
}

// ListByPost returns the post's comments most-recent-first.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, models.NewStorageError(err)
	}
	return comments, nil
}

// Delete hard-deletes the comment; there is no tombstone.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	comment, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewStorageError(err)
	}
	r.cache.Invalidate(ctx, cache.PostKey(comment.PostID), cache.FeedKey)
	return nil
}
