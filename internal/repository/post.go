package repository

import (
	"context"
	"errors"
	"time"

	"foodiegram/internal/cache"
	"foodiegram/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
	// ToggleLike flips userID's membership in the post's like set and reports
	// whether the post is liked afterwards.
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
	LikeSummary(ctx context.Context, postID uint) (*models.LikeSummary, error)
}

type postRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB, c *cache.Cache) PostRepository {
	return &postRepository{db: db, cache: c}
}

// applyEngagement adds the like_count subquery so a listing is a single query.
// The count and the liked_by set are both derived from the likes table, which
// keeps like_count == |liked_by| true by construction.
func (r *postRepository) applyEngagement(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count")
}

// preloadComments orders embedded comments most-recent-first.
func preloadComments(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, id DESC")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewStorageError(err)
	}
	if post.LikedBy == nil {
		post.LikedBy = []uint{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	r.cache.Invalidate(ctx, cache.FeedKey)
	return nil
}

// GetByID reads one post, cache-aside under its post key. Every mutation of
// the post or its engagement invalidates that key.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		if err := r.applyEngagement(r.db.WithContext(ctx)).
			Preload("Comments", preloadComments).
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewStorageError(err)
		}
		return r.attachLikedBy(ctx, []*models.Post{&post})
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns every post, newest first. No pagination: the feed is the whole
// table at this scope, cached briefly for anonymous reads.
func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.cache.Aside(ctx, cache.FeedKey, &posts, cache.FeedTTL, func() error {
		if err := r.applyEngagement(r.db.WithContext(ctx)).
			Preload("Comments", preloadComments).
			Order("created_at DESC, id DESC").
			Find(&posts).Error; err != nil {
			return models.NewStorageError(err)
		}
		return r.attachLikedBy(ctx, posts)
	})
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// attachLikedBy fills the LikedBy sets for a batch of posts in one query.
func (r *postRepository) attachLikedBy(ctx context.Context, posts []*models.Post) error {
	for _, p := range posts {
		if p.LikedBy == nil {
			p.LikedBy = []uint{}
		}
		if p.Comments == nil {
			p.Comments = []models.Comment{}
		}
	}
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, len(posts))
	byID := make(map[uint]*models.Post, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Where("post_id IN ?", ids).
		Order("id").
		Find(&likes).Error; err != nil {
		return models.NewStorageError(err)
	}

	for _, l := range likes {
		if p := byID[l.PostID]; p != nil {
			p.LikedBy = append(p.LikedBy, l.UserID)
		}
	}
	return nil
}

// Delete removes the post together with its comments and likes in one
// transaction; embedded engagement never survives its post.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewStorageError(err)
	}
	r.cache.Invalidate(ctx, cache.PostKey(id), cache.FeedKey)
	return nil
}

// ToggleLike uses INSERT ... ON CONFLICT DO NOTHING so set membership is
// decided by the storage engine, not by a read-modify-write in application
// memory. Two concurrent toggles on the same post still converge to a set
// with no duplicates and a matching derived count.
func (r *postRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID, time.Now().UTC(),
	)
	if res.Error != nil {
		return false, models.NewStorageError(res.Error)
	}

	liked := res.RowsAffected == 1
	if !liked {
		// Already a member: the toggle removes the like.
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{}).Error; err != nil {
			return false, models.NewStorageError(err)
		}
	}

	r.cache.Invalidate(ctx, cache.PostKey(postID), cache.FeedKey)
	return liked, nil
}

func (r *postRepository) LikeSummary(ctx context.Context, postID uint) (*models.LikeSummary, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id").
		Find(&likes).Error; err != nil {
		return nil, models.NewStorageError(err)
	}

	summary := &models.LikeSummary{LikedBy: make([]uint, 0, len(likes))}
	for _, l := range likes {
		summary.LikedBy = append(summary.LikedBy, l.UserID)
	}
	summary.LikeCount = len(summary.LikedBy)
	return summary, nil
}
