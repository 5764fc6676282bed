// Package service implements the application's business rules on top of the
// repository layer: input validation, author snapshots and ownership checks.
package service

import (
	"context"
	"strings"

	"foodiegram/internal/models"
	"foodiegram/internal/repository"
)

const maxCaptionLen = 500

// PostService owns the post aggregate's mutation rules.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the fields of a post creation request.
type CreatePostInput struct {
	UserID   uint
	ImageURL string
	Caption  string
}

// DeletePostInput identifies the post to delete and who is asking.
type DeletePostInput struct {
	UserID uint
	PostID uint
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// ListPosts returns the whole feed, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns one post with its embedded engagement.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost validates input, snapshots the author's display fields and
// persists the post. The snapshot is a value copy: later profile changes do
// not alter this post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		return nil, models.NewValidationError("image_url is required")
	}

	caption := strings.TrimSpace(in.Caption)
	if len(caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 500 characters)")
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	avatar := author.Avatar
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	post := &models.Post{
		UserID:         author.ID,
		AuthorUsername: author.Username,
		AuthorAvatar:   avatar,
		ImageURL:       imageURL,
		Caption:        caption,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// ToggleLike flips the user's like on the post and returns the resulting
// like set. Calling it twice returns the set to its original membership.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.LikeSummary, bool, error) {
	// Existence check first so an absent post is NotFound, not a dangling like.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, false, err
	}

	liked, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, false, err
	}

	summary, err := s.postRepo.LikeSummary(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return summary, liked, nil
}

// DeletePost removes the post and everything embedded in it. Only the post's
// owner may delete it.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
