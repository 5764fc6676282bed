package service

import (
	"context"
	"strings"

	"foodiegram/internal/models"
	"foodiegram/internal/repository"
)

const maxCommentLen = 2000

// CommentService owns the comment mutation rules of the post aggregate.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// AddCommentInput carries the fields of a comment creation request.
type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

// DeleteCommentInput identifies the comment to delete and who is asking.
type DeleteCommentInput struct {
	UserID    uint
	PostID    uint
	CommentID uint
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment validates the text, snapshots the author's username and prepends
// the comment to the post's list. Returns the post's comments newest-first.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:         in.PostID,
		UserID:         author.ID,
		AuthorUsername: author.Username,
		Text:           text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, in.PostID)
}

// ListComments returns the post's comments newest-first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes exactly one comment. Allowed for the comment's author
// and for the post's owner; everyone else gets Unauthorized.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != in.PostID {
		// A comment id from another post is indistinguishable from absent.
		return nil, models.NewNotFoundError("Comment", in.CommentID)
	}

	if in.UserID != comment.UserID && in.UserID != post.UserID {
		return nil, models.NewUnauthorizedError("Only the comment author or the post owner can delete a comment")
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, in.PostID)
}
