package service

import (
	"context"

	"foodiegram/internal/models"
)

// Function-field stubs keep each test's behavior next to its assertions.
type stubUserRepo struct {
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	create        func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}

type stubPostRepo struct {
	create      func(ctx context.Context, post *models.Post) error
	getByID     func(ctx context.Context, id uint) (*models.Post, error)
	list        func(ctx context.Context) ([]*models.Post, error)
	delete      func(ctx context.Context, id uint) error
	toggleLike  func(ctx context.Context, userID, postID uint) (bool, error)
	likeSummary func(ctx context.Context, postID uint) (*models.LikeSummary, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.create(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByID(ctx, id)
}

func (s *stubPostRepo) List(ctx context.Context) ([]*models.Post, error) {
	return s.list(ctx)
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}

func (s *stubPostRepo) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.toggleLike(ctx, userID, postID)
}

func (s *stubPostRepo) LikeSummary(ctx context.Context, postID uint) (*models.LikeSummary, error) {
	return s.likeSummary(ctx, postID)
}

type stubCommentRepo struct {
	create     func(ctx context.Context, comment *models.Comment) error
	getByID    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPost func(ctx context.Context, postID uint) ([]models.Comment, error)
	delete     func(ctx context.Context, id uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.create(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPost(ctx, postID)
}

func (s *stubCommentRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}
