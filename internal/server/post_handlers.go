package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"foodiegram/internal/models"
	"foodiegram/internal/observability"
	"foodiegram/internal/service"
)

type createPostRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

// GetPosts returns the whole feed, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost returns a single post with its comments and like set.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost creates a post authored by the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:   userID,
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	})
	if err != nil {
		return respondError(c, err)
	}

	observability.PostsCreated.Inc()
	slog.InfoContext(c.UserContext(), "post created", "post_id", post.ID, "user_id", userID)
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleLike flips the caller's like on the post and returns the resulting
// like count and membership.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	postID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	summary, liked, err := s.postService.ToggleLike(c.UserContext(), userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	action := "unlike"
	if liked {
		action = "like"
	}
	observability.LikeToggles.WithLabelValues(action).Inc()
	return c.JSON(summary)
}

// DeletePost removes the caller's post together with its comments and likes.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	postID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return respondError(c, err)
	}

	slog.InfoContext(c.UserContext(), "post deleted", "post_id", postID, "user_id", userID)
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
