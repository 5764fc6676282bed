package server

import (
	"github.com/gofiber/fiber/v2"

	"foodiegram/internal/models"
	"foodiegram/internal/observability"
	"foodiegram/internal/service"
)

type addCommentRequest struct {
	Text string `json:"text"`
}

// AddComment adds a comment to the post and returns the post's full comment
// list, newest first, so the client can re-render without a second fetch.
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	postID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req addCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}

	comments, err := s.commentService.AddComment(c.UserContext(), service.AddCommentInput{
		UserID: userID,
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}

	observability.CommentsCreated.Inc()
	return c.JSON(fiber.Map{"comments": comments})
}

// DeleteComment removes one comment and returns the remaining comments.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	comments, err := s.commentService.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		UserID:    userID,
		PostID:    postID,
		CommentID: commentID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}
