package server

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"foodiegram/internal/models"
)

// parseID parses a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user's id set by AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, error) {
	uid, ok := c.Locals("userID").(uint)
	if !ok || uid == 0 {
		return 0, models.NewUnauthenticatedError("Authentication required")
	}
	return uid, nil
}

// respondError maps an error to its HTTP status and standardized body.
// Unknown errors become opaque 500s; their cause goes to the log, not the
// client.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == models.CodeStorage {
			slog.ErrorContext(c.UserContext(), "storage error", "error", appErr.Err)
			return models.RespondWithError(c, appErr.HTTPStatus(), models.NewStorageError(nil))
		}
		return models.RespondWithError(c, appErr.HTTPStatus(), appErr)
	}

	slog.ErrorContext(c.UserContext(), "unhandled error", "error", err)
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewStorageError(nil))
}
