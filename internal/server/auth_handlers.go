package server

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodiegram/internal/models"
	"foodiegram/internal/observability"
	"foodiegram/internal/validation"
)

const (
	tokenIssuer   = "foodiegram-api"
	tokenAudience = "foodiegram-client"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new account and returns a fresh token, so the client
// is signed in immediately after registration.
func (s *Server) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}

	username := strings.TrimSpace(req.Username)
	if err := validation.ValidateUsername(username); err != nil {
		observability.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return respondError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		observability.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return respondError(c, models.NewValidationError(err.Error()))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(c, models.NewStorageError(err))
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Avatar:   models.DefaultAvatar,
	}
	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		observability.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return respondError(c, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return respondError(c, models.NewStorageError(err))
	}

	observability.AuthAttempts.WithLabelValues("register", "success").Inc()
	slog.InfoContext(c.UserContext(), "user registered", "user_id", user.ID, "username", user.Username)
	return c.JSON(tokenResponse{Token: token})
}

// Login verifies the credentials and returns a token. Unknown username and
// wrong password produce the same response.
func (s *Server) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.userRepo.GetByUsername(c.UserContext(), strings.TrimSpace(req.Username))
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		observability.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return respondError(c, models.NewInvalidCredentialsError())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		observability.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return respondError(c, models.NewInvalidCredentialsError())
	}

	token, err := s.generateToken(user)
	if err != nil {
		return respondError(c, models.NewStorageError(err))
	}

	observability.AuthAttempts.WithLabelValues("login", "success").Inc()
	slog.InfoContext(c.UserContext(), "user logged in", "user_id", user.ID)
	return c.JSON(tokenResponse{Token: token})
}

func (s *Server) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		// The credential is bound to the user id, not the username.
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// AuthRequired validates the bearer token, resolves the subject to a user and
// stores the user's id in the request locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return respondError(c, models.NewUnauthenticatedError("Missing or malformed token"))
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.config.JWTSecret), nil
		},
			jwt.WithIssuer(tokenIssuer),
			jwt.WithAudience(tokenAudience),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			return respondError(c, models.NewUnauthenticatedError("Invalid or expired token"))
		}

		if s.isTokenRevoked(c, claims.ID) {
			return respondError(c, models.NewUnauthenticatedError("Token revoked"))
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err != nil {
			return respondError(c, models.NewUnauthenticatedError("Invalid or expired token"))
		}

		user, err := s.userRepo.GetByID(c.UserContext(), uint(userID))
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
				// The account vanished between issuing and using the token.
				return respondError(c, models.NewUnauthenticatedError("Invalid or expired token"))
			}
			return respondError(c, err)
		}

		c.Locals("userID", user.ID)
		c.Locals("username", user.Username)
		return c.Next()
	}
}

// isTokenRevoked checks the jti blacklist. Without Redis nothing is ever
// revoked; tokens simply ride out their one hour TTL.
func (s *Server) isTokenRevoked(c *fiber.Ctx, jti string) bool {
	rdb := s.cache.Client()
	if rdb == nil || jti == "" {
		return false
	}
	n, err := rdb.Exists(c.UserContext(), "revoked:"+jti).Result()
	return err == nil && n > 0
}
