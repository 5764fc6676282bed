// Package server wires the HTTP surface: the fiber app, its middleware stack
// and the route table.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"foodiegram/internal/cache"
	"foodiegram/internal/config"
	"foodiegram/internal/database"
	"foodiegram/internal/middleware"
	"foodiegram/internal/repository"
	"foodiegram/internal/service"
)

// Server holds the fiber app and every dependency the handlers reach for.
type Server struct {
	app    *fiber.App
	config *config.Config
	db     *gorm.DB
	cache  *cache.Cache

	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository

	postService    *service.PostService
	commentService *service.CommentService
}

// NewServer connects to the database and cache described by cfg and builds
// the full dependency graph.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	c := cache.New(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, c), nil
}

// NewServerWithDeps builds a server from already-constructed dependencies.
// Tests use it with a sqlite database and a miniredis-backed cache.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, c *cache.Cache) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db, c)
	commentRepo := repository.NewCommentRepository(db, c)

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:      "foodiegram",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}),
		config:         cfg,
		db:             db,
		cache:          c,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		postService:    service.NewPostService(postRepo, userRepo),
		commentService: service.NewCommentService(commentRepo, postRepo, userRepo),
	}

	s.SetupMiddleware()
	s.SetupRoutes()
	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// SetupMiddleware installs the global middleware stack. Order matters:
// recover first, then request identity, then everything that logs or counts.
func (s *Server) SetupMiddleware() {
	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(middleware.ContextMiddleware())
	s.app.Use(middleware.TracingMiddleware())

	prom := middleware.InitMetrics("foodiegram")
	prom.RegisterAt(s.app, "/metrics")
	s.app.Use(middleware.MetricsMiddleware(prom))

	s.app.Use(helmet.New())
	s.app.Use(middleware.StructuredLogger())

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	s.app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))
}

// SetupRoutes declares the route table. Feed reads are anonymous; every
// mutation requires a valid token, attached per route because a group-level
// middleware would match all methods on the prefix.
func (s *Server) SetupRoutes() {
	s.app.Get("/health/live", s.HealthLive)
	s.app.Get("/health/ready", s.HealthReady)

	api := s.app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.cache.Client(), 10, time.Minute), s.Register)
	auth.Post("/login", middleware.RateLimit(s.cache.Client(), 20, time.Minute), s.Login)

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.AuthRequired(), s.CreatePost)
	// The comment route registers before /:id so "comment" never parses as
	// a post id.
	posts.Delete("/:postId/comment/:commentId", s.AuthRequired(), s.DeleteComment)
	posts.Post("/:id/comment", s.AuthRequired(), s.AddComment)
	posts.Put("/:id/like", s.AuthRequired(), s.ToggleLike)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.AuthRequired(), s.DeletePost)
}

// HealthLive reports process liveness.
func (s *Server) HealthLive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HealthReady reports readiness: the database must answer a ping. The cache
// is optional by design, so it does not gate readiness.
func (s *Server) HealthReady(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  "database unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Start runs the server until ctx is cancelled, then drains connections.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(":" + s.config.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutting down", "reason", ctx.Err())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}
