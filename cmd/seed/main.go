// Command seed fills the configured database with demo users and posts.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"foodiegram/internal/config"
	"foodiegram/internal/database"
	"foodiegram/internal/seed"
)

func main() {
	users := flag.Int("users", seed.DefaultOptions.Users, "number of demo users")
	posts := flag.Int("posts", seed.DefaultOptions.PostsPerUser, "posts per user")
	comments := flag.Int("comments", seed.DefaultOptions.CommentsPerPost, "comments per post")
	likes := flag.Int("likes", seed.DefaultOptions.LikesPerPost, "likes per post")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connect failed", "error", err)
		os.Exit(1)
	}

	opts := seed.Options{
		Users:           *users,
		PostsPerUser:    *posts,
		CommentsPerPost: *comments,
		LikesPerPost:    *likes,
	}
	if err := seed.Run(context.Background(), db, opts); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}
