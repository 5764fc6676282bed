// Command migrate applies the database schema. Production deploys run this
// once before starting the server, which skips AutoMigrate outside
// development.
package main

import (
	"log/slog"
	"os"

	"foodiegram/internal/config"
	"foodiegram/internal/database"
	"foodiegram/internal/models"
)

func main() {
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

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var users, posts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	slog.Info("migration complete", "users", users, "posts", posts)
}
