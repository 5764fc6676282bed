package seed

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"foodiegram/internal/models"
)

// Options controls how much demo data Run creates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	LikesPerPost    int
}

// DefaultOptions is a small but lively feed.
var DefaultOptions = Options{
	Users:           8,
	PostsPerUser:    3,
	CommentsPerPost: 2,
	LikesPerPost:    4,
}

// Run populates the database with demo users, posts, comments and likes.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser(ctx)
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	for _, u := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(ctx, u)
			if err != nil {
				return err
			}

			for j := 0; j < opts.CommentsPerPost; j++ {
				commenter := users[f.rnd.Intn(len(users))]
				if _, err := f.CreateComment(ctx, commenter, post); err != nil {
					return err
				}
			}

			for j := 0; j < opts.LikesPerPost; j++ {
				liker := users[f.rnd.Intn(len(users))]
				if err := f.CreateLike(ctx, liker, post); err != nil {
					return err
				}
			}
		}
	}

	slog.Info("seed complete",
		"users", opts.Users,
		"posts", opts.Users*opts.PostsPerUser,
	)
	return nil
}
