// Package seed provides helpers to create demo data for the application
// database. Intended for development only.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodiegram/internal/models"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, rnd: rand.New(rand.NewSource(seed))}
}

// CreateUser persists a demo user. All demo accounts share the password
// "password123" so they can be logged into by hand.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), f.rnd.Intn(1000)),
		Password: string(hash),
		Avatar:   fmt.Sprintf("https://picsum.photos/seed/%s/100/100", gofakeit.UUID()),
	}
	if err := f.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post authored by user with a food photo and caption.
func (f *Factory) CreatePost(ctx context.Context, user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:         user.ID,
		AuthorUsername: user.Username,
		AuthorAvatar:   user.Avatar,
		ImageURL:       fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Caption:        f.caption(),
		// spread creation times over the last two weeks so the feed ordering
		// is visible in demos
		CreatedAt: time.Now().Add(-time.Duration(f.rnd.Intn(14*24)) * time.Hour),
	}
	if err := f.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by user on post.
func (f *Factory) CreateComment(ctx context.Context, user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:         post.ID,
		UserID:         user.ID,
		AuthorUsername: user.Username,
		Text:           gofakeit.Sentence(3 + f.rnd.Intn(8)),
	}
	if err := f.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records user liking post, ignoring duplicates.
func (f *Factory) CreateLike(ctx context.Context, user *models.User, post *models.Post) error {
	return f.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		user.ID, post.ID, time.Now().UTC(),
	).Error
}

func (f *Factory) caption() string {
	dishes := []string{
		gofakeit.Dinner(),
		gofakeit.Lunch(),
		gofakeit.Breakfast(),
		gofakeit.Dessert(),
		gofakeit.Snack(),
	}
	dish := dishes[f.rnd.Intn(len(dishes))]

	templates := []string{
		"Tried making %s tonight!",
		"%s from my favorite spot downtown",
		"Homemade %s, recipe in comments",
		"Can never say no to %s",
		"Sunday brunch: %s",
	}
	return fmt.Sprintf(templates[f.rnd.Intn(len(templates))], dish)
}
