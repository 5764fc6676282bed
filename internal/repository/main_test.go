package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodiegram/internal/database"
	"foodiegram/internal/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own namespace so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: "hashed-password",
		Avatar:   models.DefaultAvatar,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, caption string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:         author.ID,
		AuthorUsername: author.Username,
		AuthorAvatar:   author.Avatar,
		ImageURL:       "https://example.com/food.jpg",
		Caption:        caption,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
