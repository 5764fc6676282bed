package models

import "time"

// Like records that a user liked a post. The unique composite index makes
// the likes table behave as a set: a user appears at most once per post,
// and membership is mutated with atomic conditional inserts/deletes rather
// than read-modify-write in application memory.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
