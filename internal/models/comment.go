package models

import "time"

// Comment belongs to exactly one post and never exists independently.
// AuthorUsername is a creation-time snapshot, like the post's author fields.
type Comment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PostID         uint      `gorm:"not null;index" json:"post_id"`
	UserID         uint      `gorm:"not null" json:"user_id"`
	AuthorUsername string    `gorm:"not null" json:"author_username"`
	Text           string    `gorm:"not null" json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}
