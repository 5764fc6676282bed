package models

import "time"

// Post is one feed entry: an image with a caption plus its engagement
// (likes and comments).
//
// AuthorUsername and AuthorAvatar are snapshots taken from the user at
// creation time. Reads never join the users table for display fields and
// later profile changes do not rewrite history.
type Post struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"not null;index" json:"user_id"`
	AuthorUsername string `gorm:"not null" json:"author_username"`
	AuthorAvatar   string `json:"author_avatar"`
	ImageURL       string `gorm:"not null" json:"image_url"`
	Caption        string `gorm:"size:500" json:"caption"`
	// LikeCount is derived from the likes table at query time; never stored.
	// Because both LikeCount and LikedBy come from the same table,
	// like_count == len(liked_by) holds by construction.
	LikeCount int    `gorm:"->" json:"like_count"`
	LikedBy   []uint `gorm:"-" json:"liked_by"`
	// Comments are ordered most-recent-first.
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikeSummary is the response body of a like toggle: the post's like set and
// its size after the mutation.
type LikeSummary struct {
	LikeCount int    `json:"like_count"`
	LikedBy   []uint `json:"liked_by"`
}
