// Package models contains data structures for the application's domain models.
package models

import "time"

// DefaultAvatar is used when a user registers without an avatar URL.
const DefaultAvatar = "https://placehold.co/100x100/CCCCCC/000000?text=User"

// User represents a registered FoodieGram account.
// Users are never deleted; only the avatar is mutable after registration.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
