package model

import "time"

// Post is a community content item, optionally scoped to a group.
// A nil GroupID means the post belongs to the global feed.
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"-" gorm:"not null;index"`
	User       User      `json:"user" gorm:"foreignKey:UserID"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	GroupID    *uint     `json:"-" gorm:"index"`
	Group      *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	IsQuestion bool      `json:"isQuestion" gorm:"default:false"`
	Replies    []Reply   `json:"replies" gorm:"foreignKey:PostID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Reply is an append-only answer on a post, ordered by insertion time.
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"-" gorm:"not null;index"`
	UserID    uint      `json:"-" gorm:"not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
