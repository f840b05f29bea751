package model

import "time"

// Program is a bundle of exercise and nutrition recommendations owned by
// exactly one user. It is replaced wholesale on update, never merged.
type Program struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"uniqueIndex"`
	Title       string    `json:"title" gorm:"size:255"`
	Description string    `json:"description" gorm:"size:2000"`
	Exercises   []string  `json:"exercises" gorm:"serializer:json"`
	Nutrition   []string  `json:"nutrition" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
