package model

import "time"

// User represents an authenticated user in the system.
// Age, weight and height are optional profile metrics; the server stores
// whatever the client sends and performs no range validation of its own.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Age          *int      `json:"age,omitempty"`
	Weight       *float64  `json:"weight,omitempty"` // kilograms
	Height       *float64  `json:"height,omitempty"` // centimeters
	Goal         string    `json:"goal,omitempty" gorm:"size:500"`
	Program      *Program  `json:"program,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
