package model

import "time"

// Group is a named community of users. The creator is a member from the
// moment of creation and can never leave.
type Group struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:2000"`
	Image       string    `json:"image" gorm:"size:512"`
	CreatorID   uint      `json:"-" gorm:"not null;index"`
	Creator     User      `json:"creator" gorm:"foreignKey:CreatorID"`
	Members     []User    `json:"members" gorm:"many2many:group_members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasMember reports whether the given user is in the member set.
// Relies on Members being loaded.
func (g *Group) HasMember(userID uint) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
