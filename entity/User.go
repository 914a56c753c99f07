package entity

import (
	"gorm.io/gorm"
)

// User is a staff account for the counter and kitchen screens.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:staff" json:"role"`
}
