package domain

import "gorm.io/gorm"

// User is an account record. PasswordHash is a bcrypt digest and must never
// leave the persistence layer in API responses.
type User struct {
	gorm.Model
	Name         string `gorm:"size:50;not null"`
	Email        string `gorm:"size:191;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
}
