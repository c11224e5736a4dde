package domain

import (
	"time"

	"gorm.io/gorm"
)

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priority levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a task record owned by exactly one user. Every query or mutation
// must be scoped by UserID in addition to the record ID.
type Todo struct {
	gorm.Model
	Title       string   `gorm:"size:100;not null"`
	Description string   `gorm:"size:500"`
	Completed   bool     `gorm:"not null;default:false"`
	Priority    Priority `gorm:"size:10;not null;default:medium"`
	DueDate     *time.Time
	UserID      uint `gorm:"index;not null"`
}
