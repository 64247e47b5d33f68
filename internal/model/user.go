package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'student'" json:"role"`
	Disabled bool     `gorm:"default:false" json:"disabled"`

	// Denormalized lifetime counters, refreshed best-effort after each
	// answer. Display only; ranking recounts from answer_events.
	TotalAnswered int `gorm:"default:0" json:"totalAnswered"`
	TotalCorrect  int `gorm:"default:0" json:"totalCorrect"`

	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == Admin
}
