package models

import "time"

// User is an admin account for the content dashboard.
type User struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username"   gorm:"uniqueIndex;size:50;not null"`
	Password  string    `json:"-"          gorm:"size:255;not null"` // bcrypt hash
	Role      string    `json:"role"       gorm:"size:20;default:'admin'"` // admin | user
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
