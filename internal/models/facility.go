package models

import "time"

// Facility is a school facility shown on the facilities page.
type Facility struct {
	ID          uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name"        gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category"    gorm:"size:50"`
	Image       *string   `json:"image"       gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Facility) TableName() string { return "facilities" }
