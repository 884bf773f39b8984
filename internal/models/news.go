package models

import "time"

// News is a published news article.
type News struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title"      gorm:"size:255;not null"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	Category  string    `json:"category"   gorm:"size:50"`
	Image     *string   `json:"image"      gorm:"size:255"`
	Date      time.Time `json:"date"       gorm:"type:date"`
	CreatedAt time.Time `json:"created_at"`
}

func (News) TableName() string { return "news" }
