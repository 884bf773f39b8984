package models

import "time"

// GalleryPhoto is an image in the public photo gallery.
type GalleryPhoto struct {
	ID          uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title"       gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url"   gorm:"size:255;not null"`
	Category    string    `json:"category"    gorm:"size:50;default:'Lainnya'"`
	CreatedAt   time.Time `json:"created_at"`
}

func (GalleryPhoto) TableName() string { return "gallery_photos" }
