package models

import "time"

// FileReference tracks uploaded files so orphans can be cleaned up when the
// row that referenced them is edited or deleted.
type FileReference struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	FileURL   string    `json:"file_url"   gorm:"index;size:255;not null"`
	FileName  string    `json:"file_name"  gorm:"size:255"`
	Status    string    `json:"status"     gorm:"index;size:20;default:'pending'"` // pending | active
	RefType   string    `json:"ref_type"   gorm:"index;size:30"`
	RefID     uint      `json:"ref_id"     gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (FileReference) TableName() string { return "file_references" }
