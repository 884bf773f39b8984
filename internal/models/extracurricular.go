package models

import "time"

// ExtracurricularCategories values accepted for Extracurricular.Category.
var ExtracurricularCategories = []string{"Wajib", "Pilihan", "Akademik", "Non-Akademik"}

// Extracurricular is a student activity listed on the extracurricular page.
type Extracurricular struct {
	ID          uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name"        gorm:"size:100;not null"`
	Category    string    `json:"category"    gorm:"size:20;default:'Pilihan'"`
	Description string    `json:"description" gorm:"type:text"`
	Schedule    string    `json:"schedule"    gorm:"size:100"`
	Image       *string   `json:"image"       gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Extracurricular) TableName() string { return "extracurriculars" }
