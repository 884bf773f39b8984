package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProfileContent stores one JSON section of the school profile page.
type ProfileContent struct {
	ID         uint           `json:"id"          gorm:"primaryKey;autoIncrement"`
	SectionKey string         `json:"section_key" gorm:"uniqueIndex;size:50;not null"`
	Content    datatypes.JSON `json:"content"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (ProfileContent) TableName() string { return "profile_content" }

// PPDBContent stores one JSON section of the student admission (PPDB) page.
type PPDBContent struct {
	ID         uint           `json:"id"          gorm:"primaryKey;autoIncrement"`
	SectionKey string         `json:"section_key" gorm:"uniqueIndex;size:50;not null"`
	Content    datatypes.JSON `json:"content"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (PPDBContent) TableName() string { return "ppdb_content" }
