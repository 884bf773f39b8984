package models

import "time"

// StaffPosition values accepted for SchoolStaff.Position.
var StaffPositions = []string{"Guru", "Staff"}

// SchoolStaff is a teacher or staff member shown on the staff page.
type SchoolStaff struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"size:100;not null"`
	NIP       string    `json:"nip"        gorm:"column:nip;size:30"`
	Position  string    `json:"position"   gorm:"size:20;default:'Guru'"` // Guru | Staff
	Subject   string    `json:"subject"    gorm:"size:100"`
	Photo     *string   `json:"photo"      gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

func (SchoolStaff) TableName() string { return "school_staff" }
