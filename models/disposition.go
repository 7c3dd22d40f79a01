package models

import "time"

// ApprovedRecord mirrors a request at approval time, keyed by the request id.
// Re-approving the same id overwrites this row instead of duplicating it.
type ApprovedRecord struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name       string     `json:"name" gorm:"size:120"`
	MemberID   string     `json:"member_id" gorm:"size:40;index"`
	Date       string     `json:"date" gorm:"size:10"`
	Hours      float64    `json:"hours"`
	Notes      string     `json:"notes" gorm:"type:text"`
	HRName     string     `json:"hr_name" gorm:"column:hr_name;size:120"`
	HRNotes    string     `json:"hr_notes" gorm:"column:hr_notes;type:text"`
	ApprovedAt *time.Time `json:"approved_at" gorm:"index"`
}

func (ApprovedRecord) TableName() string { return "approved_records" }

// RejectedRecord is the rejection-side mirror, same shape with its own stamp.
type RejectedRecord struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name       string     `json:"name" gorm:"size:120"`
	MemberID   string     `json:"member_id" gorm:"size:40;index"`
	Date       string     `json:"date" gorm:"size:10"`
	Hours      float64    `json:"hours"`
	Notes      string     `json:"notes" gorm:"type:text"`
	HRName     string     `json:"hr_name" gorm:"column:hr_name;size:120"`
	HRNotes    string     `json:"hr_notes" gorm:"column:hr_notes;type:text"`
	RejectedAt *time.Time `json:"rejected_at"`
}

func (RejectedRecord) TableName() string { return "rejected_records" }
