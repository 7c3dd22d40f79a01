package models

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// HourRequest is one submitted time entry. Requests are never deleted; they
// move from pending into approved/rejected and stay in the ledger.
type HourRequest struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	MemberID string `json:"member_id" gorm:"size:40;index;not null"`
	Name     string `json:"name" gorm:"size:120;not null"`
	Date     string `json:"date" gorm:"size:10"` // YYYY-MM-DD

	// Hours is derived from the task's minutes at submission (minutes/60,
	// two decimals, fixed policy).
	Hours float64 `json:"hours"`

	// Structured activity fields. Notes keeps the legacy composite string
	// for display and export; nothing re-parses it.
	Department string  `json:"department" gorm:"size:80;not null"`
	TaskName   string  `json:"task_name" gorm:"size:120;not null"`
	Minutes    float64 `json:"minutes"`
	Notes      string  `json:"notes" gorm:"type:text"` // "{department} - {task} - {minutes} دقيقة"

	Status  string `json:"status" gorm:"size:20;index;not null"` // pending|approved|rejected
	HRName  string `json:"hr_name" gorm:"column:hr_name;size:120"`
	HRNotes string `json:"hr_notes" gorm:"column:hr_notes;type:text"`

	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at"` // set on approve, cleared on reject
	UpdatedAt  time.Time  `json:"updated_at"`
}
