package models

import "time"

// PeriodAnchorReset is one audit entry of the period anchor. The newest row
// is the active anchor; past period boundaries stay queryable.
type PeriodAnchorReset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AnchorAt  time.Time `json:"anchor_at" gorm:"not null"`
	SetBy     string    `json:"set_by" gorm:"size:120"`
	CreatedAt time.Time `json:"created_at"`
}
