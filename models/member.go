package models

import "time"

// Member is reference data sourced from the club roster; read-only to the
// request flow, written only by the seeder / admin import.
type Member struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	MemberID   string `json:"member_id" gorm:"size:40;index;not null"` // الرقم الجامعي (canonical form)
	NationalID string `json:"national_id" gorm:"size:20"`              // رقم الهوية
	Name       string `json:"name" gorm:"size:120;not null"`           // الاسم باللغة العربي
	Department string `json:"department" gorm:"size:80;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
