package models

import "time"

// Task is a predefined department activity with a suggested duration.
type Task struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"size:120;not null"`       // المهمة
	Department string  `json:"department" gorm:"size:80;not null"`  // القسم
	Minutes    float64 `json:"minutes" gorm:"not null"`             // المدة المقترحة بالدقائق

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
