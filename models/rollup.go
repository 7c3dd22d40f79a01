package models

// LeaderboardRow is one line of the lifetime rollup. Rollup tables are fully
// regenerated on every rebuild and carry no identity across recomputes.
type LeaderboardRow struct {
	ID             uint    `json:"-" gorm:"primaryKey"`
	MemberID       string  `json:"member_id" gorm:"size:40"`
	NationalID     string  `json:"national_id" gorm:"size:20"` // empty when the member is unmatched
	Name           string  `json:"name" gorm:"size:120"`
	Department     string  `json:"department" gorm:"size:80"`
	TotalHours     float64 `json:"total_hours"`
	Count          int     `json:"count"`
	LastApprovedAt string  `json:"last_approved_at" gorm:"size:19"` // "YYYY-MM-DD HH:MM:SS" UTC
}

func (LeaderboardRow) TableName() string { return "members_leaderboard" }

// PeriodRow is the anchor-bounded variant, same shape as the leaderboard.
type PeriodRow struct {
	ID             uint    `json:"-" gorm:"primaryKey"`
	MemberID       string  `json:"member_id" gorm:"size:40"`
	NationalID     string  `json:"national_id" gorm:"size:20"`
	Name           string  `json:"name" gorm:"size:120"`
	Department     string  `json:"department" gorm:"size:80"`
	TotalHours     float64 `json:"total_hours"`
	Count          int     `json:"count"`
	LastApprovedAt string  `json:"last_approved_at" gorm:"size:19"`
}

func (PeriodRow) TableName() string { return "members_period" }
