package services

import (
	"sort"
	"time"

	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
)

const rollupTimeLayout = "2006-01-02 15:04:05"

// RollupService regenerates the derived per-member tables from the Approved
// mirror. Rollups are pure views: every rebuild replaces the whole table.
type RollupService struct {
	refs *ReferenceService
}

func NewRollupService(refs *ReferenceService) *RollupService {
	return &RollupService{refs: refs}
}

// Rebuild recomputes both variants: lifetime (unbounded) and the current
// period (bounded below by the anchor). Called after every disposition and
// after every anchor reset.
func (s *RollupService) Rebuild() error {
	lifetime, err := s.build(nil)
	if err != nil {
		return err
	}
	if err := database.ReplaceTable(database.DB, lifetime); err != nil {
		return err
	}

	anchor, err := currentAnchor(database.DB)
	if err != nil {
		return err
	}
	bounded, err := s.build(anchor)
	if err != nil {
		return err
	}
	period := make([]models.PeriodRow, len(bounded))
	for i, r := range bounded {
		period[i] = models.PeriodRow{
			MemberID:       r.MemberID,
			NationalID:     r.NationalID,
			Name:           r.Name,
			Department:     r.Department,
			TotalHours:     r.TotalHours,
			Count:          r.Count,
			LastApprovedAt: r.LastApprovedAt,
		}
	}
	return database.ReplaceTable(database.DB, period)
}

// build aggregates approved records per (member id, name), keeping records
// whose approval stamp is at or after since, and left-joins the roster for
// department and national id.
func (s *RollupService) build(since *time.Time) ([]models.LeaderboardRow, error) {
	var approved []models.ApprovedRecord
	if err := database.DB.Find(&approved).Error; err != nil {
		return nil, err
	}

	type key struct{ memberID, name string }
	type agg struct {
		hours float64
		count int
		last  *time.Time
	}
	groups := map[key]*agg{}
	for _, rec := range approved {
		if since != nil && (rec.ApprovedAt == nil || rec.ApprovedAt.Before(*since)) {
			continue
		}
		k := key{NormalizeMemberID(rec.MemberID), CleanText(rec.Name)}
		g := groups[k]
		if g == nil {
			g = &agg{}
			groups[k] = g
		}
		g.hours += rec.Hours
		g.count++
		if rec.ApprovedAt != nil && (g.last == nil || rec.ApprovedAt.After(*g.last)) {
			t := rec.ApprovedAt.UTC()
			g.last = &t
		}
	}
	if len(groups) == 0 {
		return nil, nil
	}

	members, err := s.refs.Members()
	if err != nil {
		return nil, err
	}
	roster := make(map[key]models.Member, len(members))
	for _, m := range members {
		roster[key{m.MemberID, m.Name}] = m
	}

	rows := make([]models.LeaderboardRow, 0, len(groups))
	for k, g := range groups {
		row := models.LeaderboardRow{
			MemberID:   k.memberID,
			Name:       k.name,
			TotalHours: Round2(g.hours),
			Count:      g.count,
		}
		if m, ok := roster[k]; ok {
			row.NationalID = m.NationalID
			row.Department = m.Department
		}
		if g.last != nil {
			row.LastApprovedAt = g.last.Format(rollupTimeLayout)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalHours != rows[j].TotalHours {
			return rows[i].TotalHours > rows[j].TotalHours
		}
		return rows[i].Count > rows[j].Count
	})
	return rows, nil
}

// MemberSummary is the per-member aggregate shown on the review dashboard.
type MemberSummary struct {
	MemberID   string  `json:"member_id"`
	Name       string  `json:"name"`
	TotalHours float64 `json:"total_hours"`
	Count      int     `json:"count"`
}

// DepartmentSummary is the approved-hours breakdown per department.
type DepartmentSummary struct {
	Department string  `json:"department"`
	TotalHours float64 `json:"total_hours"`
	Count      int     `json:"count"`
}

// TaskSummary is the approved-hours breakdown per task within a department.
type TaskSummary struct {
	Department string  `json:"department"`
	TaskName   string  `json:"task_name"`
	TotalHours float64 `json:"total_hours"`
	Count      int     `json:"count"`
}

// SummaryByDepartment aggregates approved hours per department, busiest first.
func (s *RollupService) SummaryByDepartment() ([]DepartmentSummary, error) {
	var out []DepartmentSummary
	err := database.DB.Model(&models.HourRequest{}).
		Select("department, SUM(hours) AS total_hours, COUNT(id) AS count").
		Where("status = ?", models.StatusApproved).
		Group("department").
		Order("total_hours DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].TotalHours = Round2(out[i].TotalHours)
	}
	return out, nil
}

// SummaryByTask aggregates approved hours per (department, task), busiest first.
func (s *RollupService) SummaryByTask() ([]TaskSummary, error) {
	var out []TaskSummary
	err := database.DB.Model(&models.HourRequest{}).
		Select("department, task_name, SUM(hours) AS total_hours, COUNT(id) AS count").
		Where("status = ?", models.StatusApproved).
		Group("department, task_name").
		Order("total_hours DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].TotalHours = Round2(out[i].TotalHours)
	}
	return out, nil
}

// SummaryByMember aggregates the ledger itself (not the mirror) by member
// for a given status.
func (s *RollupService) SummaryByMember(status string) ([]MemberSummary, error) {
	tx := database.DB.Model(&models.HourRequest{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var out []MemberSummary
	err := tx.
		Select("member_id, name, SUM(hours) AS total_hours, COUNT(id) AS count").
		Group("member_id, name").
		Order("total_hours DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].TotalHours = Round2(out[i].TotalHours)
	}
	return out, nil
}
