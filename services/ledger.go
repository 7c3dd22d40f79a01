package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
)

// LedgerService owns the request lifecycle: submission, listing and the
// approve/reject transition with its mirror projection. It trusts callers to
// validate reference lookups and the reviewer name before calling in.
type LedgerService struct {
	rollups *RollupService
}

func NewLedgerService(rollups *RollupService) *LedgerService {
	return &LedgerService{rollups: rollups}
}

// Submit appends a pending request built from an already-validated
// member/task pair and returns the assigned id.
func (s *LedgerService) Submit(dept string, member models.Member, task models.Task, date string) (uint, error) {
	dept = CleanText(dept)
	taskName := CleanText(task.Name)
	req := models.HourRequest{
		MemberID:   NormalizeMemberID(member.MemberID),
		Name:       CleanText(member.Name),
		Date:       date,
		Hours:      Round2(task.Minutes / 60),
		Department: dept,
		TaskName:   taskName,
		Minutes:    task.Minutes,
		Notes:      fmt.Sprintf("%s - %s - %d دقيقة", dept, taskName, int(task.Minutes)),
		Status:     models.StatusPending,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	if err := database.DB.Create(&req).Error; err != nil {
		return 0, err
	}
	return req.ID, nil
}

// List returns requests, optionally filtered by exact status, most recent
// first (created_at DESC, id DESC).
func (s *LedgerService) List(status string) ([]models.HourRequest, error) {
	tx := database.DB.Model(&models.HourRequest{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var rows []models.HourRequest
	if err := tx.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LedgerService) PendingCount() (int64, error) {
	var n int64
	err := database.DB.Model(&models.HourRequest{}).
		Where("status = ?", models.StatusPending).Count(&n).Error
	return n, err
}

// Disposition moves a request into approved/rejected, stamps the reviewer
// fields and projects a snapshot into the matching mirror table, then
// rebuilds both rollups. Returns false (and mutates nothing) when the id is
// unknown.
//
// Re-disposing a terminal request is allowed: the mirror upsert makes a
// retried approval converge to a single row carrying the latest fields, and
// a rejection deletes any earlier Approved row for the same id.
func (s *LedgerService) Disposition(id uint, status, hrName, hrNotes string) (bool, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return false, fmt.Errorf("disposition: unsupported status %q", status)
	}

	var req models.HourRequest
	if err := database.DB.First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	req.Status = status
	req.HRName = CleanText(hrName)
	req.HRNotes = CleanText(hrNotes)
	if status == models.StatusApproved {
		req.ApprovedAt = &now
	} else {
		req.ApprovedAt = nil
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":      req.Status,
			"hr_name":     req.HRName,
			"hr_notes":    req.HRNotes,
			"approved_at": req.ApprovedAt,
		}
		if err := tx.Model(&models.HourRequest{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
			return err
		}

		if status == models.StatusApproved {
			rec := models.ApprovedRecord{
				ID:         req.ID,
				Name:       req.Name,
				MemberID:   req.MemberID,
				Date:       req.Date,
				Hours:      req.Hours,
				Notes:      req.Notes,
				HRName:     req.HRName,
				HRNotes:    req.HRNotes,
				ApprovedAt: &now,
			}
			return upsertByID(tx, &rec)
		}

		rec := models.RejectedRecord{
			ID:         req.ID,
			Name:       req.Name,
			MemberID:   req.MemberID,
			Date:       req.Date,
			Hours:      req.Hours,
			Notes:      req.Notes,
			HRName:     req.HRName,
			HRNotes:    req.HRNotes,
			RejectedAt: &now,
		}
		if err := upsertByID(tx, &rec); err != nil {
			return err
		}
		// a rejection supersedes any earlier approval of the same id
		return tx.Delete(&models.ApprovedRecord{}, "id = ?", req.ID).Error
	})
	if err != nil {
		return false, err
	}

	if err := s.rollups.Rebuild(); err != nil {
		return true, err
	}
	return true, nil
}

func upsertByID(tx *gorm.DB, rec any) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rec).Error
}
