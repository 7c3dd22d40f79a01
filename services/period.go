package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
)

// PeriodService owns the movable period anchor. Resets append to an audit
// table; the newest row is the active anchor.
type PeriodService struct {
	rollups *RollupService
}

func NewPeriodService(rollups *RollupService) *PeriodService {
	return &PeriodService{rollups: rollups}
}

func currentAnchor(db *gorm.DB) (*time.Time, error) {
	var row models.PeriodAnchorReset
	err := db.Order("id DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t := row.AnchorAt.UTC()
	return &t, nil
}

// Anchor returns the active anchor, nil when no period was ever closed.
func (s *PeriodService) Anchor() (*time.Time, error) {
	return currentAnchor(database.DB)
}

// SetNow closes the current period: records now (UTC, second precision) as
// the new anchor and rebuilds both rollups. Historical data stays intact in
// the Approved mirror and the lifetime rollup.
func (s *PeriodService) SetNow(setBy string) (time.Time, error) {
	now := time.Now().UTC().Truncate(time.Second)
	row := models.PeriodAnchorReset{AnchorAt: now, SetBy: CleanText(setBy)}
	if err := database.DB.Create(&row).Error; err != nil {
		return time.Time{}, err
	}
	if err := s.rollups.Rebuild(); err != nil {
		return now, err
	}
	return now, nil
}

// History lists every anchor reset, newest first.
func (s *PeriodService) History() ([]models.PeriodAnchorReset, error) {
	var rows []models.PeriodAnchorReset
	if err := database.DB.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
