package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abooda7m/HR-PROJECT/config"
	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func newTestServices(t *testing.T, cfg *config.Config) (*ReferenceService, *LedgerService, *RollupService, *PeriodService) {
	t.Helper()
	setupTestDB(t)
	if cfg == nil {
		cfg = &config.Config{ReferenceCacheTTL: time.Minute}
	}
	refs := NewReferenceService(cfg)
	rollups := NewRollupService(refs)
	ledger := NewLedgerService(rollups)
	periods := NewPeriodService(rollups)
	return refs, ledger, rollups, periods
}

func seedReference(t *testing.T) {
	t.Helper()
	members := []models.Member{
		{MemberID: "M1", NationalID: "1001", Name: "Mona", Department: "Ops"},
		{MemberID: "M2", NationalID: "1002", Name: "Sara", Department: "Ops"},
		{MemberID: "M3", NationalID: "1003", Name: "Huda", Department: "Media"},
	}
	require.NoError(t, database.DB.Create(&members).Error)
	tasks := []models.Task{
		{Name: "T1", Department: "Ops", Minutes: 90},
		{Name: "T2", Department: "Ops", Minutes: 30},
		{Name: "Edit", Department: "Media", Minutes: 45},
	}
	require.NoError(t, database.DB.Create(&tasks).Error)
}

func mustMember(t *testing.T, refs *ReferenceService, dept, id string) models.Member {
	t.Helper()
	m, err := refs.FindMember(dept, id)
	require.NoError(t, err)
	require.NotNil(t, m)
	return *m
}

func mustTask(t *testing.T, refs *ReferenceService, dept, name string) models.Task {
	t.Helper()
	task, err := refs.FindTask(dept, name)
	require.NoError(t, err)
	require.NotNil(t, task)
	return *task
}
