package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
)

func TestAnchorAbsentUntilFirstReset(t *testing.T) {
	_, _, _, periods := newTestServices(t, nil)

	anchor, err := periods.Anchor()
	require.NoError(t, err)
	assert.Nil(t, anchor)
}

func TestSetNowPersistsAnchorAndHistory(t *testing.T) {
	_, _, _, periods := newTestServices(t, nil)

	first, err := periods.SetNow("HR1")
	require.NoError(t, err)
	second, err := periods.SetNow("HR2")
	require.NoError(t, err)
	assert.False(t, second.Before(first))

	anchor, err := periods.Anchor()
	require.NoError(t, err)
	require.NotNil(t, anchor)
	assert.True(t, anchor.Equal(second))

	history, err := periods.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "HR2", history[0].SetBy) // newest first
	assert.Equal(t, "HR1", history[1].SetBy)
}

func TestResetStartsEmptyPeriodKeepsLifetime(t *testing.T) {
	refs, ledger, _, periods := newTestServices(t, nil)
	seedReference(t)

	id, err := ledger.Submit("Ops", mustMember(t, refs, "Ops", "M1"), mustTask(t, refs, "Ops", "T1"), "2024-01-05")
	require.NoError(t, err)
	ok, err := ledger.Disposition(id, models.StatusApproved, "HR1", "")
	require.NoError(t, err)
	require.True(t, ok)

	// push the existing approval clearly before the upcoming anchor
	past := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, database.DB.Model(&models.ApprovedRecord{}).
		Where("id = ?", id).Update("approved_at", past).Error)

	_, err = periods.SetNow("HR1")
	require.NoError(t, err)

	var period []models.PeriodRow
	require.NoError(t, database.DB.Find(&period).Error)
	assert.Empty(t, period, "period rollup starts empty after a reset")

	var board []models.LeaderboardRow
	require.NoError(t, database.DB.Find(&board).Error)
	require.Len(t, board, 1, "lifetime rollup keeps history")
	assert.Equal(t, 1.5, board[0].TotalHours)

	// a fresh approval after the anchor lands in the new period
	id2, err := ledger.Submit("Ops", mustMember(t, refs, "Ops", "M2"), mustTask(t, refs, "Ops", "T2"), "2024-01-06")
	require.NoError(t, err)
	ok, err = ledger.Disposition(id2, models.StatusApproved, "HR1", "")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, database.DB.Find(&period).Error)
	require.Len(t, period, 1)
	assert.Equal(t, "M2", period[0].MemberID)
	assert.Equal(t, 0.5, period[0].TotalHours)
}
