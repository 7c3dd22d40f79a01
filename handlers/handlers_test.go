package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abooda7m/HR-PROJECT/config"
	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
	"github.com/abooda7m/HR-PROJECT/routes"
)

var testDBSeq atomic.Int64

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	dsn := fmt.Sprintf("file:api%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	require.NoError(t, db.Create(&[]models.Member{
		{MemberID: "M1", NationalID: "1001", Name: "Mona", Department: "Ops"},
	}).Error)
	require.NoError(t, db.Create(&[]models.Task{
		{Name: "T1", Department: "Ops", Minutes: 90},
	}).Error)

	e := echo.New()
	routes.Register(e, &config.Config{ReferenceCacheTTL: time.Minute})
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitEndpoint(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/requests",
		`{"department":"Ops","member_id":"M1","task_name":"T1","date":"2024-01-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["id"])

	var req models.HourRequest
	require.NoError(t, database.DB.First(&req, 1).Error)
	assert.Equal(t, 1.5, req.Hours)
	assert.Equal(t, models.StatusPending, req.Status)
}

func TestSubmitValidation(t *testing.T) {
	e := setupServer(t)

	cases := []struct {
		body, wantErr string
	}{
		{`{"member_id":"M1","task_name":"T1"}`, "DEPARTMENT_REQUIRED"},
		{`{"department":"Ops","member_id":"NOPE","task_name":"T1"}`, "MEMBER_NOT_FOUND"},
		{`{"department":"Ops","member_id":"M1","task_name":"NOPE"}`, "TASK_NOT_FOUND"},
		{`{"department":"Ops","member_id":"M1","task_name":"T1","date":"05/01/2024"}`, "INVALID_DATE"},
	}
	for _, tc := range cases {
		rec := doJSON(e, http.MethodPost, "/requests", tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.body)
		assert.Contains(t, rec.Body.String(), tc.wantErr)
	}
}

func TestReviewEndpoints(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/requests",
		`{"department":"Ops","member_id":"M1","task_name":"T1","date":"2024-01-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/requests/1/approve", `{"hr_notes":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "HR_NAME_REQUIRED")

	rec = doJSON(e, http.MethodPost, "/requests/99/approve", `{"hr_name":"HR1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/requests/1/approve", `{"hr_name":"HR1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var req models.HourRequest
	require.NoError(t, database.DB.First(&req, 1).Error)
	assert.Equal(t, models.StatusApproved, req.Status)

	rec = doJSON(e, http.MethodGet, "/requests/pending-count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestApproveSurvivesRollupRefreshFailure(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/requests",
		`{"department":"Ops","member_id":"M1","task_name":"T1","date":"2024-01-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// make the rollup rewrite fail while the ledger update still commits
	require.NoError(t, database.DB.Migrator().DropTable(&models.LeaderboardRow{}))

	rec = doJSON(e, http.MethodPost, "/requests/1/approve", `{"hr_name":"HR1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), `"warning"`)

	// the disposition itself is durable despite the failed refresh
	var req models.HourRequest
	require.NoError(t, database.DB.First(&req, 1).Error)
	assert.Equal(t, models.StatusApproved, req.Status)
	var n int64
	require.NoError(t, database.DB.Model(&models.ApprovedRecord{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRollupAndAnchorEndpoints(t *testing.T) {
	e := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/period/anchor", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"anchor":null`)

	doJSON(e, http.MethodPost, "/requests",
		`{"department":"Ops","member_id":"M1","task_name":"T1","date":"2024-01-05"}`)
	doJSON(e, http.MethodPost, "/requests/1/approve", `{"hr_name":"HR1"}`)

	rec = doJSON(e, http.MethodGet, "/rollups/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_hours":1.5`)

	rec = doJSON(e, http.MethodGet, "/summary/departments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"department":"Ops"`)

	rec = doJSON(e, http.MethodGet, "/summary/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"task_name":"T1"`)

	rec = doJSON(e, http.MethodPost, "/period/anchor/reset", `{"set_by":"HR1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/period/anchor", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"anchor":null`)
}

func TestExportCSVHasBOM(t *testing.T) {
	e := setupServer(t)

	doJSON(e, http.MethodPost, "/requests",
		`{"department":"Ops","member_id":"M1","task_name":"T1","date":"2024-01-05"}`)

	rec := doJSON(e, http.MethodGet, "/export/requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	require.True(t, len(body) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3])
	assert.Contains(t, rec.Body.String(), "id,name,member_id,date,hours,notes")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")

	rec = doJSON(e, http.MethodGet, "/export/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
