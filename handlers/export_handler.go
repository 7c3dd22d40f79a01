package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
)

type ExportHandler struct{}

func NewExportHandler() *ExportHandler { return &ExportHandler{} }

// GET /export/:table
// Pure read-side dump: requests|approved|rejected|leaderboard|period as CSV,
// UTF-8 with BOM so spreadsheet apps detect the encoding.
func (h *ExportHandler) Table(c echo.Context) error {
	table := c.Param("table")
	header, rows, err := exportRows(table)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	if header == nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "UNKNOWN_TABLE"})
	}

	buf := &bytes.Buffer{}
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	if err := w.WriteAll(rows); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	filename := fmt.Sprintf("%s_%s.csv", table, time.Now().UTC().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func exportRows(table string) ([]string, [][]string, error) {
	switch table {
	case "requests":
		var recs []models.HourRequest
		if err := database.DB.Order("created_at DESC, id DESC").Find(&recs).Error; err != nil {
			return nil, nil, err
		}
		header := []string{"id", "name", "member_id", "date", "hours", "notes", "status", "hr_name", "hr_notes", "created_at", "approved_at"}
		rows := make([][]string, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []string{
				fmtUint(r.ID), r.Name, r.MemberID, r.Date, fmtFloat(r.Hours), r.Notes,
				r.Status, r.HRName, r.HRNotes, fmtTime(&r.CreatedAt), fmtTime(r.ApprovedAt),
			})
		}
		return header, rows, nil

	case "approved":
		var recs []models.ApprovedRecord
		if err := database.DB.Order("id ASC").Find(&recs).Error; err != nil {
			return nil, nil, err
		}
		header := []string{"id", "name", "member_id", "date", "hours", "notes", "hr_name", "hr_notes", "approved_at"}
		rows := make([][]string, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []string{
				fmtUint(r.ID), r.Name, r.MemberID, r.Date, fmtFloat(r.Hours), r.Notes,
				r.HRName, r.HRNotes, fmtTime(r.ApprovedAt),
			})
		}
		return header, rows, nil

	case "rejected":
		var recs []models.RejectedRecord
		if err := database.DB.Order("id ASC").Find(&recs).Error; err != nil {
			return nil, nil, err
		}
		header := []string{"id", "name", "member_id", "date", "hours", "notes", "hr_name", "hr_notes", "rejected_at"}
		rows := make([][]string, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, []string{
				fmtUint(r.ID), r.Name, r.MemberID, r.Date, fmtFloat(r.Hours), r.Notes,
				r.HRName, r.HRNotes, fmtTime(r.RejectedAt),
			})
		}
		return header, rows, nil

	case "leaderboard":
		var recs []models.LeaderboardRow
		if err := database.DB.Order("id ASC").Find(&recs).Error; err != nil {
			return nil, nil, err
		}
		return rollupHeader(), rollupRows(recs), nil

	case "period":
		var recs []models.PeriodRow
		if err := database.DB.Order("id ASC").Find(&recs).Error; err != nil {
			return nil, nil, err
		}
		rows := make([]models.LeaderboardRow, len(recs))
		for i, r := range recs {
			rows[i] = models.LeaderboardRow(r)
		}
		return rollupHeader(), rollupRows(rows), nil
	}
	return nil, nil, nil
}

func rollupHeader() []string {
	return []string{"member_id", "national_id", "name", "department", "total_hours", "count", "last_approved_at"}
}

func rollupRows(recs []models.LeaderboardRow) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.MemberID, r.NationalID, r.Name, r.Department,
			fmtFloat(r.TotalHours), strconv.Itoa(r.Count), r.LastApprovedAt,
		})
	}
	return rows
}

func fmtUint(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
