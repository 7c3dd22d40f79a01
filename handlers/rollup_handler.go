package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
	"github.com/abooda7m/HR-PROJECT/services"
)

type RollupHandler struct {
	Rollups *services.RollupService
}

func NewRollupHandler(rollups *services.RollupService) *RollupHandler {
	return &RollupHandler{Rollups: rollups}
}

// GET /rollups/leaderboard
// Rows were persisted in rank order, so id order is rank order.
func (h *RollupHandler) Leaderboard(c echo.Context) error {
	var rows []models.LeaderboardRow
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /rollups/period
func (h *RollupHandler) Period(c echo.Context) error {
	var rows []models.PeriodRow
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /summary?status=   (defaults to approved, as the review dashboard shows)
func (h *RollupHandler) Summary(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status == "" {
		status = models.StatusApproved
	}
	rows, err := h.Rollups.SummaryByMember(status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /summary/departments — approved hours per department.
func (h *RollupHandler) SummaryByDepartment(c echo.Context) error {
	rows, err := h.Rollups.SummaryByDepartment()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /summary/tasks — approved hours per task.
func (h *RollupHandler) SummaryByTask(c echo.Context) error {
	rows, err := h.Rollups.SummaryByTask()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /approved?from=YYYY-MM-DD&to=YYYY-MM-DD — raw mirror rows for analytics.
func (h *RollupHandler) Approved(c echo.Context) error {
	from := strings.TrimSpace(c.QueryParam("from"))
	to := strings.TrimSpace(c.QueryParam("to"))

	tx := database.DB.Model(&models.ApprovedRecord{})
	if from != "" {
		tx = tx.Where("date >= ?", from)
	}
	if to != "" {
		tx = tx.Where("date <= ?", to)
	}
	var rows []models.ApprovedRecord
	if err := tx.Order("approved_at DESC, id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
