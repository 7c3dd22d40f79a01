package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/models"
	"github.com/abooda7m/HR-PROJECT/services"
)

type ReviewHandler struct {
	Ledger *services.LedgerService
}

func NewReviewHandler(ledger *services.LedgerService) *ReviewHandler {
	return &ReviewHandler{Ledger: ledger}
}

type decisionPayload struct {
	HRName  string `json:"hr_name"`
	HRNotes string `json:"hr_notes"`
}

// POST /requests/:id/approve
func (h *ReviewHandler) Approve(c echo.Context) error {
	return h.decide(c, models.StatusApproved)
}

// POST /requests/:id/reject
func (h *ReviewHandler) Reject(c echo.Context) error {
	return h.decide(c, models.StatusRejected)
}

func (h *ReviewHandler) decide(c echo.Context, status string) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var body decisionPayload
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(body.HRName) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "HR_NAME_REQUIRED"})
	}

	ok, err := h.Ledger.Disposition(uint(id), status, body.HRName, body.HRNotes)
	if !ok {
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		// the decision is durably applied; only the rollup refresh failed, and
		// the next successful disposition recomputes the tables from scratch
		return c.JSON(http.StatusOK, map[string]any{"ok": true, "warning": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
