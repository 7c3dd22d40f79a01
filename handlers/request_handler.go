package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/services"
)

type RequestHandler struct {
	Refs   *services.ReferenceService
	Ledger *services.LedgerService
}

func NewRequestHandler(refs *services.ReferenceService, ledger *services.LedgerService) *RequestHandler {
	return &RequestHandler{Refs: refs, Ledger: ledger}
}

type submitPayload struct {
	Department string `json:"department"`
	MemberID   string `json:"member_id"`
	TaskName   string `json:"task_name"`
	Date       string `json:"date"` // YYYY-MM-DD, optional
}

// POST /requests
// Validates the member/task pairing against reference data before handing
// the trusted rows to the ledger.
func (h *RequestHandler) Submit(c echo.Context) error {
	var p submitPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Department = strings.TrimSpace(p.Department)
	p.MemberID = strings.TrimSpace(p.MemberID)
	p.TaskName = strings.TrimSpace(p.TaskName)
	p.Date = strings.TrimSpace(p.Date)

	if p.Department == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "DEPARTMENT_REQUIRED"})
	}
	if p.Date != "" {
		if _, err := time.Parse("2006-01-02", p.Date); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
		}
	}

	member, err := h.Refs.FindMember(p.Department, p.MemberID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	if member == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MEMBER_NOT_FOUND"})
	}
	task, err := h.Refs.FindTask(p.Department, p.TaskName)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	if task == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "TASK_NOT_FOUND"})
	}

	id, err := h.Ledger.Submit(p.Department, *member, *task, p.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": id})
}

// GET /requests?status=
func (h *RequestHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	rows, err := h.Ledger.List(status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /requests/pending-count
func (h *RequestHandler) PendingCount(c echo.Context) error {
	n, err := h.Ledger.PendingCount()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}
