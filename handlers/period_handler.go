package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/services"
)

type PeriodHandler struct {
	Periods *services.PeriodService
}

func NewPeriodHandler(periods *services.PeriodService) *PeriodHandler {
	return &PeriodHandler{Periods: periods}
}

// GET /period/anchor — {"anchor": null} until the first reset.
func (h *PeriodHandler) Anchor(c echo.Context) error {
	anchor, err := h.Periods.Anchor()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"anchor": anchor})
}

type resetPayload struct {
	SetBy string `json:"set_by"`
}

// POST /period/anchor/reset — close the current period and start a new one.
func (h *PeriodHandler) Reset(c echo.Context) error {
	var body resetPayload
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	ts, err := h.Periods.SetNow(body.SetBy)
	if err != nil {
		if ts.IsZero() {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		// anchor recorded, rollup refresh failed; report the anchor with a warning
		return c.JSON(http.StatusOK, map[string]any{"anchor": ts, "warning": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"anchor": ts})
}

// GET /period/anchor/history
func (h *PeriodHandler) History(c echo.Context) error {
	rows, err := h.Periods.History()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
