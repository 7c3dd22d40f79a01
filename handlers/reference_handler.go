package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/models"
	"github.com/abooda7m/HR-PROJECT/services"
)

type ReferenceHandler struct {
	Refs *services.ReferenceService
}

func NewReferenceHandler(refs *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{Refs: refs}
}

// GET /reference/departments
func (h *ReferenceHandler) Departments(c echo.Context) error {
	depts, err := h.Refs.ListDepartments()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, depts)
}

// GET /reference/members?department=
func (h *ReferenceHandler) Members(c echo.Context) error {
	dept := strings.TrimSpace(c.QueryParam("department"))
	if dept == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "DEPARTMENT_REQUIRED"})
	}
	rows, err := h.Refs.ListMembersByDept(dept)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /reference/tasks?department=
func (h *ReferenceHandler) Tasks(c echo.Context) error {
	dept := strings.TrimSpace(c.QueryParam("department"))
	if dept == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "DEPARTMENT_REQUIRED"})
	}
	rows, err := h.Refs.ListTasksByDept(dept)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /hr/names
func (h *ReferenceHandler) HRNames(c echo.Context) error {
	names, err := h.Refs.ListHRNames()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, names)
}

// POST /admin/reference/members — full roster replacement.
func (h *ReferenceHandler) ImportMembers(c echo.Context) error {
	var rows []models.Member
	if err := c.Bind(&rows); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.Refs.ReplaceMembers(rows); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "count": len(rows)})
}

// POST /admin/reference/tasks — full task catalog replacement.
func (h *ReferenceHandler) ImportTasks(c echo.Context) error {
	var rows []models.Task
	if err := c.Bind(&rows); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.Refs.ReplaceTasks(rows); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "count": len(rows)})
}
