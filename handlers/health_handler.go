package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/database"
)

// Health serves /health and verifies the database is reachable.
func Health(c echo.Context) error {
	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
