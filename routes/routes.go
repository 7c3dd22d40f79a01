package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/abooda7m/HR-PROJECT/config"
	"github.com/abooda7m/HR-PROJECT/handlers"
	"github.com/abooda7m/HR-PROJECT/services"
)

// Register wires services and all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Services =====
	refs := services.NewReferenceService(cfg)
	rollups := services.NewRollupService(refs)
	ledger := services.NewLedgerService(rollups)
	periods := services.NewPeriodService(rollups)

	// ===== Handlers (shared singletons) =====
	ref := handlers.NewReferenceHandler(refs)
	req := handlers.NewRequestHandler(refs, ledger)
	rev := handlers.NewReviewHandler(ledger)
	rol := handlers.NewRollupHandler(rollups)
	per := handlers.NewPeriodHandler(periods)
	exp := handlers.NewExportHandler()

	e.GET("/health", handlers.Health)

	// Member form page: dropdown feeds + submission
	e.GET("/reference/departments", ref.Departments)
	e.GET("/reference/members", ref.Members)
	e.GET("/reference/tasks", ref.Tasks)
	e.POST("/requests", req.Submit)

	// HR review page
	e.GET("/requests", req.List)
	e.GET("/requests/pending-count", req.PendingCount)
	e.GET("/hr/names", ref.HRNames)
	e.POST("/requests/:id/approve", rev.Approve)
	e.POST("/requests/:id/reject", rev.Reject)

	// Analytics page (approved data only)
	e.GET("/approved", rol.Approved)
	e.GET("/summary", rol.Summary)
	e.GET("/summary/departments", rol.SummaryByDepartment)
	e.GET("/summary/tasks", rol.SummaryByTask)
	e.GET("/rollups/leaderboard", rol.Leaderboard)
	e.GET("/rollups/period", rol.Period)

	// Period admin page
	e.GET("/period/anchor", per.Anchor)
	e.GET("/period/anchor/history", per.History)
	e.POST("/period/anchor/reset", per.Reset)

	// Read-side CSV dumps
	e.GET("/export/:table", exp.Table)

	// Reference data administration (trusted operators)
	e.POST("/admin/reference/members", ref.ImportMembers)
	e.POST("/admin/reference/tasks", ref.ImportTasks)
}
