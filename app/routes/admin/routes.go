package admin

import (
	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/models"
	"jspm-attendance/app/routes/auth"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Use(auth.AuthMiddleware)

	// Reports and exports are admin-only
	admin.Get("/reports", auth.RoleMiddleware(models.RoleAdmin), ReportsPage)
	admin.Get("/export/csv", auth.RoleMiddleware(models.RoleAdmin), ExportCSVAPI)
	admin.Get("/export/pdf", auth.RoleMiddleware(models.RoleAdmin), ExportDefaultersPDFAPI)

	// Roster imports are shared with the HOD
	staff := auth.RoleMiddleware(models.RoleAdmin, models.RoleHOD)
	admin.Get("/students/import", staff, StudentsImportPage)
	admin.Post("/students/import", staff, StudentsImportAPI)
	admin.Get("/teachers/import", staff, TeachersImportPage)
	admin.Post("/teachers/import", staff, TeachersImportAPI)
}
