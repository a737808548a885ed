package teacher

import (
	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/models"
	"jspm-attendance/app/routes/auth"
)

func SetupTeacherRoutes(app *fiber.App) {
	teacher := app.Group("/teacher")
	teacher.Use(auth.AuthMiddleware)
	teacher.Use(auth.RoleMiddleware(models.RoleTeacher))

	teacher.Get("/select", SelectPage)
	teacher.Post("/select", SelectAPI)
	teacher.Get("/mark", MarkPage)
	teacher.Post("/mark", MarkAPI)
	teacher.Get("/report", ReportPage)
	teacher.Get("/export/csv", ExportCSVAPI)
	teacher.Get("/export/pdf", ExportPDFAPI)
	teacher.Get("/change-password", ChangePasswordPage)
	teacher.Post("/change-password", ChangePasswordAPI)
}
