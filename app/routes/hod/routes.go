package hod

import (
	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/models"
	"jspm-attendance/app/routes/auth"
)

func SetupHODRoutes(app *fiber.App) {
	hod := app.Group("/hod")
	hod.Use(auth.AuthMiddleware)
	hod.Use(auth.RoleMiddleware(models.RoleHOD))

	hod.Get("/", DashboardPage)
	hod.Get("/class/import", ClassImportPage)
	hod.Post("/class/import", ClassImportAPI)
	hod.Post("/remove/student", RemoveStudentAPI)
	hod.Post("/remove/teacher", RemoveTeacherAPI)
	hod.Post("/update/teacher-phone", UpdateTeacherPhoneAPI)
}
