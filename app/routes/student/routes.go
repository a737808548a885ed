package student

import (
	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/models"
	"jspm-attendance/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	student := app.Group("/student")
	student.Use(auth.AuthMiddleware)
	student.Use(auth.RoleMiddleware(models.RoleStudent))

	student.Get("/dashboard", DashboardPage)
}
