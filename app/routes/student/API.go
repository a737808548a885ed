package student

import (
	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/models"
	"jspm-attendance/app/reports"
)

func DashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	period := reports.Period(c.Query("period", string(reports.PeriodWeekly)))
	start, end := reports.ResolveRange(c.Query("start"), c.Query("end"), period, c.Query("today") == "1")

	student, err := database.GetStudentByID(db, user.ID)
	if err != nil {
		return fiber.NewError(500, "Failed to load student")
	}

	marks, err := database.GetMarksForStudent(db, student.ID, start, end)
	if err != nil {
		return fiber.NewError(500, "Failed to fetch attendance")
	}

	engine := reports.NewEngine(database.NewAttendanceStore(db))
	percents, err := engine.SubjectBreakdown(student, start, end)
	if err != nil {
		return fiber.NewError(500, "Failed to compute percentages")
	}

	below := reports.Defaulters(percents)

	return c.Render("student/dashboard", fiber.Map{
		"Title":    "Dashboard - JSPM Attendance",
		"user":     user,
		"Student":  student,
		"Marks":    marks,
		"Percents": percents,
		"Below":    below,
		"Period":   string(period),
		"Start":    start,
		"End":      end,
	})
}
