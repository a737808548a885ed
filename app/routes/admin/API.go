package admin

import (
	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/models"
	"jspm-attendance/app/reports"
)

// reportRows builds the admin cohort (optional class filter, roll/name
// search) and aggregates it over the requested range. With no subject
// filter, marks across all subjects count.
func reportRows(c *fiber.Ctx) (rows []reports.Row, subject, start, end string, err error) {
	db := config.GetDB()

	class := c.Query("class")
	subject = c.Query("subject")
	search := c.Query("search")
	start, end = reports.ResolveRange(c.Query("start"), c.Query("end"), reports.PeriodWeekly, c.Query("today") == "1")

	students, err := database.GetStudentsWithFilters(db, database.StudentFilters{Class: class, Search: search})
	if err != nil {
		return nil, "", "", "", fiber.NewError(500, "Failed to fetch students")
	}

	engine := reports.NewEngine(database.NewAttendanceStore(db))
	rows, err = engine.Aggregate(students, reports.Filter{Subject: subject}, start, end)
	if err != nil {
		return nil, "", "", "", fiber.NewError(500, "Failed to compute report")
	}

	return rows, subject, start, end, nil
}

func ReportsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	rows, subject, start, end, err := reportRows(c)
	if err != nil {
		return err
	}

	classes, err := database.GetDistinctClasses(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load classes")
	}
	subjects, err := database.GetDistinctSubjects(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load subjects")
	}

	return c.Render("admin/reports", fiber.Map{
		"Title":      "Attendance Reports - JSPM Attendance",
		"user":       user,
		"Report":     rows,
		"Defaulters": reports.Defaulters(rows),
		"Classes":    classes,
		"Subjects":   subjects,
		"Class":      c.Query("class"),
		"Subject":    subject,
		"Search":     c.Query("search"),
		"Start":      start,
		"End":        end,
		"Message":    c.Query("msg"),
	})
}

func ExportCSVAPI(c *fiber.Ctx) error {
	rows, _, _, _, err := reportRows(c)
	if err != nil {
		return err
	}

	data, err := reports.AdminReportCSV(rows)
	if err != nil {
		return fiber.NewError(500, "Failed to encode CSV")
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="attendance_report.csv"`)
	return c.Send(data)
}

func ExportDefaultersPDFAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	start, end := reports.ResolveRange(c.Query("start"), c.Query("end"), reports.PeriodWeekly, false)

	summary, err := database.DefaulterSummary(db, start, end)
	if err != nil {
		return fiber.NewError(500, "Failed to compute summary")
	}

	data, err := reports.DefaultersPDF(summary, "Attendance Report (Defaulters <75%)")
	if err != nil {
		return fiber.NewError(500, "Failed to render PDF")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="defaulters.pdf"`)
	return c.Send(data)
}
