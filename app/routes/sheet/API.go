package sheet

import (
	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/reports"
)

func sheetRows(c *fiber.Ctx) (rows []reports.Row, subject, start, end string, err error) {
	db := config.GetDB()

	class := c.Query("class")
	subject = c.Query("subject")
	search := c.Query("search")
	start, end = reports.ResolveRange(c.Query("start"), c.Query("end"), reports.PeriodWeekly, false)

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

func SheetPage(c *fiber.Ctx) error {
	db := config.GetDB()

	rows, subject, start, end, err := sheetRows(c)
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
		"Title":      "Attendance Sheet - JSPM Attendance",
		"IsSheet":    true,
		"Report":     rows,
		"Defaulters": reports.Defaulters(rows),
		"Classes":    classes,
		"Subjects":   subjects,
		"Class":      c.Query("class"),
		"Subject":    subject,
		"Search":     c.Query("search"),
		"Start":      start,
		"End":        end,
	})
}

func ExportCSVAPI(c *fiber.Ctx) error {
	rows, subject, start, end, err := sheetRows(c)
	if err != nil {
		return err
	}

	data, err := reports.SheetCSV(rows, start, end, subject)
	if err != nil {
		return fiber.NewError(500, "Failed to encode CSV")
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="attendance_sheet.csv"`)
	return c.Send(data)
}

func ExportDefaultersPDFAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	start, end := reports.ResolveRange(c.Query("start"), c.Query("end"), reports.PeriodWeekly, false)

	summary, err := database.DefaulterSummary(db, start, end)
	if err != nil {
		return fiber.NewError(500, "Failed to compute summary")
	}

	data, err := reports.DefaultersPDF(summary, "Attendance Sheet (Defaulters <75%)")
	if err != nil {
		return fiber.NewError(500, "Failed to render PDF")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="attendance_sheet_defaulters.pdf"`)
	return c.Send(data)
}
