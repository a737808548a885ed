package teacher

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/models"
	"jspm-attendance/app/reports"
)

func escapeQuery(s string) string {
	return url.QueryEscape(s)
}

// exportRows resolves selection and range the same way the report page does,
// so an export always matches what the teacher saw on screen.
func exportRows(c *fiber.Ctx) (rows []reports.Row, class, subject, start, end string, done bool, err error) {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	class, subject, done, err = resolveSelection(c, db, user.ID)
	if done || err != nil {
		return nil, "", "", "", "", true, err
	}

	start, end = reports.ResolveRange(c.Query("start"), c.Query("end"), reports.PeriodWeekly, c.Query("today") == "1")

	students, err := database.GetStudentsByClass(db, class)
	if err != nil {
		return nil, "", "", "", "", true, fiber.NewError(500, "Failed to fetch students")
	}

	engine := reports.NewEngine(database.NewAttendanceStore(db))
	rows, err = engine.Aggregate(students, reports.Filter{Subject: subject, Class: class}, start, end)
	if err != nil {
		return nil, "", "", "", "", true, fiber.NewError(500, "Failed to compute report")
	}

	return rows, class, subject, start, end, false, nil
}

func ExportCSVAPI(c *fiber.Ctx) error {
	rows, class, subject, start, end, done, err := exportRows(c)
	if done || err != nil {
		return err
	}

	data, err := reports.ClassReportCSV(rows, class, subject, start, end)
	if err != nil {
		return fiber.NewError(500, "Failed to encode CSV")
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="`+reports.CSVFilename(class, subject, start, end)+`"`)
	return c.Send(data)
}

func ExportPDFAPI(c *fiber.Ctx) error {
	rows, class, subject, start, end, done, err := exportRows(c)
	if done || err != nil {
		return err
	}

	data, err := reports.ClassReportPDF(rows, class, subject, start, end)
	if err != nil {
		return fiber.NewError(500, "Failed to render PDF")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="attendance_`+class+`_`+subject+`_`+start+`_to_`+end+`.pdf"`)
	return c.Send(data)
}
