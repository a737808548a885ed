package admin

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/models"
	"jspm-attendance/app/roster"
	"jspm-attendance/app/routes/auth"
)

// DefaultStudentPassword is assigned to newly imported students; they are
// told to change it on first login.
const DefaultStudentPassword = "Test@123"

func StudentsImportPage(c *fiber.Ctx) error {
	return renderStudentsImport(c, nil)
}

func renderStudentsImport(c *fiber.Ctx, warnings []string) error {
	user := c.Locals("user").(*models.User)
	classes, err := database.GetDistinctClasses(config.GetDB())
	if err != nil {
		return fiber.NewError(500, "Failed to load classes")
	}

	return c.Render("admin/students_import", fiber.Map{
		"Title":    "Import Students - JSPM Attendance",
		"user":     user,
		"Classes":  classes,
		"Warnings": warnings,
		"Error":    c.Query("err"),
	})
}

func StudentsImportAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	class := c.FormValue("class")
	text := c.FormValue("data")
	if class == "" || text == "" {
		return c.Redirect("/admin/students/import?err=Please+choose+class+and+paste+the+data")
	}

	lines, warnings := roster.ParseStudentLines(text)

	hash, err := auth.HashPassword(DefaultStudentPassword)
	if err != nil {
		return fiber.NewError(500, "Failed to hash default password")
	}

	added, updated := 0, 0
	for _, line := range lines {
		created, err := database.UpsertStudent(db, line.Roll, line.PRN, line.Name, class, 2, hash)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Roll %s: %v", line.Roll, err))
			continue
		}
		if created {
			added++
		} else {
			updated++
		}
	}

	if len(warnings) > 0 {
		return renderStudentsImport(c, append(warnings, fmt.Sprintf("Import finished. Added %d, Updated %d.", added, updated)))
	}
	return c.Redirect("/admin/reports?class=" + url.QueryEscape(class) + "&msg=" + url.QueryEscape(fmt.Sprintf("Import complete. Added %d, Updated %d.", added, updated)))
}

func TeachersImportPage(c *fiber.Ctx) error {
	return renderTeachersImport(c, nil)
}

func renderTeachersImport(c *fiber.Ctx, warnings []string) error {
	user := c.Locals("user").(*models.User)
	return c.Render("admin/teachers_import", fiber.Map{
		"Title":    "Import Teachers - JSPM Attendance",
		"user":     user,
		"Warnings": warnings,
		"Error":    c.Query("err"),
	})
}

// TeachersImportAPI upserts teachers from "name, phone, password, subject,
// class" lines. A teacher spanning several lines collects one assignment
// per line; re-inserting an existing assignment is a no-op.
func TeachersImportAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	text := c.FormValue("data")
	if text == "" {
		return c.Redirect("/admin/teachers/import?err=Paste+teacher+data+to+import")
	}

	lines, warnings := roster.ParseTeacherLines(text)

	added, updated := 0, 0
	for _, line := range lines {
		hash, err := auth.HashPassword(line.Password)
		if err != nil {
			return fiber.NewError(500, "Failed to hash password")
		}

		teacherID, created, err := database.UpsertTeacher(db, line.Name, line.Phone, hash)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Teacher %s: %v", line.Name, err))
			continue
		}
		if created {
			added++
		} else {
			updated++
		}

		if err := database.AddAssignment(db, teacherID, line.Subject, line.Class); err != nil {
			warnings = append(warnings, fmt.Sprintf("Assignment %s/%s: %v", line.Subject, line.Class, err))
		}
	}

	if len(warnings) > 0 {
		return renderTeachersImport(c, append(warnings, fmt.Sprintf("Import finished. Added %d, Updated %d.", added, updated)))
	}
	return c.Redirect("/admin/reports?msg=" + url.QueryEscape(fmt.Sprintf("Teachers import complete. Added %d, Updated %d.", added, updated)))
}
