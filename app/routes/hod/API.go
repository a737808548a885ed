package hod

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/models"
	"jspm-attendance/app/roster"
	"jspm-attendance/app/routes/admin"
	"jspm-attendance/app/routes/auth"
)

func DashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("hod/dashboard", fiber.Map{
		"Title":   "HOD Dashboard - JSPM Attendance",
		"user":    user,
		"Message": c.Query("msg"),
		"Error":   c.Query("err"),
	})
}

func ClassImportPage(c *fiber.Ctx) error {
	return renderClassImport(c, "", nil)
}

func renderClassImport(c *fiber.Ctx, class string, warnings []string) error {
	user := c.Locals("user").(*models.User)
	classes, err := database.GetDistinctClasses(config.GetDB())
	if err != nil {
		return fiber.NewError(500, "Failed to load classes")
	}

	return c.Render("hod/class_import", fiber.Map{
		"Title":       "Class Import - JSPM Attendance",
		"user":        user,
		"Suggestions": classes,
		"Class":       class,
		"Warnings":    warnings,
		"Error":       c.Query("err"),
	})
}

// ClassImportAPI imports a whole class in one go: student lines from the
// textarea and/or an uploaded CSV file, plus optional
// "subject, teacher_phone_or_name" assignment lines. Bad lines are reported
// and skipped; the rest of the import proceeds.
func ClassImportAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	class := strings.TrimSpace(c.FormValue("class"))
	if class == "" {
		return c.Redirect("/hod/class/import?err=Please+provide+a+class+name")
	}

	semester, err := strconv.Atoi(c.FormValue("semester", "2"))
	if err != nil {
		semester = 2
	}

	var warnings []string
	text := strings.TrimSpace(c.FormValue("data"))

	if fileText, ok, err := readUploadedCSV(c); err != nil {
		warnings = append(warnings, fmt.Sprintf("Failed to read CSV file: %v", err))
	} else if ok {
		if text != "" {
			text += "\n"
		}
		text += fileText
	}

	if text == "" {
		return c.Redirect("/hod/class/import?err=Provide+students+via+paste+or+CSV+file")
	}

	lines, parseWarnings := roster.ParseStudentLines(text)
	warnings = append(warnings, parseWarnings...)

	hash, err := auth.HashPassword(admin.DefaultStudentPassword)
	if err != nil {
		return fiber.NewError(500, "Failed to hash default password")
	}

	added, updated := 0, 0
	for _, line := range lines {
		created, err := database.UpsertStudent(db, line.Roll, line.PRN, line.Name, class, semester, hash)
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

	// Optional subject-teacher assignments for the class
	assigned, skipped := 0, 0
	if assignText := strings.TrimSpace(c.FormValue("assignments")); assignText != "" {
		assigns, assignWarnings := roster.ParseAssignmentLines(assignText)
		warnings = append(warnings, assignWarnings...)
		skipped += len(assignWarnings)

		for _, a := range assigns {
			teacher, err := database.GetTeacherByKey(db, a.TeacherKey)
			if err == sql.ErrNoRows {
				warnings = append(warnings, fmt.Sprintf("Assignment %q: teacher not found for %q", a.Subject, a.TeacherKey))
				skipped++
				continue
			}
			if err != nil {
				return fiber.NewError(500, "Database error")
			}
			if err := database.AddAssignment(db, teacher.ID, a.Subject, class); err != nil {
				warnings = append(warnings, fmt.Sprintf("Assignment %q: %v", a.Subject, err))
				skipped++
				continue
			}
			assigned++
		}
	}

	summary := fmt.Sprintf("Class %q import: Added %d, Updated %d. Assignments added %d, Skipped %d.", class, added, updated, assigned, skipped)
	if len(warnings) > 0 {
		return renderClassImport(c, class, append(warnings, summary))
	}
	return c.Redirect("/hod?msg=" + url.QueryEscape(summary))
}

// readUploadedCSV flattens an optional uploaded CSV file into roster lines,
// stripping a UTF-8 BOM if present.
func readUploadedCSV(c *fiber.Ctx) (string, bool, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return "", false, nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", false, err
	}
	content := strings.TrimPrefix(string(raw), "\ufeff")

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1

	var lines []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false, err
		}

		var cells []string
		for _, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, ","))
		}
	}

	return strings.Join(lines, "\n"), true, nil
}

func RemoveStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	key := strings.TrimSpace(c.FormValue("id"))
	student, err := database.GetStudentByRollOrPRN(db, key)
	if err == sql.ErrNoRows {
		return c.Redirect("/hod?err=Student+not+found")
	}
	if err != nil {
		return fiber.NewError(500, "Database error")
	}

	// Attendance marks cascade with the student row
	if err := database.DeleteStudent(db, student.ID); err != nil {
		return fiber.NewError(500, "Failed to remove student")
	}
	return c.Redirect("/hod?msg=Student+removed")
}

func RemoveTeacherAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	phone := strings.ReplaceAll(strings.TrimSpace(c.FormValue("phone")), " ", "")
	teacher, err := database.GetTeacherByPhone(db, phone)
	if err == sql.ErrNoRows {
		return c.Redirect("/hod?err=Teacher+not+found")
	}
	if err != nil {
		return fiber.NewError(500, "Database error")
	}

	if err := database.DeleteTeacher(db, teacher.ID); err != nil {
		return fiber.NewError(500, "Failed to remove teacher")
	}
	return c.Redirect("/hod?msg=Teacher+removed")
}

func UpdateTeacherPhoneAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	key := strings.TrimSpace(c.FormValue("key"))
	newPhone := strings.ReplaceAll(strings.TrimSpace(c.FormValue("new_phone")), " ", "")
	if key == "" || newPhone == "" {
		return c.Redirect("/hod?err=Provide+teacher+name%2Fphone+and+new+phone")
	}
	if !isDigits(newPhone) || len(newPhone) < 6 {
		return c.Redirect("/hod?err=Enter+a+valid+new+phone+number")
	}

	teacher, err := database.GetTeacherByKey(db, key)
	if err == sql.ErrNoRows {
		return c.Redirect("/hod?err=Teacher+not+found+for+given+name%2Fphone")
	}
	if err != nil {
		return fiber.NewError(500, "Database error")
	}

	if err := database.UpdateTeacherPhone(db, teacher.ID, newPhone); err == database.ErrPhoneTaken {
		return c.Redirect("/hod?err=Phone+number+already+in+use+by+another+teacher")
	} else if err != nil {
		return fiber.NewError(500, "Failed to update phone")
	}

	return c.Redirect("/hod?msg=Teacher+phone+updated")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
