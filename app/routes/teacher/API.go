package teacher

import (
	"database/sql"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/models"
	"jspm-attendance/app/reports"
	"jspm-attendance/app/routes/auth"
)

func SelectPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	assigns, err := database.GetAssignmentsForTeacher(db, user.ID)
	if err != nil {
		return fiber.NewError(500, "Failed to load assignments")
	}

	classSet := map[string]bool{}
	classToSubjects := map[string][]string{}
	for _, a := range assigns {
		classSet[a.Class] = true
		classToSubjects[a.Class] = append(classToSubjects[a.Class], a.Subject)
	}
	classes := make([]string, 0, len(classSet))
	for cls := range classSet {
		classes = append(classes, cls)
	}
	sort.Strings(classes)

	return c.Render("teacher/select", fiber.Map{
		"Title":           "Select Class - JSPM Attendance",
		"user":            user,
		"Assignments":     assigns,
		"Classes":         classes,
		"ClassToSubjects": classToSubjects,
		"Error":           c.Query("err"),
	})
}

func SelectAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	cls := c.FormValue("class")
	subject := c.FormValue("subject")
	if cls == "" {
		return c.Redirect("/teacher/select?err=Please+select+class")
	}

	if subject == "" {
		// Auto-pick when the class has exactly one subject for this teacher
		assigns, err := database.GetAssignmentsForTeacher(db, user.ID)
		if err != nil {
			return fiber.NewError(500, "Failed to load assignments")
		}
		var subs []string
		for _, a := range assigns {
			if a.Class == cls {
				subs = append(subs, a.Subject)
			}
		}
		if len(subs) != 1 {
			return c.Redirect("/teacher/select?err=Please+select+subject")
		}
		subject = subs[0]
	}

	return c.Redirect("/teacher/mark?cls=" + escapeQuery(cls) + "&subject=" + escapeQuery(subject))
}

// resolveSelection determines the working (class, subject) for report and
// export endpoints: explicit query params, else the teacher's first
// assignment. The caller gets a MissingSelection redirect when neither
// exists, and a 403 when the pair is not among the teacher's assignments.
func resolveSelection(c *fiber.Ctx, db *sql.DB, teacherID string) (class, subject string, done bool, err error) {
	class = c.Query("cls")
	subject = c.Query("subject")

	if class == "" || subject == "" {
		class, subject, err = database.FirstAssignmentForTeacher(db, teacherID)
		if err == sql.ErrNoRows {
			return "", "", true, c.Redirect("/teacher/select?err=Select+class+and+subject+first")
		}
		if err != nil {
			return "", "", true, fiber.NewError(500, "Failed to load assignments")
		}
	}

	ok, err := database.AssignmentExists(db, teacherID, subject, class)
	if err != nil {
		return "", "", true, fiber.NewError(500, "Failed to verify assignment")
	}
	if !ok {
		return "", "", true, fiber.NewError(403, "Not assigned to this class and subject")
	}

	return class, subject, false, nil
}

func MarkPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	class := c.Query("cls")
	subject := c.Query("subject")
	if class == "" || subject == "" {
		return c.Redirect("/teacher/select?err=Select+class+and+subject+first")
	}
	if ok, err := database.AssignmentExists(db, user.ID, subject, class); err != nil {
		return fiber.NewError(500, "Failed to verify assignment")
	} else if !ok {
		return fiber.NewError(403, "Not assigned to this class and subject")
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	students, err := database.GetStudentsByClass(db, class)
	if err != nil {
		return fiber.NewError(500, "Failed to fetch students")
	}

	statusMap, err := database.GetStatusMap(db, class, subject, date)
	if err != nil {
		return fiber.NewError(500, "Failed to fetch attendance records")
	}

	return c.Render("teacher/mark", fiber.Map{
		"Title":     "Mark Attendance - JSPM Attendance",
		"user":      user,
		"Students":  students,
		"StatusMap": statusMap,
		"Date":      date,
		"Class":     class,
		"Subject":   subject,
		"Message":   c.Query("msg"),
	})
}

func MarkAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	class := c.FormValue("cls")
	subject := c.FormValue("subject")
	if class == "" || subject == "" {
		return c.Redirect("/teacher/select?err=Select+class+and+subject+first")
	}
	if ok, err := database.AssignmentExists(db, user.ID, subject, class); err != nil {
		return fiber.NewError(500, "Failed to verify assignment")
	} else if !ok {
		return fiber.NewError(403, "Not assigned to this class and subject")
	}

	date := c.FormValue("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	markAll := c.FormValue("mark_all") == "on"

	students, err := database.GetStudentsByClass(db, class)
	if err != nil {
		return fiber.NewError(500, "Failed to fetch students")
	}

	for _, s := range students {
		status := models.Absent
		if markAll || c.FormValue("status_"+s.ID) == string(models.Present) {
			status = models.Present
		}
		mark := &models.AttendanceMark{
			StudentID: s.ID,
			TeacherID: user.ID,
			Subject:   subject,
			Class:     class,
			Date:      date,
			Status:    status,
		}
		if err := database.UpsertAttendanceMark(db, mark); err != nil {
			return fiber.NewError(500, "Failed to save attendance")
		}
	}

	return c.Redirect("/teacher/mark?cls=" + escapeQuery(class) + "&subject=" + escapeQuery(subject) + "&date=" + date + "&msg=Attendance+saved")
}

func ReportPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	class, subject, done, err := resolveSelection(c, db, user.ID)
	if done || err != nil {
		return err
	}

	start, end := reports.ResolveRange(c.Query("start"), c.Query("end"), reports.PeriodWeekly, c.Query("today") == "1")

	students, err := database.GetStudentsByClass(db, class)
	if err != nil {
		return fiber.NewError(500, "Failed to fetch students")
	}

	engine := reports.NewEngine(database.NewAttendanceStore(db))
	rows, err := engine.Aggregate(students, reports.Filter{Subject: subject, Class: class}, start, end)
	if err != nil {
		return fiber.NewError(500, "Failed to compute report")
	}

	return c.Render("teacher/report", fiber.Map{
		"Title":   "Attendance Report - JSPM Attendance",
		"user":    user,
		"Report":  rows,
		"Start":   start,
		"End":     end,
		"Class":   class,
		"Subject": subject,
	})
}

func ChangePasswordPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("teacher/change_password", fiber.Map{
		"Title": "Change Password - JSPM Attendance",
		"user":  user,
		"Error": c.Query("err"),
	})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	current := c.FormValue("current")
	newPass := c.FormValue("newpass")
	confirm := c.FormValue("confirm")

	t, err := database.GetTeacherByID(db, user.ID)
	if err != nil {
		return fiber.NewError(500, "Database error")
	}

	if !auth.CheckPasswordHash(current, t.PasswordHash) {
		return c.Redirect("/teacher/change-password?err=Current+password+is+incorrect")
	}
	if newPass == "" || newPass != confirm {
		return c.Redirect("/teacher/change-password?err=Passwords+do+not+match")
	}

	hash, err := auth.HashPassword(newPass)
	if err != nil {
		return fiber.NewError(500, "Failed to hash password")
	}
	if err := database.UpdateTeacherPassword(db, user.ID, hash); err != nil {
		return fiber.NewError(500, "Failed to update password")
	}

	return c.Redirect("/teacher/select")
}
