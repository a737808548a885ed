package auth

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/models"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Role     string `form:"role" json:"role"`
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect("/auth/login?err=Invalid+request")
	}
	req.Username = strings.TrimSpace(req.Username)

	db := config.GetDB()
	var user *models.User
	var err error

	switch req.Role {
	case models.RoleStudent:
		user, err = loginStudent(db, req.Username, req.Password)
	case models.RoleTeacher:
		user, err = loginTeacher(db, req.Username, req.Password)
	case models.RoleHOD:
		user, err = loginHOD(db, req.Username, req.Password)
	case models.RoleAdmin:
		user, err = loginAdmin(db, req.Username, req.Password)
	default:
		return c.Redirect("/auth/login?err=Select+a+role")
	}

	if err != nil && err != sql.ErrNoRows {
		return fiber.NewError(500, "Database error")
	}
	if user == nil {
		return c.Redirect("/auth/login?err=Invalid+credentials")
	}

	token, err := GenerateJWT(user.ID, user.Name, user.Role, user.Class)
	if err != nil {
		return fiber.NewError(500, "Failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/home")
}

func loginStudent(db *sql.DB, username, password string) (*models.User, error) {
	s, err := database.GetStudentByLogin(db, username)
	if err != nil {
		return nil, err
	}
	if !CheckPasswordHash(password, s.PasswordHash) {
		return nil, nil
	}
	return &models.User{ID: s.ID, Name: s.Name, Role: models.RoleStudent, Class: s.Class}, nil
}

func loginTeacher(db *sql.DB, username, password string) (*models.User, error) {
	t, err := database.GetTeacherByPhone(db, username)
	if err != nil {
		return nil, err
	}
	if !CheckPasswordHash(password, t.PasswordHash) {
		return nil, nil
	}
	return &models.User{ID: t.ID, Name: t.Name, Role: models.RoleTeacher}, nil
}

func loginHOD(db *sql.DB, username, password string) (*models.User, error) {
	h, err := database.GetHODByPhone(db, username)
	if err != nil {
		return nil, err
	}
	if !CheckPasswordHash(password, h.PasswordHash) {
		return nil, nil
	}
	return &models.User{ID: h.ID, Name: h.Name, Role: models.RoleHOD}, nil
}

func loginAdmin(db *sql.DB, username, password string) (*models.User, error) {
	a, err := database.GetAdminByEmail(db, username)
	if err != nil {
		return nil, err
	}
	if !CheckPasswordHash(password, a.PasswordHash) {
		return nil, nil
	}
	return &models.User{ID: a.ID, Name: a.Name, Role: models.RoleAdmin}, nil
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}
