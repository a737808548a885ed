package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"jspm-attendance/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Get("/logout", LogoutAPI)
	auth.Post("/logout", LogoutAPI)

	// Post-login landing, fans out per role
	app.Get("/home", AuthMiddleware, HomeRedirect)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/home")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - JSPM Attendance",
		"Error": c.Query("err"),
	}, "")
}

func HomeRedirect(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	switch user.Role {
	case models.RoleTeacher:
		return c.Redirect("/teacher/select")
	case models.RoleStudent:
		return c.Redirect("/student/dashboard")
	case models.RoleHOD:
		return c.Redirect("/hod")
	case models.RoleAdmin:
		return c.Redirect("/admin/reports")
	}
	return c.Redirect("/auth/login")
}

// AuthMiddleware validates the JWT cookie and sets the request identity.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user := &models.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Role:  claims.Role,
		Class: claims.Class,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_role", user.Role)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks the session role against the allowed set.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)

		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - JSPM Attendance",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
			"user":         user,
		})
	}
}
