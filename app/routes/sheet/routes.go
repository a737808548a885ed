package sheet

import "github.com/gofiber/fiber/v2"

// The attendance sheet is a read-only view shared with notice boards and
// parent groups; it intentionally sits outside the login wall.
func SetupSheetRoutes(app *fiber.App) {
	app.Get("/sheet", SheetPage)
	app.Get("/sheet/export/csv", ExportCSVAPI)
	app.Get("/sheet/export/pdf", ExportDefaultersPDFAPI)
}
