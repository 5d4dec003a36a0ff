package dashboardRoutes

import (
	dashboardController "lingo/controllers/dashboard"
	"lingo/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the instructor dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/instructor/dashboard")

	dashGroup.Get("/stats", middleware.JWTMiddleware, dashboardController.InstructorStats)
}
