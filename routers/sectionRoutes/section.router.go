package sectionRoutes

import (
	sectionController "lingo/controllers/section"
	"lingo/middleware"
	sectionValidator "lingo/validators/section"

	"github.com/gofiber/fiber/v2"
)

// SetupSectionRoutes sets up instructor section management and learner
// navigation routes
func SetupSectionRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor/section")

	// Section CRUD (soft deactivation only, never hard delete)
	instructorGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-sections"), sectionValidator.CreateSection(), sectionController.CreateSection)
	instructorGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-sections"), sectionValidator.UpdateSection(), sectionController.UpdateSection)
	instructorGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-sections"), sectionValidator.SectionID(), sectionController.DeactivateSection)
	instructorGroup.Post("/:id/activate", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-sections"), sectionValidator.SectionID(), sectionController.ActivateSection)

	// Authoring views over the full tree, inactive included
	instructorGroup.Get("/tree", middleware.JWTMiddleware, sectionController.InstructorTree)
	instructorGroup.Get("/dropdown", middleware.JWTMiddleware, sectionController.SectionDropdown)
	instructorGroup.Get("/children", middleware.JWTMiddleware, sectionValidator.ChildrenQuery(), sectionController.InstructorChildren)

	// Learner navigation, active sections only
	learnerGroup := app.Group("/section")
	learnerGroup.Get("/tree", middleware.JWTMiddleware, sectionController.LearnerTree)
	learnerGroup.Get("/children", middleware.JWTMiddleware, sectionValidator.ChildrenQuery(), sectionController.LearnerChildren)
	learnerGroup.Get("/:id/path", middleware.JWTMiddleware, sectionValidator.SectionID(), sectionController.SectionPath)
}
