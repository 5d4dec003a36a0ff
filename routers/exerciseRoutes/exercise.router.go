package exerciseRoutes

import (
	exerciseController "lingo/controllers/exercise"
	"lingo/middleware"
	exerciseValidator "lingo/validators/exercise"
	sectionValidator "lingo/validators/section"

	"github.com/gofiber/fiber/v2"
)

// SetupExerciseRoutes sets up instructor authoring and learner practice routes
func SetupExerciseRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor/exercise")

	instructorGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-exercises"), exerciseValidator.CreateExercise(), exerciseController.CreateExercise)
	instructorGroup.Put("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-exercises"), exerciseValidator.UpdateExercise(), exerciseController.UpdateExercise)
	instructorGroup.Delete("/:id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-exercises"), exerciseValidator.ExerciseID(), exerciseController.DeleteExercise)
	instructorGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-exercises"), exerciseValidator.ExerciseID(), exerciseController.PublishExercise)
	instructorGroup.Get("/section/:id", middleware.JWTMiddleware, sectionValidator.SectionID(), exerciseController.ListSectionExercises)
	instructorGroup.Get("/:id/results", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("review-results"), exerciseValidator.ExerciseID(), exerciseController.ExerciseResults)
	instructorGroup.Get("/dictionary/:word", middleware.JWTMiddleware, exerciseValidator.DictionaryWord(), exerciseController.DictionaryLookup)

	learnerGroup := app.Group("/exercise")
	learnerGroup.Get("/section/:id", middleware.JWTMiddleware, sectionValidator.SectionID(), exerciseController.ListExercises)
	learnerGroup.Post("/:id/attempt", middleware.JWTMiddleware, exerciseValidator.SubmitAttempt(), exerciseController.SubmitAttempt)
	learnerGroup.Get("/results", middleware.JWTMiddleware, exerciseController.MyResults)
}
