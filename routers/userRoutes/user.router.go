package userRoutes

import (
	userController "lingo/controllers/user"
	"lingo/middleware"
	userValidator "lingo/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile management routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)
	userGroup.Put("/password", middleware.JWTMiddleware, userValidator.ChangePassword(), userController.ChangePassword)
	userGroup.Post("/avatar", middleware.JWTMiddleware, userController.UploadAvatar)
}
