package authRoutes

import (
	authController "lingo/controllers/auth"
	authValidator "lingo/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/verify-email", authValidator.VerifyEmail(), authController.VerifyEmail)
	authGroup.Post("/resend-otp", authValidator.ResendOTP(), authController.ResendOTP)
}
