package main

import (
	"lingo/config"
	"lingo/database"
	authRoutes "lingo/routers/authRoutes"
	dashboardRoutes "lingo/routers/dashboardRoutes"
	exerciseRoutes "lingo/routers/exerciseRoutes"
	sectionRoutes "lingo/routers/sectionRoutes"
	userRoutes "lingo/routers/userRoutes"
	"lingo/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	sectionRoutes.SetupSectionRoutes(app)
	exerciseRoutes.SetupExerciseRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	utils.StartMaintenanceScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
