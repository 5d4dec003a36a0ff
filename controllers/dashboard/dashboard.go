package dashboardController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// InstructorStats summarizes content and learner activity for the dashboard
func InstructorStats(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "INSTRUCTOR" && user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Instructor only.", nil)
	}

	db := database.Database.Db

	var totalSections, activeSections int64
	db.Model(&models.Section{}).Count(&totalSections)
	db.Model(&models.Section{}).Where("is_active = ?", true).Count(&activeSections)

	var totalExercises, publishedExercises int64
	db.Model(&models.Exercise{}).Where("is_deleted = ?", false).Count(&totalExercises)
	db.Model(&models.Exercise{}).Where("is_published = ? AND is_deleted = ?", true, false).Count(&publishedExercises)

	var totalLearners int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "LEARNER", false).Count(&totalLearners)

	today := now.BeginningOfDay()
	weekStart := now.BeginningOfWeek()

	var attemptsToday, attemptsThisWeek, correctToday int64
	db.Model(&models.ExerciseAttempt{}).Where("created_at >= ? AND is_deleted = ?", today, false).Count(&attemptsToday)
	db.Model(&models.ExerciseAttempt{}).Where("created_at >= ? AND is_deleted = ?", weekStart, false).Count(&attemptsThisWeek)
	db.Model(&models.ExerciseAttempt{}).Where("created_at >= ? AND is_correct = ? AND is_deleted = ?", today, true, false).Count(&correctToday)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"sections": fiber.Map{
			"total":  totalSections,
			"active": activeSections,
		},
		"exercises": fiber.Map{
			"total":     totalExercises,
			"published": publishedExercises,
		},
		"learners": totalLearners,
		"attempts": fiber.Map{
			"today":         attemptsToday,
			"correct_today": correctToday,
			"this_week":     attemptsThisWeek,
		},
	})
}
