package exerciseController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/utils"

	exerciseValidator "lingo/validators/exercise"

	"github.com/gofiber/fiber/v2"
)

// requireInstructor loads the authenticated user and checks the role gate
func requireInstructor(c *fiber.Ctx) (*models.User, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "INSTRUCTOR" && user.Role != "ADMIN" {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Instructor only.", nil)
	}

	return &user, nil
}

// CreateExercise creates an exercise with its MCQ options in one transaction
func CreateExercise(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedExercise").(*exerciseValidator.CreateExerciseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The target section must exist; inactive is fine (instructors can
	// author ahead of activation), deleted is not possible (soft delete only)
	var section models.Section
	if err := db.Where("id = ?", reqData.SectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	// Append to the section's exercise list when no order index is given;
	// an explicit 0 is honored as-is
	orderIndex := 0
	if reqData.OrderIndex != nil {
		orderIndex = *reqData.OrderIndex
	} else {
		var maxOrder int
		db.Model(&models.Exercise{}).Where("section_id = ? AND is_deleted = ?", reqData.SectionID, false).
			Select("COALESCE(MAX(order_index), -1)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	exercise := models.Exercise{
		SectionID:   reqData.SectionID,
		Type:        reqData.Type,
		Prompt:      reqData.Prompt,
		Answer:      reqData.Answer,
		Explanation: reqData.Explanation,
		OrderIndex:  orderIndex,
	}

	tx := db.Begin()
	if err := tx.Create(&exercise).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exercise!", nil)
	}

	options := make([]models.ExerciseOption, 0, len(reqData.Options))
	for i, opt := range reqData.Options {
		options = append(options, models.ExerciseOption{
			ExerciseID: exercise.ID,
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: i,
		})
	}
	if len(options) > 0 {
		if err := tx.Create(&options).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exercise options!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exercise created successfully!", fiber.Map{
		"exercise": exercise,
		"options":  options,
	})
}

// UpdateExercise applies a partial update to an exercise
func UpdateExercise(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	exerciseID := c.Locals("exerciseID").(int)

	var exercise models.Exercise
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	reqData, ok := c.Locals("validatedExerciseUpdate").(*exerciseValidator.UpdateExerciseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Prompt != nil {
		exercise.Prompt = *reqData.Prompt
	}
	if reqData.Answer != nil {
		exercise.Answer = *reqData.Answer
	}
	if reqData.Explanation != nil {
		exercise.Explanation = *reqData.Explanation
	}
	if reqData.OrderIndex != nil {
		exercise.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise updated successfully!", exercise)
}

// DeleteExercise soft deletes an exercise and its options
func DeleteExercise(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	exerciseID := c.Locals("exerciseID").(int)

	var exercise models.Exercise
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	tx := database.Database.Db.Begin()

	exercise.IsDeleted = true
	if err := tx.Save(&exercise).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete exercise!", nil)
	}

	if err := tx.Model(&models.ExerciseOption{}).Where("exercise_id = ?", exerciseID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete exercise options!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise deleted successfully!", nil)
}

// PublishExercise makes an exercise visible to learners
func PublishExercise(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	exerciseID := c.Locals("exerciseID").(int)

	var exercise models.Exercise
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	exercise.IsPublished = true
	if err := database.Database.Db.Save(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise published successfully!", exercise)
}

// ListSectionExercises lists all exercises of a section for authoring,
// unpublished included, options with correctness flags.
func ListSectionExercises(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	sectionID := c.Locals("sectionID").(int)

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var exercises []models.Exercise
	if err := db.Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Order("order_index asc").Find(&exercises).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	type ExerciseWithOptions struct {
		models.Exercise
		Options []models.ExerciseOption `json:"options"`
	}

	result := make([]ExerciseWithOptions, len(exercises))
	for i, ex := range exercises {
		var options []models.ExerciseOption
		db.Where("exercise_id = ? AND is_deleted = ?", ex.ID, false).
			Order("order_index asc").Find(&options)
		result[i] = ExerciseWithOptions{
			Exercise: ex,
			Options:  options,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercises fetched successfully!", fiber.Map{
		"section":   section,
		"exercises": result,
	})
}

// ExerciseResults lists learner attempts for one exercise
func ExerciseResults(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	exerciseID := c.Locals("exerciseID").(int)

	db := database.Database.Db

	var exercise models.Exercise
	if err := db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	var attempts []models.ExerciseAttempt
	if err := db.Where("exercise_id = ? AND is_deleted = ?", exerciseID, false).
		Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	type AttemptWithUser struct {
		models.ExerciseAttempt
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	result := make([]AttemptWithUser, len(attempts))
	for i, attempt := range attempts {
		var user models.User
		db.Where("id = ?", attempt.UserID).First(&user)
		result[i] = AttemptWithUser{
			ExerciseAttempt: attempt,
			UserName:        user.Name,
			UserEmail:       user.Email,
		}
		result[i].User = models.User{}
		result[i].Exercise = models.Exercise{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"exercise": exercise,
		"attempts": result,
	})
}

// DictionaryLookup proxies the dictionary API for authoring hints
func DictionaryLookup(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	word := c.Locals("dictionaryWord").(string)

	entries, err := utils.LookupWord(word)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Dictionary lookup failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dictionary entries fetched successfully!", fiber.Map{
		"entries": entries,
	})
}
