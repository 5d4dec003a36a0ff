package exerciseController

import (
	"encoding/json"
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"strings"

	exerciseValidator "lingo/validators/exercise"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LearnerOption is an exercise option with the correctness flag stripped
type LearnerOption struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
	OrderIndex int    `json:"order_index"`
}

// ListExercises returns the published exercises of an active section,
// options without correctness flags.
func ListExercises(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND is_active = ?", sectionID, true).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var exercises []models.Exercise
	if err := db.Where("section_id = ? AND is_published = ? AND is_deleted = ?", sectionID, true, false).
		Order("order_index asc").Find(&exercises).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	type LearnerExercise struct {
		ID         uint            `json:"id"`
		Type       string          `json:"type"`
		Prompt     string          `json:"prompt"`
		OrderIndex int             `json:"order_index"`
		Options    []LearnerOption `json:"options"`
	}

	result := make([]LearnerExercise, len(exercises))
	for i, ex := range exercises {
		var options []models.ExerciseOption
		db.Where("exercise_id = ? AND is_deleted = ?", ex.ID, false).
			Order("order_index asc").Find(&options)

		learnerOptions := make([]LearnerOption, len(options))
		for j, opt := range options {
			learnerOptions[j] = LearnerOption{
				ID:         opt.ID,
				OptionText: opt.OptionText,
				OrderIndex: opt.OrderIndex,
			}
		}

		result[i] = LearnerExercise{
			ID:         ex.ID,
			Type:       ex.Type,
			Prompt:     ex.Prompt,
			OrderIndex: ex.OrderIndex,
			Options:    learnerOptions,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercises fetched successfully!", fiber.Map{
		"section":   section,
		"exercises": result,
	})
}

// SubmitAttempt scores a learner's answer server-side and records the attempt
func SubmitAttempt(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	exerciseID := c.Locals("exerciseID").(int)

	reqData, ok := c.Locals("validatedAttempt").(*exerciseValidator.SubmitAttemptRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var exercise models.Exercise
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", exerciseID, true, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	isCorrect := false
	switch exercise.Type {
	case models.ExerciseTypeMCQ:
		var correctIDs []uint
		var options []models.ExerciseOption
		db.Where("exercise_id = ? AND is_correct = ? AND is_deleted = ?", exercise.ID, true, false).Find(&options)
		for _, opt := range options {
			correctIDs = append(correctIDs, opt.ID)
		}
		isCorrect = sameIDSet(reqData.SelectedOptionIDs, correctIDs)
	default:
		submitted := strings.ToLower(strings.TrimSpace(reqData.AnswerText))
		expected := strings.ToLower(strings.TrimSpace(exercise.Answer))
		isCorrect = submitted != "" && submitted == expected
	}

	score := 0
	if isCorrect {
		score = 1
	}

	var attemptCount int64
	db.Model(&models.ExerciseAttempt{}).
		Where("user_id = ? AND exercise_id = ? AND is_deleted = ?", user.ID, exercise.ID, false).
		Count(&attemptCount)

	answers, err := json.Marshal(fiber.Map{
		"selected_option_ids": reqData.SelectedOptionIDs,
		"answer_text":         reqData.AnswerText,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	attempt := models.ExerciseAttempt{
		Reference:     uuid.NewString(),
		UserID:        user.ID,
		ExerciseID:    exercise.ID,
		Answers:       datatypes.JSON(answers),
		Score:         score,
		MaxScore:      1,
		IsCorrect:     isCorrect,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	response := fiber.Map{
		"reference":      attempt.Reference,
		"is_correct":     attempt.IsCorrect,
		"score":          attempt.Score,
		"max_score":      attempt.MaxScore,
		"attempt_number": attempt.AttemptNumber,
	}
	if isCorrect || attempt.AttemptNumber > 1 {
		// Reveal the explanation after a correct answer or a retry
		response["explanation"] = exercise.Explanation
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt recorded successfully!", response)
}

// sameIDSet compares two id slices as sets
func sameIDSet(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uint]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	if len(set) != len(b) {
		return false
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}

// MyResults lists the authenticated learner's attempts, newest first
func MyResults(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var attempts []models.ExerciseAttempt
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").Limit(100).Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	type ResultEntry struct {
		models.ExerciseAttempt
		Prompt    string `json:"prompt"`
		SectionID uint   `json:"section_id"`
	}

	result := make([]ResultEntry, len(attempts))
	for i, attempt := range attempts {
		var exercise models.Exercise
		db.Where("id = ?", attempt.ExerciseID).First(&exercise)
		result[i] = ResultEntry{
			ExerciseAttempt: attempt,
			Prompt:          exercise.Prompt,
			SectionID:       exercise.SectionID,
		}
		result[i].User = models.User{}
		result[i].Exercise = models.Exercise{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", fiber.Map{
		"attempts": result,
	})
}
