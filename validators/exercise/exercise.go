package exerciseValidator

import (
	"lingo/middleware"
	"lingo/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// OptionInput is one MCQ option within a create/update payload
type OptionInput struct {
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index"`
}

// CreateExerciseRequest is the parsed exercise creation payload
type CreateExerciseRequest struct {
	SectionID   uint          `json:"section_id"`
	Type        string        `json:"type"`
	Prompt      string        `json:"prompt"`
	Answer      string        `json:"answer"`
	Explanation string        `json:"explanation"`
	OrderIndex  *int          `json:"order_index"`
	Options     []OptionInput `json:"options"`
}

// UpdateExerciseRequest is the parsed partial exercise update
type UpdateExerciseRequest struct {
	Prompt      *string `json:"prompt"`
	Answer      *string `json:"answer"`
	Explanation *string `json:"explanation"`
	OrderIndex  *int    `json:"order_index"`
}

// SubmitAttemptRequest is a learner's answer submission
type SubmitAttemptRequest struct {
	SelectedOptionIDs []uint `json:"selected_option_ids"`
	AnswerText        string `json:"answer_text"`
}

func validExerciseType(t string) bool {
	switch t {
	case models.ExerciseTypeMCQ, models.ExerciseTypeFillBlank, models.ExerciseTypeTranslate:
		return true
	}
	return false
}

func CreateExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateExerciseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["section_id"] = "Section id is required!"
		}

		if !validExerciseType(reqData.Type) {
			errors["type"] = "Type must be MCQ, FILL_BLANK or TRANSLATE!"
		}

		if strings.TrimSpace(reqData.Prompt) == "" {
			errors["prompt"] = "Prompt is required!"
		}

		if reqData.Type == models.ExerciseTypeMCQ {
			if len(reqData.Options) < 2 {
				errors["options"] = "MCQ exercises need at least 2 options!"
			} else {
				correct := 0
				for _, opt := range reqData.Options {
					if strings.TrimSpace(opt.OptionText) == "" {
						errors["options"] = "Option text cannot be empty!"
					}
					if opt.IsCorrect {
						correct++
					}
				}
				if correct != 1 {
					errors["options"] = "MCQ exercises need exactly one correct option!"
				}
			}
		} else if strings.TrimSpace(reqData.Answer) == "" {
			errors["answer"] = "Answer is required for this exercise type!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExercise", reqData)
		return c.Next()
	}
}

func UpdateExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		exerciseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || exerciseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exercise id!", nil)
		}

		reqData := new(UpdateExerciseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Prompt != nil && strings.TrimSpace(*reqData.Prompt) == "" {
			errors["prompt"] = "Prompt cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("exerciseID", exerciseID)
		c.Locals("validatedExerciseUpdate", reqData)
		return c.Next()
	}
}

// ExerciseID validates the :id route parameter
func ExerciseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		exerciseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || exerciseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exercise id!", nil)
		}

		c.Locals("exerciseID", exerciseID)
		return c.Next()
	}
}

func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		exerciseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || exerciseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exercise id!", nil)
		}

		reqData := new(SubmitAttemptRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.SelectedOptionIDs) == 0 && strings.TrimSpace(reqData.AnswerText) == "" {
			errors["answer"] = "An answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("exerciseID", exerciseID)
		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// DictionaryWord validates the :word route parameter for authoring lookups
func DictionaryWord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		word := strings.TrimSpace(c.Params("word"))
		if word == "" || len(word) > 64 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid word!", nil)
		}

		c.Locals("dictionaryWord", word)
		return c.Next()
	}
}
