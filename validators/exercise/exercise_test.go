package exerciseValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

const validMCQBody = `{
	"section_id": 1,
	"type": "MCQ",
	"prompt": "Pick the article",
	"options": [
		{"option_text": "der", "is_correct": true},
		{"option_text": "die", "is_correct": false}
	]
}`

func TestCreateExerciseValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/exercise", CreateExercise(), func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedExercise").(*CreateExerciseRequest)
		require.True(t, ok)
		assert.Nil(t, reqData.OrderIndex)
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/exercise", validMCQBody))

	// MCQ needs exactly one correct option
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/exercise", `{
		"section_id": 1, "type": "MCQ", "prompt": "p",
		"options": [{"option_text": "a"}, {"option_text": "b"}]
	}`))

	// Non-MCQ types need an expected answer
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/exercise", `{
		"section_id": 1, "type": "FILL_BLANK", "prompt": "p"
	}`))

	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/exercise", `{
		"section_id": 1, "type": "ESSAY", "prompt": "p", "answer": "a"
	}`))
}

func TestCreateExerciseValidatorKeepsExplicitZeroOrder(t *testing.T) {
	app := fiber.New()
	app.Post("/exercise", CreateExercise(), func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedExercise").(*CreateExerciseRequest)
		require.True(t, ok)
		// Explicit 0 must stay distinguishable from an absent order_index
		require.NotNil(t, reqData.OrderIndex)
		assert.Equal(t, 0, *reqData.OrderIndex)
		return c.SendStatus(fiber.StatusOK)
	})

	body := `{
		"section_id": 1,
		"type": "FILL_BLANK",
		"prompt": "Ich ___ ein Buch",
		"answer": "lese",
		"order_index": 0
	}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/exercise", body))
}

func TestSubmitAttemptValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/exercise/:id/attempt", SubmitAttempt(), func(c *fiber.Ctx) error {
		assert.Equal(t, 7, c.Locals("exerciseID").(int))
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/exercise/7/attempt", `{"selected_option_ids":[3]}`))
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/exercise/7/attempt", `{"answer_text":"lese"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/exercise/7/attempt", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/exercise/abc/attempt", `{"answer_text":"x"}`))
}
