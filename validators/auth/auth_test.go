package authValidator

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

func TestResendOTPValidatorAcceptsEmailOnlyBody(t *testing.T) {
	app := fiber.New()
	app.Post("/resend", ResendOTP(), func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedResendOTP").(*ResendOTPRequest)
		require.True(t, ok)
		assert.Equal(t, "ana@example.com", reqData.Email)
		return c.SendStatus(fiber.StatusOK)
	})

	// No code field required to request a fresh one
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/resend", `{"email":"ana@example.com"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/resend", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/resend", `not json`))
}

func TestVerifyEmailValidatorRequiresCode(t *testing.T) {
	app := fiber.New()
	app.Post("/verify", VerifyEmail(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/verify", `{"email":"ana@example.com","code":"123456"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/verify", `{"email":"ana@example.com"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/verify", `{"email":"ana@example.com","code":"123"}`))
}

func TestSignupValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/signup", Signup(), func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
		require.True(t, ok)
		assert.Equal(t, "Ana", reqData.Name)
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/signup",
		`{"name":"Ana","email":"ana@example.com","password":"longenough1"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/signup",
		`{"name":"Ana","email":"not-an-email","password":"longenough1"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/signup",
		`{"name":"Ana","email":"ana@example.com","password":"short"}`))
}
