package sectionValidator

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

func TestCreateSectionValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/section", CreateSection(), func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedSection").(*CreateSectionRequest)
		require.True(t, ok)
		assert.Equal(t, "Grammar", reqData.Name)
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/section", `{"name":"Grammar"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/section", `{"name":"  "}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/section", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/section", `not json`))
}

func TestUpdateSectionValidator(t *testing.T) {
	app := fiber.New()
	app.Put("/section/:id", UpdateSection(), func(c *fiber.Ctx) error {
		assert.Equal(t, 3, c.Locals("sectionID").(int))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("PUT", "/section/3", strings.NewReader(`{"order_index":2}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// parent_id and clear_parent are mutually exclusive
	req = httptest.NewRequest("PUT", "/section/3", strings.NewReader(`{"parent_id":1,"clear_parent":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Bad id
	req = httptest.NewRequest("PUT", "/section/zero", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChildrenQueryValidator(t *testing.T) {
	app := fiber.New()
	app.Get("/children", ChildrenQuery(), func(c *fiber.Ctx) error {
		parentID := c.Locals("parentID").(*uint)
		if parentID == nil {
			return c.SendString("roots")
		}
		return c.SendString("children")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/children", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/children?parent_id=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/children?parent_id=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
