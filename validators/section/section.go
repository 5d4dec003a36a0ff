package sectionValidator

import (
	"lingo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateSectionRequest is the parsed section creation payload
type CreateSectionRequest struct {
	Name       string `json:"name"`
	ParentID   *uint  `json:"parent_id"`
	OrderIndex *int   `json:"order_index"`
}

// UpdateSectionRequest is the parsed partial section update. Each field is
// independently optional; absent fields are left untouched.
type UpdateSectionRequest struct {
	Name        *string `json:"name"`
	ParentID    *uint   `json:"parent_id"`
	ClearParent bool    `json:"clear_parent"` // Move the section to root level
	OrderIndex  *int    `json:"order_index"`
}

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) > 120 {
			errors["name"] = "Name must be at most 120 characters long!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID, err := strconv.Atoi(c.Params("id"))
		if err != nil || sectionID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}

		reqData := new(UpdateSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}

		if reqData.ParentID != nil && reqData.ClearParent {
			errors["parent_id"] = "Cannot set parent_id and clear_parent together!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", sectionID)
		c.Locals("validatedSectionUpdate", reqData)
		return c.Next()
	}
}

// SectionID validates the :id route parameter
func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID, err := strconv.Atoi(c.Params("id"))
		if err != nil || sectionID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}

		c.Locals("sectionID", sectionID)
		return c.Next()
	}
}

// ChildrenQuery validates the optional parent_id query parameter
func ChildrenQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("parent_id")
		if raw == "" {
			c.Locals("parentID", (*uint)(nil))
			return c.Next()
		}

		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid parent_id!", nil)
		}

		parentID := uint(parsed)
		c.Locals("parentID", &parentID)
		return c.Next()
	}
}
