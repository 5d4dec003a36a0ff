package sectionController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/tree"

	sectionValidator "lingo/validators/section"

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

// CreateSection creates a new topic-tree section
func CreateSection(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedSection").(*sectionValidator.CreateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check the declared parent exists
	if reqData.ParentID != nil {
		var parent models.Section
		if err := db.Where("id = ?", *reqData.ParentID).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent section not found!", nil)
		}
	}

	// Append to the sibling group when no order index is given
	orderIndex := 0
	if reqData.OrderIndex != nil {
		orderIndex = *reqData.OrderIndex
	} else {
		var maxOrder int
		query := db.Model(&models.Section{}).Select("COALESCE(MAX(order_index), -1)")
		if reqData.ParentID != nil {
			query = query.Where("parent_id = ?", *reqData.ParentID)
		} else {
			query = query.Where("parent_id IS NULL")
		}
		query.Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	section := models.Section{
		Name:       reqData.Name,
		ParentID:   reqData.ParentID,
		OrderIndex: orderIndex,
		IsActive:   true,
	}

	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// UpdateSection applies a partial update; reparenting is rejected when it
// would make the section its own ancestor.
func UpdateSection(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	sectionID := c.Locals("sectionID").(int)

	reqData, ok := c.Locals("validatedSectionUpdate").(*sectionValidator.UpdateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if reqData.Name != nil {
		section.Name = *reqData.Name
	}
	if reqData.OrderIndex != nil {
		section.OrderIndex = *reqData.OrderIndex
	}

	if reqData.ClearParent {
		section.ParentID = nil
	} else if reqData.ParentID != nil {
		if *reqData.ParentID == section.ID {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "A section cannot be its own parent!", nil)
		}

		var parent models.Section
		if err := db.Where("id = ?", *reqData.ParentID).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent section not found!", nil)
		}

		var rows []models.Section
		if err := db.Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
		}
		if tree.WouldCycle(rows, section.ID, *reqData.ParentID) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Reparenting would create a cycle!", nil)
		}

		section.ParentID = reqData.ParentID
	}

	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// DeactivateSection soft deletes a section. Children are not cascaded:
// they stay active and surface as roots in the learner tree.
func DeactivateSection(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	sectionID := c.Locals("sectionID").(int)

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.IsActive = false
	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deactivated successfully!", nil)
}

// ActivateSection re-enables a previously deactivated section
func ActivateSection(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	sectionID := c.Locals("sectionID").(int)

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.IsActive = true
	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section activated successfully!", section)
}

// InstructorTree returns the full section forest including inactive nodes
func InstructorTree(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	var rows []models.Section
	if err := database.Database.Db.Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	forest := tree.BuildTree(rows, true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"sections": forest,
	})
}

// SectionDropdown returns the flattened, indented section list used by the
// authoring view's select control.
func SectionDropdown(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	var rows []models.Section
	if err := database.Database.Db.Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	entries := tree.Flatten(tree.BuildTree(rows, true))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"entries": entries,
	})
}

// InstructorChildren lists the direct children of a parent, inactive included
func InstructorChildren(c *fiber.Ctx) error {
	if _, err := requireInstructor(c); err != nil {
		return err
	}

	parentID := c.Locals("parentID").(*uint)

	rows, err := fetchChildRows(parentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	children := tree.ListChildren(rows, parentID, true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"sections": children,
	})
}

// fetchChildRows retrieves the candidate child rows for one parent group
func fetchChildRows(parentID *uint) ([]models.Section, error) {
	var rows []models.Section
	query := database.Database.Db
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
