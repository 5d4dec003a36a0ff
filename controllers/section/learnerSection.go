package sectionController

import (
	"lingo/database"
	"lingo/middleware"
	"lingo/models"
	"lingo/tree"

	"github.com/gofiber/fiber/v2"
)

// LearnerTree returns the active-only section forest. Inactive rows are
// filtered before assembly, so an active child of a deactivated parent
// appears as a top-level entry rather than disappearing.
func LearnerTree(c *fiber.Ctx) error {
	var rows []models.Section
	if err := database.Database.Db.Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	forest := tree.BuildTree(rows, false)

	// An empty forest is a legitimate result: no sections defined yet
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"sections": forest,
	})
}

// LearnerChildren lists the active direct children of a parent for
// one-level-at-a-time drill-down navigation.
func LearnerChildren(c *fiber.Ctx) error {
	parentID := c.Locals("parentID").(*uint)

	rows, err := fetchChildRows(parentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	children := tree.ListChildren(rows, parentID, false)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"sections": children,
	})
}

// SectionPath returns the breadcrumb chain from the root down to a section
func SectionPath(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	var rows []models.Section
	if err := database.Database.Db.Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	chain := tree.Path(rows, uint(sectionID))
	if len(chain) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if !chain[len(chain)-1].IsActive {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Path fetched successfully!", fiber.Map{
		"path": chain,
	})
}
