package models

import "gorm.io/gorm"

// Section represents a topic-tree node (a grammar/vocabulary category).
// ParentID is nil for root-level sections. Sections are never hard-removed:
// deactivation flips IsActive so exercises keep a valid SectionID.
type Section struct {
	gorm.Model
	Name       string `json:"name"`
	ParentID   *uint  `json:"parent_id" gorm:"index"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Sibling order, ties broken by id
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}
