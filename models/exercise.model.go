package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exercise types
const (
	ExerciseTypeMCQ       = "MCQ"
	ExerciseTypeFillBlank = "FILL_BLANK"
	ExerciseTypeTranslate = "TRANSLATE"
)

// Exercise is a practice item attached to exactly one Section
type Exercise struct {
	gorm.Model
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	Type        string `json:"type" gorm:"default:'MCQ'"` // MCQ, FILL_BLANK, TRANSLATE
	Prompt      string `json:"prompt"`
	Answer      string `json:"answer"` // Expected text for FILL_BLANK / TRANSLATE
	Explanation string `json:"explanation"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// ExerciseOption represents an option for a multiple choice exercise
type ExerciseOption struct {
	gorm.Model
	ExerciseID uint   `json:"exercise_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// ExerciseAttempt represents a learner's attempt at answering an exercise
type ExerciseAttempt struct {
	gorm.Model
	Reference     string         `json:"reference" gorm:"size:36;index"` // Public attempt id
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	ExerciseID    uint           `json:"exercise_id" gorm:"index;not null"`
	Answers       datatypes.JSON `json:"answers"` // Selected option IDs or submitted text
	Score         int            `json:"score"`
	MaxScore      int            `json:"max_score"`
	IsCorrect     bool           `json:"is_correct" gorm:"default:false"`
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool           `gorm:"default:false"`
	User          User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Exercise      Exercise       `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE"`
}
