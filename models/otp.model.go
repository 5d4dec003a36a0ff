package models

import (
	"time"

	"gorm.io/gorm"
)

type OTP struct {
	gorm.Model
	UserID    uint      `gorm:"not null" json:"user_id"`
	Email     string    `gorm:"size:100;index" json:"email,omitempty"`
	Code      string    `gorm:"size:6;not null" json:"code"` // The OTP code
	Purpose   string    `gorm:"size:50" json:"purpose"`      // e.g. EMAIL_VERIFY
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`  // Expiry time for the OTP
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	IsDeleted bool      `gorm:"default:false"`
}
