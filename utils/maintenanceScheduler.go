package utils

import (
	"lingo/database"
	"lingo/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[MAINTENANCE %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredOTPs marks expired, unused OTP codes as deleted
func purgeExpiredOTPs() {
	db := database.Database.Db

	result := db.Model(&models.OTP{}).
		Where("expires_at < ? AND is_used = ? AND is_deleted = ?", time.Now(), false, false).
		Update("is_deleted", true)
	if result.Error != nil {
		logScheduler("Error purging expired OTPs: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged expired OTPs: " + time.Now().Format(time.RFC3339))
	}
}

// releaseExpiredLockouts unblocks accounts whose lockout window has passed
func releaseExpiredLockouts() {
	db := database.Database.Db

	result := db.Model(&models.User{}).
		Where("is_blocked = ? AND blocked_until IS NOT NULL AND blocked_until < ?", true, time.Now()).
		Updates(map[string]interface{}{
			"is_blocked":            false,
			"blocked_until":         nil,
			"failed_login_attempts": 0,
		})
	if result.Error != nil {
		logScheduler("Error releasing lockouts: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Released expired account lockouts")
	}
}

// StartMaintenanceScheduler runs periodic cleanup jobs
func StartMaintenanceScheduler() {
	c := cron.New()

	// Every hour: drop stale OTPs and lift expired login blocks
	if _, err := c.AddFunc("@hourly", func() {
		purgeExpiredOTPs()
		releaseExpiredLockouts()
	}); err != nil {
		log.Fatalf("Failed to schedule maintenance jobs: %v", err)
	}

	c.Start()
	logScheduler("Maintenance scheduler started")
}
