package workers

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/roost-dev/roost/internal/config"
	"github.com/roost-dev/roost/internal/models"
)

// StartExpiryScheduler periodically marks stale available listings as
// expired, on the cron schedule from config. Blocks; run in a goroutine.
func StartExpiryScheduler(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) {
	schedule := parseSchedule(cfg.Listings.ExpirySchedule, logger)
	if schedule == nil {
		logger.Info().Msg("No listing expiry schedule configured")
		return
	}

	for {
		next := schedule.Next(time.Now())
		logger.Debug().Time("next_run", next).Msg("Expiry sweep scheduled")
		time.Sleep(time.Until(next))

		expireStaleListings(db, cfg.Listings.MaxAgeDays, logger)
	}
}

func parseSchedule(expr string, logger zerolog.Logger) cron.Schedule {
	if expr == "" {
		return nil
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(expr)
	if err != nil {
		logger.Error().Err(err).Str("schedule", expr).Msg("Invalid expiry schedule")
		return nil
	}
	return schedule
}

func expireStaleListings(db *gorm.DB, maxAgeDays int, logger zerolog.Logger) {
	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)

	result := db.Model(&models.Property{}).
		Where("status = ? AND created_at < ?", models.StatusAvailable, cutoff).
		Update("status", models.StatusExpired)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Failed to expire stale listings")
		return
	}

	if result.RowsAffected > 0 {
		logger.Info().Int64("count", result.RowsAffected).Msg("Expired stale listings")
	}
}
