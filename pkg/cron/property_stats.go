// pkg/cron/property_stats.go
package cron

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kejani_backend/internal/model"
)

// InitPropertyStatsCron schedules the rolling view-counter resets.
// Counters accumulate through model hooks on every recorded view; these
// jobs zero the daily, weekly and monthly windows shortly after
// midnight so the windows stay aligned with the calendar.
func InitPropertyStatsCron(db *gorm.DB, log zerolog.Logger) *cron.Cron {
	c := cron.New()

	// Her gün 00:05'te
	_, err := c.AddFunc("5 0 * * *", func() {
		resetCounter(db, log, "daily_views", "last_daily_reset")
	})

	// Her Pazartesi 00:10'da
	if err == nil {
		_, err = c.AddFunc("10 0 * * 1", func() {
			resetCounter(db, log, "weekly_views", "last_weekly_reset")
		})
	}

	// Her ayın 1'i 00:15'te
	if err == nil {
		_, err = c.AddFunc("15 0 1 * *", func() {
			resetCounter(db, log, "monthly_views", "last_monthly_reset")
		})
	}

	if err != nil {
		log.Error().Err(err).Msg("could not initialize property stats cron")
		return c
	}

	c.Start()
	return c
}

func resetCounter(db *gorm.DB, log zerolog.Logger, counter, resetAt string) {
	res := db.Model(&model.PropertyStats{}).
		Where(counter+" > 0").
		Updates(map[string]interface{}{
			counter: 0,
			resetAt: time.Now(),
		})
	if res.Error != nil {
		log.Error().Err(res.Error).Str("counter", counter).Msg("could not reset view counter")
		return
	}
	log.Info().Str("counter", counter).Int64("rows", res.RowsAffected).Msg("view counters reset")
}
