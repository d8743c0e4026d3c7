package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kejani_backend/internal/middleware"
	"kejani_backend/internal/model"
)

type StatsController struct {
	db *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// RecordView bir görüntülenme kaydeder. Tekillik ve sayaç artışı model
// hook'larında yapılır.
func (sc *StatsController) RecordView(c *fiber.Ctx) error {
	view := model.PropertyView{
		PropertyID: c.Params("id"),
		IP:         c.IP(),
		SessionID:  c.Get("X-Session-ID"),
		UserAgent:  c.Get("User-Agent"),
		ViewedAt:   time.Now(),
	}
	if userID := middleware.CurrentUserID(c); userID != "" {
		view.UserID = &userID
	}

	if err := sc.db.WithContext(c.Context()).Create(&view).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"recorded": true, "unique": view.IsUnique})
}

// GetStats ilanın görüntülenme istatistiklerini döndürür
func (sc *StatsController) GetStats(c *fiber.Ctx) error {
	var stats model.PropertyStats
	err := sc.db.WithContext(c.Context()).
		Where("property_id = ?", c.Params("id")).
		First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Hiç görüntülenmemiş ilan için sıfır sayaçlar
		return c.JSON(model.PropertyStats{PropertyID: c.Params("id")})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
