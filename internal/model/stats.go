package model

import (
	"time"

	"gorm.io/gorm"
)

// PropertyView tekil görüntülenme kaydı
type PropertyView struct {
	gorm.Model
	PropertyID string    `json:"property_id" gorm:"type:uuid;index"`
	UserID     *string   `json:"user_id" gorm:"type:uuid;index"` // Giriş yapmış kullanıcı için (opsiyonel)
	IP         string    `json:"ip" gorm:"index"`
	SessionID  string    `json:"session_id" gorm:"index"`
	UserAgent  string    `json:"user_agent"`
	ViewedAt   time.Time `json:"viewed_at" gorm:"index"`
	IsUnique   bool      `json:"is_unique" gorm:"default:true"`
}

// PropertyStats genel istatistikler
type PropertyStats struct {
	gorm.Model
	PropertyID       string    `json:"property_id" gorm:"type:uuid;uniqueIndex"`
	TotalViews       int64     `json:"total_views"`
	UniqueViews      int64     `json:"unique_views"`
	DailyViews       int64     `json:"daily_views"`
	WeeklyViews      int64     `json:"weekly_views"`
	MonthlyViews     int64     `json:"monthly_views"`
	LastUpdated      time.Time `json:"last_updated"`
	LastDailyReset   time.Time `json:"last_daily_reset"`
	LastWeeklyReset  time.Time `json:"last_weekly_reset"`
	LastMonthlyReset time.Time `json:"last_monthly_reset"`
}

// BeforeCreate yeni görüntülenme kaydı oluşturulmadan önce çalışır
func (pv *PropertyView) BeforeCreate(tx *gorm.DB) error {
	// Son 24 saat içinde aynı IP'den görüntüleme var mı kontrol et
	var count int64
	tx.Model(&PropertyView{}).
		Where("property_id = ? AND ip = ? AND viewed_at > ?",
			pv.PropertyID,
			pv.IP,
			time.Now().Add(-24*time.Hour)).
		Count(&count)

	if count > 0 {
		pv.IsUnique = false
	}

	return nil
}

// AfterCreate yeni görüntülenme kaydı oluşturulduktan sonra çalışır
func (pv *PropertyView) AfterCreate(tx *gorm.DB) error {
	var stats PropertyStats
	tx.FirstOrCreate(&stats, PropertyStats{PropertyID: pv.PropertyID})

	updates := map[string]interface{}{
		"total_views":   gorm.Expr("total_views + ?", 1),
		"daily_views":   gorm.Expr("daily_views + ?", 1),
		"weekly_views":  gorm.Expr("weekly_views + ?", 1),
		"monthly_views": gorm.Expr("monthly_views + ?", 1),
		"last_updated":  time.Now(),
	}

	if pv.IsUnique {
		updates["unique_views"] = gorm.Expr("unique_views + ?", 1)
	}

	return tx.Model(&stats).Updates(updates).Error
}
