package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"premiumartisan_backend/internal/model"
	"premiumartisan_backend/pkg/database"
)

// LeadStats is the admin dashboard summary.
type LeadStats struct {
	TotalLeads int64       `json:"total_leads"`
	Today      int64       `json:"today"`
	LastWeek   int64       `json:"last_week"`
	DailyStats []DailyStat `json:"daily_stats"`
}

type DailyStat struct {
	Date  string `json:"date"`
	Leads int64  `json:"leads"`
}

// GetLeadStats handles GET /api/admin/leads/stats.
func GetLeadStats(c *fiber.Ctx) error {
	db := database.GetDB()
	now := time.Now()

	var stats LeadStats
	if err := db.Model(&model.Lead{}).Count(&stats.TotalLeads).Error; err != nil {
		log.Printf("Could not count leads: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch stats",
		})
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	db.Model(&model.Lead{}).Where("created_at >= ?", startOfDay).Count(&stats.Today)
	db.Model(&model.Lead{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&stats.LastWeek)

	rows := []struct {
		Date  time.Time
		Leads int64
	}{}
	err := db.Model(&model.Lead{}).
		Select("DATE(created_at) as date, COUNT(*) as leads").
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Group("DATE(created_at)").
		Order("date desc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Could not fetch daily lead stats: %v", err)
	}
	for _, r := range rows {
		stats.DailyStats = append(stats.DailyStats, DailyStat{
			Date:  r.Date.Format("2006-01-02"),
			Leads: r.Leads,
		})
	}

	return c.JSON(stats)
}
