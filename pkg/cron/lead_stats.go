// pkg/cron/lead_stats.go
package cron

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"premiumartisan_backend/internal/model"
	"premiumartisan_backend/pkg/database"
	"premiumartisan_backend/pkg/email"
)

var (
	lastDigestTime time.Time
	mutex          sync.Mutex
)

// InitLeadDigestCron sends the operator a daily lead count summary.
func InitLeadDigestCron() {
	c := cron.New()

	// Every evening at 19:00
	_, err := c.AddFunc("0 19 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastDigestTime) < 23*time.Hour {
			log.Printf("Lead digest already sent today, skipping...")
			return
		}

		sendDailyLeadDigest()
		lastDigestTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize lead digest cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Lead digest cron initialized successfully")
}

func sendDailyLeadDigest() {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayCount, totalCount int64
	db := database.GetDB()
	if err := db.Model(&model.Lead{}).Where("created_at >= ?", startOfDay).Count(&todayCount).Error; err != nil {
		log.Printf("Error counting today's leads: %v", err)
		return
	}
	if err := db.Model(&model.Lead{}).Count(&totalCount).Error; err != nil {
		log.Printf("Error counting leads: %v", err)
		return
	}

	if email.GlobalEmailService == nil {
		return
	}
	if err := email.GlobalEmailService.SendDailyDigest(now.Format("2006-01-02"), todayCount, totalCount); err != nil {
		log.Printf("Error sending lead digest: %v", err)
	} else {
		log.Printf("Lead digest sent: %d lead(s) today", todayCount)
	}
}

// Sweeper is anything holding transient state that expires, like the form
// session store.
type Sweeper interface {
	Sweep() int
}

// InitSessionSweepCron drops expired form sessions every ten minutes.
func InitSessionSweepCron(store Sweeper) {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		if dropped := store.Sweep(); dropped > 0 {
			log.Printf("Dropped %d expired form session(s)", dropped)
		}
	})

	if err != nil {
		log.Printf("Could not initialize session sweep cron: %v", err)
		return
	}

	c.Start()
}
