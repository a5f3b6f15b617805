package helper

import (
	"log"
	"time"

	"wisata_booking/database"
	"wisata_booking/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	bookingScheduler gocron.Scheduler
	sessionSweeper   *cron.Cron
)

// CompletePastBookings moves paid, confirmed bookings whose visit date has
// passed into completed. Pending bookings are never touched here.
func CompletePastBookings() {
	db := database.DB

	var bookings []model.Booking
	if err := db.
		Where("status = ? AND payment_status = ? AND visit_date < ?",
			model.StatusConfirmed, model.PaymentPaid, time.Now().Format("2006-01-02")).
		Find(&bookings).Error; err != nil {
		log.Printf("complete past bookings query failed: %v", err)
		return
	}

	for i := range bookings {
		if err := MarkCompleted(db, &bookings[i]); err != nil {
			log.Printf("complete booking %s failed: %v", bookings[i].BookingNumber, err)
		}
	}

	if len(bookings) > 0 {
		log.Printf("completed %d past bookings", len(bookings))
	}
}

// StartBookingScheduler runs CompletePastBookings daily shortly after midnight
func StartBookingScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WIB", 7*3600)),
	)
	if err != nil {
		log.Printf("booking scheduler init failed: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 15, 0),
			),
		),
		gocron.NewTask(CompletePastBookings),
	)
	if err != nil {
		log.Printf("booking scheduler job failed: %v", err)
		return
	}

	bookingScheduler = s
	s.Start()
}

func StopBookingScheduler() {
	if bookingScheduler != nil {
		_ = bookingScheduler.Shutdown()
	}
}

// ExpireStaleSessions marks pending checkout sessions past their expiry as
// EXPIRED. Only the session rows age out; the bookings behind them stay
// pending/unpaid and remain retryable.
func ExpireStaleSessions() {
	result := database.DB.Model(&model.CheckoutSession{}).
		Where("status = ? AND expires_at < ?", model.SessionPending, time.Now()).
		Update("status", model.SessionExpired)
	if result.Error != nil {
		log.Printf("expire stale sessions failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("expired %d stale checkout sessions", result.RowsAffected)
	}
}

// StartSessionSweeper sweeps stale checkout sessions every 10 minutes
func StartSessionSweeper() {
	sessionSweeper = cron.New()
	if _, err := sessionSweeper.AddFunc("@every 10m", ExpireStaleSessions); err != nil {
		log.Printf("session sweeper init failed: %v", err)
		return
	}
	sessionSweeper.Start()
}

func StopSessionSweeper() {
	if sessionSweeper != nil {
		sessionSweeper.Stop()
	}
}
