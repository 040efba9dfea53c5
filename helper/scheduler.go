package helper

import (
	"log"
	"time"

	"waitify/constants"
	"waitify/database"
	"waitify/model"
	"waitify/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	sweeper   *cron.Cron
	reminders gocron.Scheduler
)

// StartSweeps runs the periodic consistency jobs: expire waitlist entries
// that were notified but never showed, release tables whose reservation
// window lapsed, and flag past appointments as no-show.
func StartSweeps() {
	sweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	if _, err := sweeper.AddFunc("*/5 * * * *", expireStaleEntries); err != nil {
		log.Printf("failed to schedule entry sweep: %v", err)
		return
	}
	if _, err := sweeper.AddFunc("*/5 * * * *", reconcileTables); err != nil {
		log.Printf("failed to schedule table sweep: %v", err)
		return
	}
	if _, err := sweeper.AddFunc("*/15 * * * *", flagNoShows); err != nil {
		log.Printf("failed to schedule no-show sweep: %v", err)
		return
	}

	sweeper.Start()
	log.Println("consistency sweeps started")
}

func StopSweeps() {
	if sweeper != nil {
		sweeper.Stop()
	}
	if reminders != nil {
		_ = reminders.Shutdown()
	}
}

// Entries notified more than two hours ago are treated as abandoned.
func expireStaleEntries() {
	cutoff := time.Now().Add(-2 * time.Hour)
	result := database.DB.Model(&model.WaitlistEntry{}).
		Where("status = ? AND updated_at < ?", constants.ENTRY_NOTIFIED, cutoff).
		Update("status", constants.ENTRY_CANCELLED)

	if result.Error != nil {
		log.Printf("stale entry sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("cancelled %d abandoned waitlist entries", result.RowsAffected)
	}
}

// Reserved tables whose reservation window has passed without seating go
// back to available, so a crashed client can't strand a table.
func reconcileTables() {
	now := time.Now()

	var stale model.Reservations
	if err := database.DB.
		Where("status = ? AND end_time < ?", constants.RESERVATION_BOOKED, now).
		Find(&stale).Error; err != nil {
		log.Printf("table reconcile query failed: %v", err)
		return
	}

	for _, reservation := range stale {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.Reservation{}).
				Where("id = ?", reservation.ID).
				Update("status", constants.RESERVATION_CANCELLED).Error; err != nil {
				return err
			}
			return tx.Model(&model.Table{}).
				Where("id = ? AND status = ?", reservation.TableId, constants.TABLE_RESERVED).
				Update("status", constants.TABLE_AVAILABLE).Error
		})
		if err != nil {
			log.Printf("reconcile of reservation %d failed: %v", reservation.ID, err)
		}
	}
}

// Scheduled appointments whose start passed over an hour ago become no-shows.
func flagNoShows() {
	cutoff := time.Now().Add(-1 * time.Hour)
	result := database.DB.Model(&model.Appointment{}).
		Where("status = ? AND start_time < ?", constants.APPOINTMENT_SCHEDULED, cutoff).
		Update("status", constants.APPOINTMENT_NO_SHOW)

	if result.Error != nil {
		log.Printf("no-show sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("flagged %d appointments as no-show", result.RowsAffected)
	}
}

// StartReminderScheduler emails customers about tomorrow's appointments once
// a day.
func StartReminderScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("reminder scheduler init failed: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(sendAppointmentReminders),
	)
	if err != nil {
		log.Printf("reminder job registration failed: %v", err)
		return
	}

	s.Start()
	reminders = s
	log.Println("appointment reminder scheduler started")
}

func sendAppointmentReminders() {
	from := time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	var upcoming model.Appointments
	if err := database.DB.
		Preload("Patient").
		Where("status = ? AND start_time >= ? AND start_time < ? AND reminder_sent_at IS NULL",
			constants.APPOINTMENT_SCHEDULED, from, to).
		Find(&upcoming).Error; err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	for _, appt := range upcoming {
		if appt.Patient == nil || appt.Patient.Email == nil {
			continue
		}
		utils.SendNotificationEmail(*appt.Patient.Email, utils.NotificationEmailData{
			Subject: "Appointment reminder",
			Title:   "You have an appointment tomorrow",
			Message: "Your appointment is scheduled for " + appt.StartTime.Format("Mon, 2 Jan 2006 15:04") + ".",
		})
		now := time.Now()
		database.DB.Model(&model.Appointment{}).
			Where("id = ?", appt.ID).
			Update("reminder_sent_at", &now)
	}
	if len(upcoming) > 0 {
		log.Printf("sent %d appointment reminders", len(upcoming))
	}
}
