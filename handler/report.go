package handler

import (
	"time"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardReport aggregates the business dashboard numbers: today's
// queue activity, bookings, and the notified-to-seated conversion rate.
func GetDashboardReport(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var joinedToday int64
	database.DB.Model(&model.WaitlistEntry{}).
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ? AND waitlist_entries.created_at >= ?", business.ID, startOfDay).
		Count(&joinedToday)

	var currentlyWaiting int64
	database.DB.Model(&model.WaitlistEntry{}).
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ? AND waitlist_entries.status = ?", business.ID, constants.ENTRY_WAITING).
		Count(&currentlyWaiting)

	var avgWait float64
	database.DB.Model(&model.WaitlistEntry{}).
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ? AND waitlist_entries.status = ?", business.ID, constants.ENTRY_WAITING).
		Select("COALESCE(AVG(waitlist_entries.estimated_wait_time), 0)").
		Scan(&avgWait)

	var notified, seated int64
	database.DB.Model(&model.WaitlistEntry{}).
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ? AND waitlist_entries.status = ?", business.ID, constants.ENTRY_NOTIFIED).
		Count(&notified)
	database.DB.Model(&model.WaitlistEntry{}).
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ? AND waitlist_entries.status = ?", business.ID, constants.ENTRY_SEATED).
		Count(&seated)

	conversion := 0.0
	if notified+seated > 0 {
		conversion = float64(seated) / float64(notified+seated)
	}

	var reservationsToday int64
	database.DB.Model(&model.Reservation{}).
		Where("business_id = ? AND start_time >= ? AND start_time < ?",
			business.ID, startOfDay, startOfDay.AddDate(0, 0, 1)).
		Count(&reservationsToday)

	var appointmentsToday int64
	database.DB.Model(&model.Appointment{}).
		Where("business_id = ? AND start_time >= ? AND start_time < ?",
			business.ID, startOfDay, startOfDay.AddDate(0, 0, 1)).
		Count(&appointmentsToday)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"joinedToday":         joinedToday,
		"currentlyWaiting":    currentlyWaiting,
		"avgEstimatedWait":    avgWait,
		"reservationsToday":   reservationsToday,
		"appointmentsToday":   appointmentsToday,
		"seatedConversion":    conversion,
		"notifiedOutstanding": notified,
	})
}
