package handler

import (
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

type customerRow struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Visits     int    `json:"visits"`
	LastSource string `json:"lastSource"` // waitlist | reservation
}

func profileDisplayName(p *model.Profile) string {
	name := ""
	if p.FirstName != nil {
		name = *p.FirstName
	}
	if p.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *p.LastName
	}
	if name == "" {
		name = p.Email
	}
	return name
}

// GetCustomers is a read view assembled from waitlist entries and
// reservations; there is no customer table of its own.
func GetCustomers(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	var entries model.WaitlistEntries
	database.DB.
		Preload("User").
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ?", business.ID).
		Order("waitlist_entries.created_at DESC").
		Limit(500).
		Find(&entries)

	var reservations model.Reservations
	database.DB.
		Preload("User").
		Where("business_id = ?", business.ID).
		Order("created_at DESC").
		Limit(500).
		Find(&reservations)

	rows := map[string]*customerRow{}
	upsert := func(name, email, phone, source string) {
		key := email
		if key == "" {
			key = name
		}
		if key == "" {
			return
		}
		row, ok := rows[key]
		if !ok {
			row = &customerRow{Name: name, Email: email, Phone: phone}
			rows[key] = row
		}
		row.Visits++
		row.LastSource = source
	}

	for _, entry := range entries {
		if entry.User != nil {
			upsert(profileDisplayName(entry.User), entry.User.Email, "", "waitlist")
			continue
		}
		name, phone, email := "", "", ""
		if entry.GuestName != nil {
			name = *entry.GuestName
		}
		if entry.GuestPhone != nil {
			phone = *entry.GuestPhone
		}
		if entry.GuestEmail != nil {
			email = *entry.GuestEmail
		}
		upsert(name, email, phone, "waitlist")
	}
	for _, reservation := range reservations {
		if reservation.User != nil {
			upsert(profileDisplayName(reservation.User), reservation.User.Email, "", "reservation")
			continue
		}
		name, phone := "", ""
		if reservation.GuestName != nil {
			name = *reservation.GuestName
		}
		if reservation.GuestPhone != nil {
			phone = *reservation.GuestPhone
		}
		upsert(name, "", phone, "reservation")
	}

	customers := make([]customerRow, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, *row)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customers": customers,
		"total":     len(customers),
	})
}

// GetMyAppointments lists the authenticated customer's bookings.
func GetMyAppointments(c *fiber.Ctx) error {
	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}

	var appointments model.Appointments
	database.DB.
		Preload("Service").
		Preload("Practitioner").
		Where("user_id = ?", profile.ID).
		Order("start_time DESC").
		Find(&appointments)

	return utils.SuccessResponse(c, fiber.StatusOK, appointments)
}
