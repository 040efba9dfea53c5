package handler

import (
	"errors"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

// GetJoinInfo serves the public join page for a waitlist: name, how many are
// ahead, current estimate.
func GetJoinInfo(c *fiber.Ctx) error {
	waitlistId := c.Locals("inputId").(int)

	var waitlist model.Waitlist
	if err := database.DB.First(&waitlist, waitlistId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}
	if !waitlist.IsActive {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.WAITLIST_INACTIVE, nil)
	}

	var waiting int64
	database.DB.Model(&model.WaitlistEntry{}).
		Where("waitlist_id = ? AND status = ?", waitlist.ID, constants.ENTRY_WAITING).
		Count(&waiting)

	var business model.Business
	database.DB.First(&business, waitlist.BusinessId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"waitlist":      fiber.Map{"id": waitlist.ID, "name": waitlist.Name, "description": waitlist.Description},
		"business":      fiber.Map{"id": business.ID, "name": business.Name, "type": business.Type},
		"waiting":       waiting,
		"estimatedWait": int(waiting) * waitlist.AvgServiceMinutes,
	})
}

// JoinWaitlist adds the caller (authenticated or guest) to the queue.
func JoinWaitlist(c *fiber.Ctx) error {
	waitlistId := c.Locals("inputId").(int)
	input := c.Locals("joinInput").(model.JoinWaitlistInput)

	entry := model.WaitlistEntry{
		UserId:     helper.GetGuestOrUser(c),
		GuestName:  input.GuestName,
		GuestPhone: input.GuestPhone,
		GuestEmail: input.GuestEmail,
		Notes:      input.Notes,
	}
	if input.PartySize != nil {
		entry.PartySize = *input.PartySize
	}
	if entry.UserId == nil && input.GuestName == nil {
		return utils.ErrorResponse(c, 400, "Guest joins need a name", errors.New("guestName required"))
	}

	if err := helper.JoinWaitlist(database.DB, uint(waitlistId), &entry); err != nil {
		switch {
		case errors.Is(err, helper.ErrWaitlistInactive):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.WAITLIST_INACTIVE, err)
		case errors.Is(err, helper.ErrWaitlistFull):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.WAITLIST_FULL, err)
		default:
			return utils.ErrorResponse(c, 500, "Could not join waitlist", err)
		}
	}

	helper.PublishQueue(uint(waitlistId))

	return utils.SuccessResponse(c, fiber.StatusCreated, entry)
}

// GetEntries lists a waitlist's entries for the owning business.
func GetEntries(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	waitlistId := c.Locals("inputId").(int)
	var waitlist model.Waitlist
	if err := database.DB.Where("business_id = ?", business.ID).First(&waitlist, waitlistId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	filter := new(model.FilterEntry)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.WaitlistEntry{}).Where("waitlist_id = ?", waitlist.ID)
	if filter.Status != nil {
		condition = condition.Where("status = ?", *filter.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var entries model.WaitlistEntries
	condition.Preload("User").Order("position ASC").Find(&entries)

	response := &model.ResponseCustom{
		Rows:       entries,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// UpdateEntry patches status/estimate/notes. Status writes are not
// constrained by the current value; the UI decides which actions to offer.
func UpdateEntry(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	entryId := c.Locals("inputId").(int)
	input := c.Locals("updateEntryInput").(model.UpdateEntryInput)

	var entry model.WaitlistEntry
	if err := database.DB.
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ? AND waitlist_entries.id = ?", business.ID, entryId).
		First(&entry).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	if input.Status != nil {
		entry.Status = *input.Status
	}
	if input.EstimatedWaitTime != nil {
		entry.EstimatedWaitTime = *input.EstimatedWaitTime
	}
	if input.Notes != nil {
		entry.Notes = input.Notes
	}

	if err := database.DB.Save(&entry).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update entry", err)
	}

	helper.PublishQueue(entry.WaitlistId)

	return utils.SuccessResponse(c, 200, entry)
}

// RemoveEntry deletes the row outright; later positions keep their numbers.
func RemoveEntry(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	entryId := c.Locals("inputId").(int)
	var entry model.WaitlistEntry
	if err := database.DB.
		Joins("JOIN waitlists ON waitlists.id = waitlist_entries.waitlist_id").
		Where("waitlists.business_id = ? AND waitlist_entries.id = ?", business.ID, entryId).
		First(&entry).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	if err := database.DB.Delete(&entry).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not remove entry", err)
	}

	helper.PublishQueue(entry.WaitlistId)

	return utils.SuccessResponse(c, 200, fiber.Map{"message": "entry removed"})
}

// GetMyEntries lists the authenticated customer's active waitlist entries.
func GetMyEntries(c *fiber.Ctx) error {
	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}

	var entries model.WaitlistEntries
	database.DB.
		Preload("Waitlist").
		Where("user_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&entries)

	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}

// CancelMyEntry lets a customer drop out of a queue they joined.
func CancelMyEntry(c *fiber.Ctx) error {
	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}

	entryId := c.Locals("inputId").(int)
	var entry model.WaitlistEntry
	if err := database.DB.
		Where("id = ? AND user_id = ?", entryId, profile.ID).
		First(&entry).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	entry.Status = constants.ENTRY_CANCELLED
	if err := database.DB.Save(&entry).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not cancel entry", err)
	}

	helper.PublishQueue(entry.WaitlistId)

	return utils.SuccessResponse(c, 200, entry)
}
