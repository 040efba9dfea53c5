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

func GetNotifications(c *fiber.Ctx) error {
	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}

	filter := new(model.FilterNotification)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Notification{}).Where("user_id = ?", profile.ID)
	if filter.IsRead != nil {
		condition = condition.Where("is_read = ?", *filter.IsRead)
	}
	if filter.Type != nil {
		condition = condition.Where("type = ?", *filter.Type)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var notifications model.Notifications
	condition.Order("created_at DESC").Find(&notifications)

	response := &model.ResponseCustom{
		Rows:       notifications,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}

	notificationId := c.Locals("inputId").(int)
	result := database.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationId, profile.ID).
		Update("is_read", true)
	if result.Error != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, errors.New("notification not found"))
	}

	return utils.SuccessResponse(c, 200, fiber.Map{"message": "marked read"})
}

func MarkAllNotificationsRead(c *fiber.Ctx) error {
	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}

	if err := database.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", profile.ID, false).
		Update("is_read", true).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "all marked read"})
}

// SendNotification is the notification function endpoint: records a
// notification row, optionally emails the target, and optionally flips a
// waitlist entry to notified. With action=get-email it only resolves the
// target's address.
func SendNotification(c *fiber.Ctx) error {
	input := c.Locals("sendInput").(model.SendNotificationInput)

	var target model.Profile
	if err := database.DB.First(&target, input.UserId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Target user not found", err)
	}

	if input.Action == "get-email" {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"email": target.Email})
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = "info"
	}
	title := "Waitify update"
	if input.Subject != nil {
		title = *input.Subject
	}

	notification := model.Notification{
		UserId:  target.ID,
		Title:   title,
		Message: input.Message,
		Type:    notificationType,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not record notification", err)
	}

	if input.EntryId != nil {
		result := database.DB.Model(&model.WaitlistEntry{}).
			Where("id = ?", *input.EntryId).
			Update("status", constants.ENTRY_NOTIFIED)
		if result.Error == nil && result.RowsAffected > 0 && input.WaitlistId != nil {
			helper.PublishQueue(*input.WaitlistId)
		}
	}

	email := target.Email
	if input.Email != nil {
		email = *input.Email
	}
	if email != "" {
		utils.SendNotificationEmail(email, utils.NotificationEmailData{
			Subject: title,
			Title:   title,
			Message: input.Message,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"notification": notification,
		"emailedTo":    email,
	})
}
