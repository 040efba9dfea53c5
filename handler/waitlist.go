package handler

import (
	"encoding/base64"
	"strings"

	"waitify/config"
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetWaitlists(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterWaitlist)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Waitlist{}).Where("business_id = ?", business.ID)
	if filter.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}
	if filter.Active != nil {
		condition = condition.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var waitlists model.Waitlists
	condition.Order("id ASC").Find(&waitlists)

	response := &model.ResponseCustom{
		Rows:       waitlists,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetWaitlistById(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	waitlistId := c.Locals("inputId").(int)
	var waitlist model.Waitlist
	if err := database.DB.Where("business_id = ?", business.ID).First(&waitlist, waitlistId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	snapshot, err := helper.BuildQueueSnapshot(database.DB, waitlist.ID)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"waitlist": waitlist,
		"queue":    snapshot,
	})
}

func CreateWaitlist(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	var count int64
	database.DB.Model(&model.Waitlist{}).Where("business_id = ?", business.ID).Count(&count)
	if err := requirePlanRoom(c, business, "maxWaitlists", count); err != nil {
		return err
	}

	input := c.Locals("createInput").(model.CreateWaitlistInput)

	waitlist := model.Waitlist{
		BusinessId:        business.ID,
		IsActive:          true,
		AvgServiceMinutes: 10,
	}
	copier.Copy(&waitlist, &input)
	if input.MaxCapacity != nil {
		waitlist.MaxCapacity = *input.MaxCapacity
	}
	if input.AvgServiceMinutes != nil {
		waitlist.AvgServiceMinutes = *input.AvgServiceMinutes
	}

	if err := database.DB.Create(&waitlist).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create waitlist", err)
	}
	return utils.SuccessResponse(c, 201, waitlist)
}

func UpdateWaitlist(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	waitlistId := c.Locals("inputId").(int)
	var waitlist model.Waitlist
	if err := database.DB.Where("business_id = ?", business.ID).First(&waitlist, waitlistId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateWaitlistInput)
	if input.Name != nil {
		waitlist.Name = *input.Name
	}
	if input.Description != nil {
		waitlist.Description = input.Description
	}
	if input.MaxCapacity != nil {
		waitlist.MaxCapacity = *input.MaxCapacity
	}
	if input.AvgServiceMinutes != nil {
		waitlist.AvgServiceMinutes = *input.AvgServiceMinutes
	}
	if input.IsActive != nil {
		waitlist.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&waitlist).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update waitlist", err)
	}
	return utils.SuccessResponse(c, 200, waitlist)
}

func DeleteWaitlists(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.Waitlist{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete waitlists", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}

// GetWaitlistQR renders the join link for a waitlist as a QR image.
func GetWaitlistQR(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	waitlistId := c.Locals("inputId").(int)
	var waitlist model.Waitlist
	if err := database.DB.Where("business_id = ?", business.ID).First(&waitlist, waitlistId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	joinLink := utils.BuildJoinLink(config.ConfigOr("APP_URL", "http://localhost:8002"), waitlist.ID)
	qrBytes, err := utils.GenerateQRCode(joinLink, 400)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not generate QR code", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"joinLink": joinLink,
		"qrCode":   "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes),
	})
}
