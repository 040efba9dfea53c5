package handler

import (
	"strings"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

func GetServices(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterNamed)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Service{}).Where("business_id = ?", business.ID)
	if filter.SearchKey != "" {
		key := "%" + strings.ToLower(filter.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ?", key)
	}
	if filter.Active != nil {
		condition = condition.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var services model.Services
	condition.Order("id ASC").Find(&services)

	response := &model.ResponseCustom{
		Rows:       services,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateService(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("createInput").(model.CreateServiceInput)

	service := model.Service{
		BusinessId:      business.ID,
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: 30,
		IsActive:        true,
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		service.Price = *input.Price
	}

	if err := database.DB.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create service", err)
	}
	return utils.SuccessResponse(c, 201, service)
}

func UpdateService(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	serviceId := c.Locals("inputId").(int)
	var service model.Service
	if err := database.DB.Where("business_id = ?", business.ID).First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateServiceInput)
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = input.Description
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&service).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update service", err)
	}
	return utils.SuccessResponse(c, 200, service)
}

func DeleteServices(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.Service{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete services", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}
