package handler

import (
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTables(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterTable)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Table{}).Where("business_id = ?", business.ID)
	if filter.Status != nil {
		condition = condition.Where("status = ?", *filter.Status)
	}
	if filter.LocationId != nil {
		condition = condition.Where("location_id = ?", *filter.LocationId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var tables model.Tables
	condition.Order("name ASC").Find(&tables)

	response := &model.ResponseCustom{
		Rows:       tables,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateTable(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("createInput").(model.CreateTableInput)

	table := model.Table{
		BusinessId: business.ID,
		LocationId: input.LocationId,
		Name:       input.Name,
		Seats:      2,
		Status:     constants.TABLE_AVAILABLE,
	}
	if input.Seats != nil {
		table.Seats = *input.Seats
	}

	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create table", err)
	}
	return utils.SuccessResponse(c, 201, table)
}

func UpdateTable(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	tableId := c.Locals("inputId").(int)
	var table model.Table
	if err := database.DB.Where("business_id = ?", business.ID).First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateTableInput)
	if input.Name != nil {
		table.Name = *input.Name
	}
	if input.Seats != nil {
		table.Seats = *input.Seats
	}
	if input.Status != nil {
		table.Status = *input.Status
	}

	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update table", err)
	}
	return utils.SuccessResponse(c, 200, table)
}

func DeleteTables(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.Table{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete tables", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}
