package handler

import (
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetLocations(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	var locations []model.Location
	database.DB.Where("business_id = ?", business.ID).Order("id ASC").Find(&locations)

	return utils.SuccessResponse(c, fiber.StatusOK, locations)
}

func CreateLocation(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	var count int64
	database.DB.Model(&model.Location{}).Where("business_id = ?", business.ID).Count(&count)
	if err := requirePlanRoom(c, business, "maxLocations", count); err != nil {
		return err
	}

	input := c.Locals("createInput").(model.CreateLocationInput)

	location := model.Location{BusinessId: business.ID, IsActive: true}
	copier.Copy(&location, &input)

	if err := database.DB.Create(&location).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create location", err)
	}
	return utils.SuccessResponse(c, 201, location)
}

func UpdateLocation(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	locationId := c.Locals("inputId").(int)
	var location model.Location
	if err := database.DB.Where("business_id = ?", business.ID).First(&location, locationId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateLocationInput)
	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.Phone != nil {
		location.Phone = input.Phone
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&location).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update location", err)
	}
	return utils.SuccessResponse(c, 200, location)
}

func DeleteLocations(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.Location{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete locations", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}
