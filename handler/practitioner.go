package handler

import (
	"strings"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPractitioners(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterNamed)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Practitioner{}).Where("business_id = ?", business.ID)
	if filter.SearchKey != "" {
		key := "%" + strings.ToLower(filter.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ?", key, key)
	}
	if filter.Active != nil {
		condition = condition.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var practitioners model.Practitioners
	condition.Order("id ASC").Find(&practitioners)

	response := &model.ResponseCustom{
		Rows:       practitioners,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreatePractitioner(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("createInput").(model.CreatePractitionerInput)

	practitioner := model.Practitioner{BusinessId: business.ID, IsActive: true}
	copier.Copy(&practitioner, &input)

	if err := database.DB.Create(&practitioner).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create practitioner", err)
	}
	return utils.SuccessResponse(c, 201, practitioner)
}

func UpdatePractitioner(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	practitionerId := c.Locals("inputId").(int)
	var practitioner model.Practitioner
	if err := database.DB.Where("business_id = ?", business.ID).First(&practitioner, practitionerId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdatePractitionerInput)
	if input.Name != nil {
		practitioner.Name = *input.Name
	}
	if input.Specialty != nil {
		practitioner.Specialty = input.Specialty
	}
	if input.Email != nil {
		practitioner.Email = input.Email
	}
	if input.Phone != nil {
		practitioner.Phone = input.Phone
	}
	if input.IsActive != nil {
		practitioner.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&practitioner).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update practitioner", err)
	}
	return utils.SuccessResponse(c, 200, practitioner)
}

func DeletePractitioners(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.Practitioner{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete practitioners", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}
