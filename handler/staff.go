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

func GetStaff(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterStaff)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.StaffMember{}).Where("business_id = ?", business.ID)
	if filter.SearchKey != "" {
		key := "%" + strings.ToLower(filter.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", key, key)
	}
	if filter.Active != nil {
		condition = condition.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var staff model.StaffMembers
	condition.Order("id ASC").Find(&staff)

	response := &model.ResponseCustom{
		Rows:       staff,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateStaff(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	var count int64
	database.DB.Model(&model.StaffMember{}).Where("business_id = ?", business.ID).Count(&count)
	if err := requirePlanRoom(c, business, "maxStaffAccounts", count); err != nil {
		return err
	}

	input := c.Locals("createInput").(model.CreateStaffInput)

	staff := model.StaffMember{BusinessId: business.ID, IsActive: true}
	copier.Copy(&staff, &input)

	if err := database.DB.Create(&staff).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create staff member", err)
	}
	return utils.SuccessResponse(c, 201, staff)
}

func UpdateStaff(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	staffId := c.Locals("inputId").(int)
	var staff model.StaffMember
	if err := database.DB.Where("business_id = ?", business.ID).First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateStaffInput)
	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Email != nil {
		staff.Email = *input.Email
	}
	if input.Phone != nil {
		staff.Phone = input.Phone
	}
	if input.Position != nil {
		staff.Position = *input.Position
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&staff).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update staff member", err)
	}
	return utils.SuccessResponse(c, 200, staff)
}

func DeleteStaff(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.StaffMember{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete staff members", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}
