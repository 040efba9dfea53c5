package handler

import (
	"errors"
	"strings"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

func Me(c *fiber.Ctx) error {
	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, profile)
}

func UpdateProfile(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.UpdateProfileInput)

	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}

	if input.FirstName != nil {
		profile.FirstName = input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = input.LastName
	}
	if input.AvatarUrl != nil {
		profile.AvatarUrl = input.AvatarUrl
	}

	if err := database.DB.Save(profile).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update profile", err)
	}
	return utils.SuccessResponse(c, 200, profile)
}

// GetProfiles lists all profiles; admin tree only.
func GetProfiles(c *fiber.Ctx) error {
	filter := new(model.FilterProfile)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Profile{})
	if filter.SearchKey != "" {
		key := "%" + strings.ToLower(filter.SearchKey) + "%"
		condition = condition.Where("LOWER(email) LIKE ?", key)
	}
	if filter.Role != nil {
		condition = condition.Where("role = ?", *filter.Role)
	}
	if filter.Active != nil {
		condition = condition.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var profiles model.Profiles
	condition.Preload("Business").Order("id ASC").Find(&profiles)

	response := &model.ResponseCustom{
		Rows:       profiles,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// ElevateRole changes a profile's role; admin tree only.
func ElevateRole(c *fiber.Ctx) error {
	input := c.Locals("elevateInput").(model.ElevateRoleInput)

	var target model.Profile
	if err := database.DB.First(&target, input.ProfileId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}
	if !utils.IsValidValueOfConstant(input.Role, constants.Roles) {
		return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, errors.New("unknown role"))
	}

	target.Role = input.Role
	if err := database.DB.Save(&target).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update role", err)
	}
	return utils.SuccessResponse(c, 200, target)
}
