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

func GetMyBusiness(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, business)
}

func UpdateBusiness(c *fiber.Ctx) error {
	input := c.Locals("updateBusinessInput").(model.UpdateBusinessInput)

	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	if input.Name != nil && *input.Name != business.Name {
		business.Name = *input.Name
		business.Slug = helper.GenerateUniqueBusinessSlug(database.DB, *input.Name)
	}
	if input.Type != nil {
		business.Type = model.BusinessType(*input.Type)
	}
	if input.Phone != nil {
		business.Phone = input.Phone
	}
	if input.Address != nil {
		business.Address = input.Address
	}

	if err := database.DB.Save(business).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update business", err)
	}
	return utils.SuccessResponse(c, 200, business)
}

// GetBusinessPanels resolves the static dashboard panel set for the caller's
// vertical.
func GetBusinessPanels(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"type":   business.Type,
		"panels": model.PanelsForType(business.Type),
	})
}

// GetPublicBusiness serves the guest booking page data by slug.
func GetPublicBusiness(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var business model.Business
	if err := database.DB.Where("slug = ? AND is_active = ?", slug, true).First(&business).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	var waitlists model.Waitlists
	database.DB.Where("business_id = ? AND is_active = ?", business.ID, true).Find(&waitlists)

	var services model.Services
	database.DB.Where("business_id = ? AND is_active = ?", business.ID, true).Find(&services)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"business":  fiber.Map{"id": business.ID, "name": business.Name, "type": business.Type, "slug": business.Slug},
		"waitlists": waitlists,
		"services":  services,
	})
}

// GetSubscriptionOverview combines the provider subscription with the static
// entitlement table for the settings page.
func GetSubscriptionOverview(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	billingRef := ""
	if business.BillingRef != nil {
		billingRef = *business.BillingRef
	}
	status, err := helper.NewBillingProvider().FetchSubscription(billingRef)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Billing provider unavailable", err)
	}

	var waitlistCount, locationCount, staffCount int64
	database.DB.Model(&model.Waitlist{}).Where("business_id = ?", business.ID).Count(&waitlistCount)
	database.DB.Model(&model.Location{}).Where("business_id = ?", business.ID).Count(&locationCount)
	database.DB.Model(&model.StaffMember{}).Where("business_id = ?", business.ID).Count(&staffCount)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"subscription": status,
		"limits":       model.GetFeatureLimits(status.Plan),
		"usage": fiber.Map{
			"waitlists": waitlistCount,
			"locations": locationCount,
			"staff":     staffCount,
		},
	})
}

// requirePlanRoom answers the gate for numeric plan features on create paths.
func requirePlanRoom(c *fiber.Ctx, business *model.Business, feature string, currentCount int64) error {
	if model.IsWithinLimits(feature, int(currentCount), business.Plan) {
		return nil
	}
	return utils.ErrorResponseHaveKey(c, fiber.StatusForbidden, constants.PLAN_LIMIT_REACHED,
		errors.New(feature+" limit is "+model.GetLimitDescription(feature, business.Plan)), feature)
}
