package handler

import (
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateCheckout answers {url} pointing at the provider's hosted checkout
// page for the requested plan. A business without a billing ref gets one
// minted here so the provider can correlate the purchase.
func CreateCheckout(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("checkoutInput").(model.CreateCheckoutInput)

	if business.BillingRef == nil || *business.BillingRef == "" {
		ref := "biz_" + uuid.NewString()
		business.BillingRef = &ref
		if err := database.DB.Model(business).Update("billing_ref", ref).Error; err != nil {
			return utils.ErrorResponse(c, 500, "Could not assign billing reference", err)
		}
	}

	checkoutURL, err := helper.NewBillingProvider().BuildCheckoutURL(input.PlanId, *business.BillingRef)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not build checkout URL", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"url": checkoutURL})
}

// GetSubscription is the subscription lookup the settings page polls. No
// billing ref resolves to the free tier, never to placeholder data.
func GetSubscription(c *fiber.Ctx) error {
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

	return utils.SuccessResponse(c, fiber.StatusOK, status)
}

func GetInvoices(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	billingRef := ""
	if business.BillingRef != nil {
		billingRef = *business.BillingRef
	}
	invoices, err := helper.NewBillingProvider().FetchInvoices(billingRef)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Billing provider unavailable", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"invoices": invoices})
}
