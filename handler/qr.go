package handler

import (
	"encoding/base64"
	"errors"

	"waitify/config"
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

// ResolveQR maps a scanned payload to a client route. Nothing is persisted;
// bad payloads answer with the canonical "Invalid QR Code" message.
func ResolveQR(c *fiber.Ctx) error {
	type resolveInput struct {
		Payload string `json:"payload"`
	}

	input := new(resolveInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ErrorResponse(c, 400, constants.INVALID_QR_CODE, err)
	}

	route, err := utils.ResolveQRPayload(input.Payload)
	if err != nil {
		return utils.ErrorResponse(c, 400, constants.INVALID_QR_CODE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"route": route})
}

// GetAppointmentQR renders a booking link QR for one appointment slot.
func GetAppointmentQR(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	appointmentId := c.Locals("inputId").(int)
	var appointment model.Appointment
	if err := database.DB.Where("business_id = ?", business.ID).First(&appointment, appointmentId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	bookingLink := utils.BuildBookingLink(config.ConfigOr("APP_URL", "http://localhost:8002"), business.ID, appointment.ID)
	qrBytes, err := utils.GenerateQRCode(bookingLink, 400)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not generate QR code", err)
	}
	if len(qrBytes) == 0 {
		return utils.ErrorResponse(c, 500, "Could not generate QR code", errors.New("empty image"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingLink": bookingLink,
		"qrCode":      "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes),
	})
}
