package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"waitify/config"
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
)

func parseAppointmentTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04", value)
}

func GetAppointments(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterAppointment)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Appointment{}).Where("business_id = ?", business.ID)
	if filter.Status != nil {
		condition = condition.Where("status = ?", *filter.Status)
	}
	if filter.PractitionerId != nil {
		condition = condition.Where("practitioner_id = ?", *filter.PractitionerId)
	}
	if filter.Date != nil {
		day, err := time.Parse("2006-01-02", *filter.Date)
		if err == nil {
			condition = condition.Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var appointments model.Appointments
	condition.
		Preload("Patient").
		Preload("Practitioner").
		Preload("Service").
		Order("start_time ASC").
		Find(&appointments)

	response := &model.ResponseCustom{
		Rows:       appointments,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetAppointmentById(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	appointmentId := c.Locals("inputId").(int)
	var appointment model.Appointment
	if err := database.DB.
		Preload("Patient").
		Preload("Practitioner").
		Preload("Service").
		Where("business_id = ?", business.ID).
		First(&appointment, appointmentId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, appointment)
}

func CreateAppointment(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("createInput").(model.CreateAppointmentInput)

	startTime, err := parseAppointmentTime(input.StartTime)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Invalid start time", err)
	}

	duration := 30
	if input.ServiceId != nil {
		var service model.Service
		if err := database.DB.Where("business_id = ?", business.ID).First(&service, *input.ServiceId).Error; err == nil {
			duration = service.DurationMinutes
		}
	}
	if input.DurationMins != nil {
		duration = *input.DurationMins
	}

	appointment := model.Appointment{
		BusinessId:     business.ID,
		PatientId:      input.PatientId,
		PractitionerId: input.PractitionerId,
		ServiceId:      input.ServiceId,
		StartTime:      startTime,
		EndTime:        startTime.Add(time.Duration(duration) * time.Minute),
		Status:         constants.APPOINTMENT_SCHEDULED,
		Notes:          input.Notes,
	}

	if err := database.DB.Create(&appointment).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create appointment", err)
	}
	return utils.SuccessResponse(c, 201, appointment)
}

func UpdateAppointment(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	appointmentId := c.Locals("inputId").(int)
	var appointment model.Appointment
	if err := database.DB.Where("business_id = ?", business.ID).First(&appointment, appointmentId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdateAppointmentInput)
	if input.StartTime != nil {
		startTime, err := parseAppointmentTime(*input.StartTime)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid start time", err)
		}
		duration := appointment.EndTime.Sub(appointment.StartTime)
		appointment.StartTime = startTime
		appointment.EndTime = startTime.Add(duration)
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.Notes != nil {
		appointment.Notes = input.Notes
	}

	if err := database.DB.Save(&appointment).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update appointment", err)
	}
	return utils.SuccessResponse(c, 200, appointment)
}

func DeleteAppointments(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.Appointment{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete appointments", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}

// ClaimAppointment lets a scanning customer take an open scheduled slot.
// Guests may claim too; the slot just stays unlinked from a profile.
func ClaimAppointment(c *fiber.Ctx) error {
	appointmentId := c.Locals("inputId").(int)

	var appointment model.Appointment
	if err := database.DB.First(&appointment, appointmentId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}
	if appointment.Status != constants.APPOINTMENT_SCHEDULED {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Appointment is no longer open", nil)
	}
	if appointment.UserId != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Appointment already claimed", nil)
	}

	appointment.UserId = helper.GetGuestOrUser(c)
	if err := database.DB.Save(&appointment).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not claim appointment", err)
	}
	return utils.SuccessResponse(c, 200, appointment)
}

// UploadPrescription attaches a prescription document to an appointment.
func UploadPrescription(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	appointmentId := c.Locals("inputId").(int)
	var appointment model.Appointment
	if err := database.DB.Where("business_id = ?", business.ID).First(&appointment, appointmentId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}
	if appointment.PatientId == nil {
		return utils.ErrorResponse(c, 400, "Appointment has no patient", errors.New("patientId missing"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, 400, "Missing file upload", err)
	}

	url, err := helper.UploadPrescription(c.Context(), fileHeader, *appointment.PatientId, appointment.ID)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Upload failed", err)
	}

	appointment.PrescriptionUrl = &url
	if err := database.DB.Save(&appointment).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not save prescription link", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"prescriptionUrl": url})
}

// GetUploadSignature hands the client a signed payload for direct uploads.
func GetUploadSignature(c *fiber.Ctx) error {
	_, _, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	timestamp := time.Now().Unix()
	folder := "prescriptions"
	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, config.Config("CLOUDINARY_API_SECRET"))
	digest := sha1.Sum([]byte(toSign))

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": hex.EncodeToString(digest[:]),
		"timestamp": timestamp,
		"folder":    folder,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
