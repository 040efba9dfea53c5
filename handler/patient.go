package handler

import (
	"strings"
	"time"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPatients(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterNamed)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Patient{}).Where("business_id = ?", business.ID)
	if filter.SearchKey != "" {
		key := "%" + strings.ToLower(filter.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", key, key)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var patients model.Patients
	condition.Order("id ASC").Find(&patients)

	response := &model.ResponseCustom{
		Rows:       patients,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetPatientById(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	patientId := c.Locals("inputId").(int)
	var patient model.Patient
	if err := database.DB.Where("business_id = ?", business.ID).First(&patient, patientId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, patient)
}

func CreatePatient(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("createInput").(model.CreatePatientInput)

	patient := model.Patient{BusinessId: business.ID}
	copier.Copy(&patient, &input)
	if input.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
		if err == nil {
			patient.DateOfBirth = &dob
		}
	}

	if err := database.DB.Create(&patient).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create patient", err)
	}
	return utils.SuccessResponse(c, 201, patient)
}

func UpdatePatient(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	patientId := c.Locals("inputId").(int)
	var patient model.Patient
	if err := database.DB.Where("business_id = ?", business.ID).First(&patient, patientId).Error; err != nil {
		return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
	}

	input := c.Locals("updateInput").(model.UpdatePatientInput)
	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.Email != nil {
		patient.Email = input.Email
	}
	if input.Phone != nil {
		patient.Phone = input.Phone
	}
	if input.DateOfBirth != nil {
		if dob, err := time.Parse("2006-01-02", *input.DateOfBirth); err == nil {
			patient.DateOfBirth = &dob
		}
	}
	if input.Notes != nil {
		patient.Notes = input.Notes
	}

	if err := database.DB.Save(&patient).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update patient", err)
	}
	return utils.SuccessResponse(c, 200, patient)
}

func DeletePatients(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.
		Where("business_id = ? AND id IN ?", business.ID, input.IDs).
		Delete(&model.Patient{}).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete patients", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "deleted"})
}
