package validate

import (
	"waitify/model"

	"github.com/gofiber/fiber/v2"
)

func CreatePatient() fiber.Handler {
	return Body[model.CreatePatientInput]("createInput")
}

func UpdatePatient() fiber.Handler {
	return Body[model.UpdatePatientInput]("updateInput")
}

func CreatePractitioner() fiber.Handler {
	return Body[model.CreatePractitionerInput]("createInput")
}

func UpdatePractitioner() fiber.Handler {
	return Body[model.UpdatePractitionerInput]("updateInput")
}

func CreateService() fiber.Handler {
	return Body[model.CreateServiceInput]("createInput")
}

func UpdateService() fiber.Handler {
	return Body[model.UpdateServiceInput]("updateInput")
}

func CreateAppointment() fiber.Handler {
	return Body[model.CreateAppointmentInput]("createInput")
}

func UpdateAppointment() fiber.Handler {
	return Body[model.UpdateAppointmentInput]("updateInput")
}
