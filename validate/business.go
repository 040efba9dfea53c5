package validate

import (
	"waitify/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateBusiness() fiber.Handler {
	return Body[model.UpdateBusinessInput]("updateBusinessInput")
}

func CreateLocation() fiber.Handler {
	return Body[model.CreateLocationInput]("createInput")
}

func UpdateLocation() fiber.Handler {
	return Body[model.UpdateLocationInput]("updateInput")
}

func CreateStaff() fiber.Handler {
	return Body[model.CreateStaffInput]("createInput")
}

func UpdateStaff() fiber.Handler {
	return Body[model.UpdateStaffInput]("updateInput")
}
