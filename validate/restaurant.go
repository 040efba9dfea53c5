package validate

import (
	"waitify/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return Body[model.CreateTableInput]("createInput")
}

func UpdateTable() fiber.Handler {
	return Body[model.UpdateTableInput]("updateInput")
}

func CreateReservation() fiber.Handler {
	return Body[model.CreateReservationInput]("createInput")
}
