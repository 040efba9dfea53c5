package validate

import (
	"waitify/model"

	"github.com/gofiber/fiber/v2"
)

func CreateWaitlist() fiber.Handler {
	return Body[model.CreateWaitlistInput]("createInput")
}

func UpdateWaitlist() fiber.Handler {
	return Body[model.UpdateWaitlistInput]("updateInput")
}

func JoinWaitlist() fiber.Handler {
	return Body[model.JoinWaitlistInput]("joinInput")
}

func UpdateEntry() fiber.Handler {
	return Body[model.UpdateEntryInput]("updateEntryInput")
}
