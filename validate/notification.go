package validate

import (
	"waitify/model"

	"github.com/gofiber/fiber/v2"
)

func SendNotification() fiber.Handler {
	return Body[model.SendNotificationInput]("sendInput")
}

func CreateCheckout() fiber.Handler {
	return Body[model.CreateCheckoutInput]("checkoutInput")
}
