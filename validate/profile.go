package validate

import (
	"waitify/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return Body[model.RegisterInput]("registerInput")
}

func UpdateProfile() fiber.Handler {
	return Body[model.UpdateProfileInput]("updateInput")
}

func ChangePassword() fiber.Handler {
	return Body[model.ChangePasswordInput]("changePasswordInput")
}

func ForgotPassword() fiber.Handler {
	return Body[model.ForgotPasswordInput]("forgotPasswordInput")
}

func ResetPassword() fiber.Handler {
	return Body[model.ResetPasswordInput]("resetPasswordInput")
}

func ElevateRole() fiber.Handler {
	return Body[model.ElevateRoleInput]("elevateInput")
}
