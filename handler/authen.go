package handler

import (
	"errors"
	"time"

	"waitify/config"
	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setSessionCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("registerInput").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.GetProfileByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email exists"), "email")
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	role := input.Role
	if role == "" {
		role = constants.ROLE_CUSTOMER
	}

	profile := model.Profile{
		Email:     input.Email,
		Password:  hashed,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
		IsActive:  true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Business sign-ups get their tenant created in the same commit.
		if role == constants.ROLE_BUSINESS {
			if input.BusinessName == nil {
				return errors.New("businessName is required for business accounts")
			}
			businessType := model.BUSINESS_GENERIC
			if input.BusinessType != nil {
				businessType = model.BusinessType(*input.BusinessType)
			}
			business := model.Business{
				Name:     *input.BusinessName,
				Slug:     helper.GenerateUniqueBusinessSlug(tx, *input.BusinessName),
				Type:     businessType,
				Plan:     constants.PLAN_FREE,
				IsActive: true,
			}
			if err := tx.Create(&business).Error; err != nil {
				return err
			}
			profile.BusinessId = &business.ID
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not register account", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "registration success",
		"profile": fiber.Map{
			"id":         profile.ID,
			"email":      profile.Email,
			"role":       profile.Role,
			"businessId": profile.BusinessId,
		},
	})
}

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	profile, err := helper.GetProfileByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, errors.New("email not registered"))
	}
	if !helper.CheckPasswordHash(loginInput.Password, profile.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}
	if !profile.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account disabled"))
	}

	tokenClaim := model.TokenClaim{
		ProfileId: profile.ID,
		Email:     profile.Email,
	}
	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setSessionCookies(c, accessToken, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"profile": fiber.Map{
			"id":         profile.ID,
			"email":      profile.Email,
			"role":       profile.Role,
			"businessId": profile.BusinessId,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token not found"})
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	profileIdFloat, ok := claims["profileId"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid profileId in payload"})
	}
	email, ok := claims["email"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email in payload"})
	}

	tokenClaim := model.TokenClaim{
		ProfileId: uint(profileIdFloat),
		Email:     email,
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate access token"})
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate refresh token"})
	}

	setSessionCookies(c, newAccessToken, newRefreshToken)

	return c.JSON(fiber.Map{"message": "refresh success"})
}

func Logout(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	return c.JSON(fiber.Map{"message": "logout success"})
}

func ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("forgotPasswordInput").(model.ForgotPasswordInput)

	profile, err := helper.GetProfileByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	// Do not reveal whether the address exists.
	if profile == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "reset email sent if account exists"})
	}

	resetToken := model.PasswordResetToken{
		ProfileId: profile.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := database.DB.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resetLink := config.Config("APP_URL") + "/reset-password?token=" + resetToken.Token
	utils.SendNotificationEmail(profile.Email, utils.NotificationEmailData{
		Subject:    "Reset your password",
		Title:      "Password reset requested",
		Message:    "Follow the link below to choose a new password. The link expires in 30 minutes.",
		ActionLink: resetLink,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "reset email sent if account exists"})
}

func ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("resetPasswordInput").(model.ResetPasswordInput)

	var resetToken model.PasswordResetToken
	if err := database.DB.Where("token = ?", input.Token).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired reset token", err)
	}
	if time.Now().After(resetToken.ExpiresAt) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired reset token", errors.New("token expired"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Profile{}).
			Where("id = ?", resetToken.ProfileId).
			Update("password", hashed).Error; err != nil {
			return err
		}
		return tx.Delete(&resetToken).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}

func ChangePassword(c *fiber.Ctx) error {
	input := c.Locals("changePasswordInput").(model.ChangePasswordInput)

	_, profile, _, _ := helper.GetInfoProfileFromToken(c)
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Profile not found", nil)
	}
	if !helper.CheckPasswordHash(input.CurrentPassword, profile.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("current password does not match"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(&model.Profile{}).
		Where("id = ?", profile.ID).
		Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}
