package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGuardTest(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	database.DB = db

	app := fiber.New()
	app.Get("/api/v1/admin/profiles", AdminOnly(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func createProfileWithToken(t *testing.T, email, role string) string {
	t.Helper()
	profile := model.Profile{Email: email, Password: "x", Role: role, IsActive: true}
	require.NoError(t, database.DB.Create(&profile).Error)

	token, err := helper.GenerateAccessToken(model.TokenClaim{ProfileId: profile.ID, Email: profile.Email})
	require.NoError(t, err)
	return token
}

func TestAdminOnlyRedirectsAnonymousToSignin(t *testing.T) {
	app := setupGuardTest(t)

	req := httptest.NewRequest("GET", "/api/v1/admin/profiles", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/signin", resp.Header.Get("Location"))
}

func TestAdminOnlyRedirectsGarbageToken(t *testing.T) {
	app := setupGuardTest(t)

	req := httptest.NewRequest("GET", "/api/v1/admin/profiles", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/signin", resp.Header.Get("Location"))
}

func TestAdminOnlyRedirectsNonAdminRoles(t *testing.T) {
	app := setupGuardTest(t)

	for _, role := range []string{constants.ROLE_CUSTOMER, constants.ROLE_BUSINESS} {
		token := createProfileWithToken(t, role+"@example.com", role)

		req := httptest.NewRequest("GET", "/api/v1/admin/profiles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusFound, resp.StatusCode, "role %s", role)
		assert.Equal(t, "/signin", resp.Header.Get("Location"))
	}
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	app := setupGuardTest(t)
	token := createProfileWithToken(t, "root@example.com", constants.ROLE_ADMIN)

	req := httptest.NewRequest("GET", "/api/v1/admin/profiles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/private", Protected(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedAcceptsCookieToken(t *testing.T) {
	app := setupGuardTest(t)
	app.Get("/private", Protected(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	token := createProfileWithToken(t, "cookie@example.com", constants.ROLE_CUSTOMER)

	req := httptest.NewRequest("GET", "/private", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
