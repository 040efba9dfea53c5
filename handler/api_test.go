package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/middleware"
	"waitify/model"
	"waitify/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	database.DB = db

	app := fiber.New()

	app.Post("/api/v1/waitlist", middleware.Protected(), validate.CreateWaitlist(), CreateWaitlist)
	app.Post("/api/v1/join-waitlist/:waitlistId",
		middleware.OptionalJWT(), middleware.OptionalAuth(),
		validate.GetById("waitlistId"), validate.JoinWaitlist(), JoinWaitlist)
	app.Post("/api/v1/reservations", middleware.Protected(), validate.CreateReservation(), CreateReservation)
	app.Patch("/api/v1/reservations/:reservationId/seat",
		middleware.Protected(), validate.GetById("reservationId"), SeatReservation)
	app.Patch("/api/v1/reservations/:reservationId/cancel",
		middleware.Protected(), validate.GetById("reservationId"), CancelReservation)
	app.Post("/notifications/send", middleware.Protected(), validate.SendNotification(), SendNotification)

	return app
}

func createBusinessAccount(t *testing.T, plan string) (string, *model.Business) {
	t.Helper()

	business := model.Business{
		Name:     "Test Diner",
		Slug:     "test-diner",
		Type:     model.BUSINESS_RESTAURANT,
		Plan:     plan,
		IsActive: true,
	}
	require.NoError(t, database.DB.Create(&business).Error)

	profile := model.Profile{
		Email:      "owner@test-diner.example",
		Password:   "x",
		Role:       constants.ROLE_BUSINESS,
		BusinessId: &business.ID,
		IsActive:   true,
	}
	require.NoError(t, database.DB.Create(&profile).Error)

	token, err := helper.GenerateAccessToken(model.TokenClaim{ProfileId: profile.ID, Email: profile.Email})
	require.NoError(t, err)
	return token, &business
}

func jsonRequest(method, target, token string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestCreateWaitlistEnforcesPlanLimit(t *testing.T) {
	app := setupTestApp(t)
	token, business := createBusinessAccount(t, constants.PLAN_FREE)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/waitlist", token, fiber.Map{"name": "Walk-ins"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Free tier caps at one waitlist.
	resp, err = app.Test(jsonRequest("POST", "/api/v1/waitlist", token, fiber.Map{"name": "Second queue"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constants.PLAN_LIMIT_REACHED, body["message"])
	assert.Equal(t, "maxWaitlists", body["keyError"])

	var count int64
	database.DB.Model(&model.Waitlist{}).Where("business_id = ?", business.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestJoinEndpointGuestFlow(t *testing.T) {
	app := setupTestApp(t)
	_, business := createBusinessAccount(t, constants.PLAN_FREE)

	waitlist := model.Waitlist{BusinessId: business.ID, Name: "Walk-ins", IsActive: true, AvgServiceMinutes: 10}
	require.NoError(t, database.DB.Create(&waitlist).Error)
	target := fmt.Sprintf("/api/v1/join-waitlist/%d", waitlist.ID)

	// Anonymous joins need a guest name.
	resp, err := app.Test(jsonRequest("POST", target, "", fiber.Map{"partySize": 2}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", target, "", fiber.Map{"guestName": "Ada", "partySize": 2}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var entry model.WaitlistEntry
	require.NoError(t, database.DB.Where("waitlist_id = ?", waitlist.ID).First(&entry).Error)
	assert.Equal(t, 1, entry.Position)
	assert.Equal(t, constants.ENTRY_WAITING, entry.Status)
	assert.Nil(t, entry.UserId)

	// Inactive waitlists turn joins away.
	require.NoError(t, database.DB.Model(&waitlist).Update("is_active", false).Error)
	resp, err = app.Test(jsonRequest("POST", target, "", fiber.Map{"guestName": "Grace"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestReservationLifecycleSyncsTableStatus(t *testing.T) {
	app := setupTestApp(t)
	token, business := createBusinessAccount(t, constants.PLAN_BASIC)

	table := model.Table{BusinessId: business.ID, Name: "T1", Seats: 4, Status: constants.TABLE_AVAILABLE}
	require.NoError(t, database.DB.Create(&table).Error)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/reservations", token, fiber.Map{
		"tableId":   table.ID,
		"guestName": "Ada",
		"partySize": 4,
		"startTime": "2026-09-01T19:00:00Z",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NoError(t, database.DB.First(&table, table.ID).Error)
	assert.Equal(t, constants.TABLE_RESERVED, table.Status)

	var reservation model.Reservation
	require.NoError(t, database.DB.Where("table_id = ?", table.ID).First(&reservation).Error)
	assert.Equal(t, constants.RESERVATION_BOOKED, reservation.Status)

	// Seating flips both rows together.
	resp, err = app.Test(jsonRequest("PATCH", fmt.Sprintf("/api/v1/reservations/%d/seat", reservation.ID), token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.First(&reservation, reservation.ID).Error)
	require.NoError(t, database.DB.First(&table, table.ID).Error)
	assert.Equal(t, constants.RESERVATION_SEATED, reservation.Status)
	assert.Equal(t, constants.TABLE_OCCUPIED, table.Status)

	// Cancelling releases the table.
	resp, err = app.Test(jsonRequest("PATCH", fmt.Sprintf("/api/v1/reservations/%d/cancel", reservation.ID), token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.First(&table, table.ID).Error)
	assert.Equal(t, constants.TABLE_AVAILABLE, table.Status)
}

func TestSendNotificationFlipsEntryToNotified(t *testing.T) {
	app := setupTestApp(t)
	token, business := createBusinessAccount(t, constants.PLAN_BASIC)

	customer := model.Profile{Email: "diner@example.com", Password: "x", Role: constants.ROLE_CUSTOMER, IsActive: true}
	require.NoError(t, database.DB.Create(&customer).Error)

	waitlist := model.Waitlist{BusinessId: business.ID, Name: "Walk-ins", IsActive: true, AvgServiceMinutes: 10}
	require.NoError(t, database.DB.Create(&waitlist).Error)

	entry := model.WaitlistEntry{UserId: &customer.ID}
	require.NoError(t, helper.JoinWaitlist(database.DB, waitlist.ID, &entry))
	require.Equal(t, constants.ENTRY_WAITING, entry.Status)

	resp, err := app.Test(jsonRequest("POST", "/notifications/send", token, fiber.Map{
		"userId":     customer.ID,
		"message":    "Your table is ready",
		"subject":    "Table ready",
		"waitlistId": waitlist.ID,
		"entryId":    entry.ID,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.First(&entry, entry.ID).Error)
	assert.Equal(t, constants.ENTRY_NOTIFIED, entry.Status)

	var notification model.Notification
	require.NoError(t, database.DB.Where("user_id = ?", customer.ID).First(&notification).Error)
	assert.Equal(t, "Your table is ready", notification.Message)
	assert.False(t, notification.IsRead)
}

func TestSendNotificationGetEmailAction(t *testing.T) {
	app := setupTestApp(t)
	token, _ := createBusinessAccount(t, constants.PLAN_BASIC)

	customer := model.Profile{Email: "lookup@example.com", Password: "x", Role: constants.ROLE_CUSTOMER, IsActive: true}
	require.NoError(t, database.DB.Create(&customer).Error)

	resp, err := app.Test(jsonRequest("POST", "/notifications/send", token, fiber.Map{
		"action": "get-email",
		"userId": customer.ID,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "lookup@example.com", body.Data.Email)

	// Lookups do not write notification rows.
	var count int64
	database.DB.Model(&model.Notification{}).Count(&count)
	assert.Zero(t, count)
}
