package handler

import (
	"errors"
	"time"

	"waitify/constants"
	"waitify/database"
	"waitify/helper"
	"waitify/model"
	"waitify/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetReservations(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	filter := new(model.FilterReservation)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	condition := database.DB.Model(&model.Reservation{}).Where("business_id = ?", business.ID)
	if filter.Status != nil {
		condition = condition.Where("status = ?", *filter.Status)
	}
	if filter.TableId != nil {
		condition = condition.Where("table_id = ?", *filter.TableId)
	}
	if filter.Date != nil {
		day, err := time.Parse("2006-01-02", *filter.Date)
		if err == nil {
			condition = condition.Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var reservations model.Reservations
	condition.Preload("Table").Preload("User").Order("start_time ASC").Find(&reservations)

	response := &model.ResponseCustom{
		Rows:       reservations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CreateReservation books a table: the reservation row and the table status
// flip to reserved commit together or not at all.
func CreateReservation(c *fiber.Ctx) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	input := c.Locals("createInput").(model.CreateReservationInput)

	startTime, err := parseAppointmentTime(input.StartTime)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Invalid start time", err)
	}
	duration := 90
	if input.DurationMins != nil {
		duration = *input.DurationMins
	}

	reservation := model.Reservation{
		BusinessId: business.ID,
		TableId:    input.TableId,
		GuestName:  input.GuestName,
		GuestPhone: input.GuestPhone,
		PartySize:  2,
		StartTime:  startTime,
		EndTime:    startTime.Add(time.Duration(duration) * time.Minute),
		Status:     constants.RESERVATION_BOOKED,
		Notes:      input.Notes,
	}
	if input.PartySize != nil {
		reservation.PartySize = *input.PartySize
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var table model.Table
		if err := tx.Where("business_id = ?", business.ID).First(&table, input.TableId).Error; err != nil {
			return err
		}
		if table.Status == constants.TABLE_OCCUPIED {
			return errors.New("table is occupied")
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		return tx.Model(&table).Update("status", constants.TABLE_RESERVED).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Could not book table", err)
	}

	database.DB.Preload("Table").First(&reservation, reservation.ID)
	return utils.SuccessResponse(c, 201, reservation)
}

// transitionReservation writes the reservation status and the matching table
// status in a single transaction.
func transitionReservation(c *fiber.Ctx, reservationStatus, tableStatus string) error {
	_, business, err := helper.RequireBusiness(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS, err)
	}

	reservationId := c.Locals("inputId").(int)
	var reservation model.Reservation

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", business.ID).First(&reservation, reservationId).Error; err != nil {
			return err
		}
		if err := tx.Model(&reservation).Update("status", reservationStatus).Error; err != nil {
			return err
		}
		return tx.Model(&model.Table{}).
			Where("id = ?", reservation.TableId).
			Update("status", tableStatus).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, 500, "Could not update reservation", err)
	}

	reservation.Status = reservationStatus
	return utils.SuccessResponse(c, 200, reservation)
}

func SeatReservation(c *fiber.Ctx) error {
	return transitionReservation(c, constants.RESERVATION_SEATED, constants.TABLE_OCCUPIED)
}

func CancelReservation(c *fiber.Ctx) error {
	return transitionReservation(c, constants.RESERVATION_CANCELLED, constants.TABLE_AVAILABLE)
}

func CompleteReservation(c *fiber.Ctx) error {
	return transitionReservation(c, constants.RESERVATION_COMPLETED, constants.TABLE_AVAILABLE)
}
