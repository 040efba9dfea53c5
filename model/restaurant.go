package model

import "time"

type Table struct {
	DTO
	BusinessId uint    `gorm:"not null;index" json:"businessId"`
	LocationId *uint   `json:"locationId"`
	Name       string  `gorm:"size:50;not null" json:"name"`
	Seats      int     `gorm:"default:2" json:"seats"`
	Status     string  `gorm:"size:20;not null;default:'available'" json:"status"`
	Notes      *string `json:"notes"`
}

type Tables []Table

type CreateTableInput struct {
	Name       string `json:"name" validate:"required,min=1,max=50"`
	Seats      *int   `json:"seats" validate:"omitempty,min=1,max=50"`
	LocationId *uint  `json:"locationId"`
}

type UpdateTableInput struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=50"`
	Seats  *int    `json:"seats" validate:"omitempty,min=1,max=50"`
	Status *string `json:"status" validate:"omitempty,oneof=available occupied reserved"`
}

type Reservation struct {
	DTO
	BusinessId uint      `gorm:"not null;index" json:"businessId"`
	TableId    uint      `gorm:"not null;index" json:"tableId"`
	UserId     *uint     `json:"userId"`
	GuestName  *string   `json:"guestName"`
	GuestPhone *string   `json:"guestPhone"`
	PartySize  int       `gorm:"default:2" json:"partySize"`
	StartTime  time.Time `gorm:"not null;index" json:"startTime"`
	EndTime    time.Time `gorm:"not null" json:"endTime"`
	Status     string    `gorm:"size:20;not null;default:'booked'" json:"status"`
	Notes      *string   `json:"notes"`

	Table Table    `gorm:"foreignKey:TableId" json:"table"`
	User  *Profile `gorm:"foreignKey:UserId" json:"user,omitempty"`
}

type Reservations []Reservation

type CreateReservationInput struct {
	TableId      uint    `json:"tableId" validate:"required"`
	GuestName    *string `json:"guestName" validate:"omitempty,min=2,max=150"`
	GuestPhone   *string `json:"guestPhone" validate:"omitempty,max=30"`
	PartySize    *int    `json:"partySize" validate:"omitempty,min=1,max=50"`
	StartTime    string  `json:"startTime" validate:"required"`
	DurationMins *int    `json:"durationMins" validate:"omitempty,min=15,max=480"`
	Notes        *string `json:"notes" validate:"omitempty,max=500"`
}

type FilterReservation struct {
	Pagination
	Status  *string `json:"status"`
	TableId *uint   `json:"tableId"`
	Date    *string `json:"date"` // YYYY-MM-DD
}

type FilterTable struct {
	Pagination
	Status     *string `json:"status"`
	LocationId *uint   `json:"locationId"`
}
