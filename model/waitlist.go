package model

import "time"

type Waitlist struct {
	DTO
	BusinessId  uint    `gorm:"not null;index" json:"businessId"`
	Name        string  `gorm:"size:150;not null" json:"name"`
	Description *string `json:"description"`
	MaxCapacity int     `gorm:"default:0" json:"maxCapacity"` // 0 = uncapped
	IsActive    bool    `gorm:"default:true" json:"isActive"`
	// LastPosition only ever grows; positions are never reassigned when
	// entries leave, so gaps accumulate.
	LastPosition      int `gorm:"not null;default:0" json:"-"`
	AvgServiceMinutes int `gorm:"default:10" json:"avgServiceMinutes"`

	Business Business `gorm:"foreignKey:BusinessId" json:"-"`
}

type Waitlists []Waitlist

type WaitlistEntry struct {
	DTO
	WaitlistId        uint    `gorm:"not null;index" json:"waitlistId"`
	UserId            *uint   `json:"userId"` // nil for guests
	GuestName         *string `json:"guestName"`
	GuestPhone        *string `json:"guestPhone"`
	GuestEmail        *string `json:"guestEmail"`
	Position          int     `gorm:"not null" json:"position"`
	Status            string  `gorm:"size:20;not null;default:'waiting'" json:"status"`
	PartySize         int     `gorm:"default:1" json:"partySize"`
	EstimatedWaitTime int     `json:"estimatedWaitTime"` // minutes
	Notes             *string `json:"notes"`

	Waitlist Waitlist `gorm:"foreignKey:WaitlistId" json:"-"`
	User     *Profile `gorm:"foreignKey:UserId" json:"user,omitempty"`
}

type WaitlistEntries []WaitlistEntry

type CreateWaitlistInput struct {
	Name              string  `json:"name" validate:"required,min=2,max=150"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
	MaxCapacity       *int    `json:"maxCapacity" validate:"omitempty,min=0"`
	AvgServiceMinutes *int    `json:"avgServiceMinutes" validate:"omitempty,min=1,max=480"`
}

type UpdateWaitlistInput struct {
	Name              *string `json:"name" validate:"omitempty,min=2,max=150"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
	MaxCapacity       *int    `json:"maxCapacity" validate:"omitempty,min=0"`
	AvgServiceMinutes *int    `json:"avgServiceMinutes" validate:"omitempty,min=1,max=480"`
	IsActive          *bool   `json:"isActive"`
}

type JoinWaitlistInput struct {
	GuestName  *string `json:"guestName" validate:"omitempty,min=2,max=150"`
	GuestPhone *string `json:"guestPhone" validate:"omitempty,max=30"`
	GuestEmail *string `json:"guestEmail" validate:"omitempty,email"`
	PartySize  *int    `json:"partySize" validate:"omitempty,min=1,max=50"`
	Notes      *string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateEntryInput struct {
	Status            *string `json:"status" validate:"omitempty,oneof=waiting notified seated cancelled"`
	EstimatedWaitTime *int    `json:"estimatedWaitTime" validate:"omitempty,min=0"`
	Notes             *string `json:"notes" validate:"omitempty,max=500"`
}

type FilterWaitlist struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}

type FilterEntry struct {
	Pagination
	Status *string `json:"status"`
}

// QueueEntry is the live view of one entry pushed over the websocket.
type QueueEntry struct {
	Id                uint    `json:"id"`
	Position          int     `json:"position"`
	Status            string  `json:"status"`
	Name              string  `json:"name"`
	PartySize         int     `json:"partySize"`
	EstimatedWaitTime int     `json:"estimatedWaitTime"`
	JoinedAt          string  `json:"joinedAt"`
	Notes             *string `json:"notes,omitempty"`
}

type QueueSnapshot struct {
	WaitlistId uint         `json:"waitlistId"`
	Waiting    int          `json:"waiting"`
	Entries    []QueueEntry `json:"entries"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}
