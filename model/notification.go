package model

type Notification struct {
	DTO
	UserId  uint   `gorm:"not null;index" json:"userId"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Message string `gorm:"size:1000;not null" json:"message"`
	Type    string `gorm:"size:30;not null;default:'info'" json:"type"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}

type Notifications []Notification

// SendNotificationInput mirrors the send-notification function contract: a
// regular send, or Action="get-email" to look up the target address only.
type SendNotificationInput struct {
	Action      string  `json:"action" validate:"omitempty,oneof=get-email"`
	UserId      uint    `json:"userId" validate:"required"`
	Message     string  `json:"message" validate:"required_without=Action,max=1000"`
	Type        string  `json:"type" validate:"omitempty,max=30"`
	Subject     *string `json:"subject" validate:"omitempty,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=30"`
	WaitlistId  *uint   `json:"waitlistId"`
	EntryId     *uint   `json:"entryId"`
}

type FilterNotification struct {
	Pagination
	IsRead *bool   `json:"isRead"`
	Type   *string `json:"type"`
}
