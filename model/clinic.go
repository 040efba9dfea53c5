package model

import "time"

type Patient struct {
	DTO
	BusinessId  uint       `gorm:"not null;index" json:"businessId"`
	ProfileId   *uint      `json:"profileId"`
	Name        string     `gorm:"size:150;not null" json:"name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	DateOfBirth *time.Time `gorm:"type:date" json:"dateOfBirth"`
	Notes       *string    `json:"notes"`

	Profile *Profile `gorm:"foreignKey:ProfileId" json:"profile,omitempty"`
}

type Patients []Patient

type CreatePatientInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdatePatientInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=150"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

type Practitioner struct {
	DTO
	BusinessId uint    `gorm:"not null;index" json:"businessId"`
	Name       string  `gorm:"size:150;not null" json:"name"`
	Specialty  *string `json:"specialty"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	IsActive   bool    `gorm:"default:true" json:"isActive"`
}

type Practitioners []Practitioner

type CreatePractitionerInput struct {
	Name      string  `json:"name" validate:"required,min=2,max=150"`
	Specialty *string `json:"specialty" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
}

type UpdatePractitionerInput struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=150"`
	Specialty *string `json:"specialty" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	IsActive  *bool   `json:"isActive"`
}

type Service struct {
	DTO
	BusinessId      uint    `gorm:"not null;index" json:"businessId"`
	Name            string  `gorm:"size:150;not null" json:"name"`
	Description     *string `json:"description"`
	DurationMinutes int     `gorm:"default:30" json:"durationMinutes"`
	Price           float64 `gorm:"default:0" json:"price"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`
}

type Services []Service

type CreateServiceInput struct {
	Name            string  `json:"name" validate:"required,min=2,max=150"`
	Description     *string `json:"description" validate:"omitempty,max=500"`
	DurationMinutes *int    `json:"durationMinutes" validate:"omitempty,min=5,max=480"`
	Price           *float64 `json:"price" validate:"omitempty,min=0"`
}

type UpdateServiceInput struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=150"`
	Description     *string  `json:"description" validate:"omitempty,max=500"`
	DurationMinutes *int     `json:"durationMinutes" validate:"omitempty,min=5,max=480"`
	Price           *float64 `json:"price" validate:"omitempty,min=0"`
	IsActive        *bool    `json:"isActive"`
}

type Appointment struct {
	DTO
	BusinessId      uint      `gorm:"not null;index" json:"businessId"`
	PatientId       *uint     `json:"patientId"`
	PractitionerId  *uint     `json:"practitionerId"`
	ServiceId       *uint     `json:"serviceId"`
	UserId          *uint     `json:"userId"` // booking customer, nil for walk-ins
	StartTime       time.Time `gorm:"not null;index" json:"startTime"`
	EndTime         time.Time `gorm:"not null" json:"endTime"`
	Status          string    `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Notes           *string   `json:"notes"`
	PrescriptionUrl *string   `json:"prescriptionUrl"`
	InvoiceRef      *string   `gorm:"size:100" json:"invoiceRef"`
	ReminderSentAt  *time.Time `json:"reminderSentAt,omitempty"`

	Patient      *Patient      `gorm:"foreignKey:PatientId" json:"patient,omitempty"`
	Practitioner *Practitioner `gorm:"foreignKey:PractitionerId" json:"practitioner,omitempty"`
	Service      *Service      `gorm:"foreignKey:ServiceId" json:"service,omitempty"`
}

type Appointments []Appointment

type CreateAppointmentInput struct {
	PatientId      *uint   `json:"patientId"`
	PractitionerId *uint   `json:"practitionerId"`
	ServiceId      *uint   `json:"serviceId"`
	StartTime      string  `json:"startTime" validate:"required"`
	DurationMins   *int    `json:"durationMins" validate:"omitempty,min=5,max=480"`
	Notes          *string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointmentInput struct {
	Status    *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	StartTime *string `json:"startTime"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
}

type FilterAppointment struct {
	Pagination
	Status         *string `json:"status"`
	PractitionerId *uint   `json:"practitionerId"`
	Date           *string `json:"date"` // YYYY-MM-DD
}

type FilterNamed struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
