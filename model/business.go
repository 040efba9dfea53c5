package model

// BusinessType is a closed set; unknown values resolve to generic.
type BusinessType string

const (
	BUSINESS_RESTAURANT BusinessType = "restaurant"
	BUSINESS_SALON      BusinessType = "salon"
	BUSINESS_CLINIC     BusinessType = "clinic"
	BUSINESS_GENERIC    BusinessType = "generic"
)

type Business struct {
	DTO
	Name       string       `gorm:"size:150;not null" json:"name"`
	Slug       string       `gorm:"uniqueIndex;size:170" json:"slug"`
	Type       BusinessType `gorm:"size:20;not null;default:'generic'" json:"type"`
	Phone      *string      `json:"phone"`
	Address    *string      `json:"address"`
	Plan       string       `gorm:"size:20;not null;default:'free'" json:"plan"`
	BillingRef *string      `gorm:"size:100" json:"billingRef,omitempty"`
	IsActive   bool         `gorm:"default:true" json:"isActive"`
}

type UpdateBusinessInput struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=150"`
	Type    *string `json:"type" validate:"omitempty,oneof=restaurant salon clinic generic"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

type Location struct {
	DTO
	BusinessId uint    `gorm:"not null;index" json:"businessId"`
	Name       string  `gorm:"size:150;not null" json:"name"`
	Address    string  `gorm:"size:300;not null" json:"address"`
	Phone      *string `json:"phone"`
	IsActive   bool    `gorm:"default:true" json:"isActive"`
}

type CreateLocationInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=150"`
	Address string  `json:"address" validate:"required,max=300"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
}

type UpdateLocationInput struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=150"`
	Address  *string `json:"address" validate:"omitempty,max=300"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	IsActive *bool   `json:"isActive"`
}

type StaffMember struct {
	DTO
	BusinessId uint    `gorm:"not null;index" json:"businessId"`
	Name       string  `gorm:"size:150;not null" json:"name"`
	Email      string  `gorm:"size:150" json:"email"`
	Phone      *string `json:"phone"`
	Position   string  `gorm:"size:50" json:"position"`
	IsActive   bool    `gorm:"default:true" json:"isActive"`
}

type StaffMembers []StaffMember

type CreateStaffInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Position string  `json:"position" validate:"omitempty,max=50"`
}

type UpdateStaffInput struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=150"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Position *string `json:"position" validate:"omitempty,max=50"`
	IsActive *bool   `json:"isActive"`
}

type FilterStaff struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}

// FeaturePanel is one dashboard section shown for a business vertical.
type FeaturePanel struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Route string `json:"route"`
}

var panelsByType = map[BusinessType][]FeaturePanel{
	BUSINESS_RESTAURANT: {
		{Key: "waitlist", Label: "Waitlist", Route: "/waitlist"},
		{Key: "tables", Label: "Tables", Route: "/tables"},
		{Key: "reservations", Label: "Reservations", Route: "/reservations"},
		{Key: "customers", Label: "Customers", Route: "/customers"},
		{Key: "reports", Label: "Reports", Route: "/reports"},
	},
	BUSINESS_SALON: {
		{Key: "waitlist", Label: "Waitlist", Route: "/waitlist"},
		{Key: "appointments", Label: "Appointments", Route: "/appointments"},
		{Key: "services", Label: "Services", Route: "/services"},
		{Key: "staff", Label: "Staff", Route: "/staff"},
		{Key: "reports", Label: "Reports", Route: "/reports"},
	},
	BUSINESS_CLINIC: {
		{Key: "waitlist", Label: "Waitlist", Route: "/waitlist"},
		{Key: "appointments", Label: "Appointments", Route: "/appointments"},
		{Key: "patients", Label: "Patients", Route: "/patients"},
		{Key: "practitioners", Label: "Practitioners", Route: "/practitioners"},
		{Key: "services", Label: "Services", Route: "/services"},
		{Key: "reports", Label: "Reports", Route: "/reports"},
	},
	BUSINESS_GENERIC: {
		{Key: "waitlist", Label: "Waitlist", Route: "/waitlist"},
		{Key: "customers", Label: "Customers", Route: "/customers"},
		{Key: "reports", Label: "Reports", Route: "/reports"},
	},
}

// PanelsForType resolves the static panel set for a vertical.
func PanelsForType(t BusinessType) []FeaturePanel {
	if panels, ok := panelsByType[t]; ok {
		return panels
	}
	return panelsByType[BUSINESS_GENERIC]
}
