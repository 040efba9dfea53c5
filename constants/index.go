package constants

// Profile roles
const (
	ROLE_ADMIN    = "admin"
	ROLE_BUSINESS = "business"
	ROLE_CUSTOMER = "customer"
)

var Roles = []string{ROLE_ADMIN, ROLE_BUSINESS, ROLE_CUSTOMER}

// Waitlist entry statuses
const (
	ENTRY_WAITING   = "waiting"
	ENTRY_NOTIFIED  = "notified"
	ENTRY_SEATED    = "seated"
	ENTRY_CANCELLED = "cancelled"
)

var EntryStatuses = []string{ENTRY_WAITING, ENTRY_NOTIFIED, ENTRY_SEATED, ENTRY_CANCELLED}

// Table statuses
const (
	TABLE_AVAILABLE = "available"
	TABLE_OCCUPIED  = "occupied"
	TABLE_RESERVED  = "reserved"
)

var TableStatuses = []string{TABLE_AVAILABLE, TABLE_OCCUPIED, TABLE_RESERVED}

// Reservation statuses
const (
	RESERVATION_BOOKED    = "booked"
	RESERVATION_SEATED    = "seated"
	RESERVATION_CANCELLED = "cancelled"
	RESERVATION_COMPLETED = "completed"
)

// Appointment statuses
const (
	APPOINTMENT_SCHEDULED = "scheduled"
	APPOINTMENT_COMPLETED = "completed"
	APPOINTMENT_CANCELLED = "cancelled"
	APPOINTMENT_NO_SHOW   = "no-show"
)

var AppointmentStatuses = []string{APPOINTMENT_SCHEDULED, APPOINTMENT_COMPLETED, APPOINTMENT_CANCELLED, APPOINTMENT_NO_SHOW}

// Subscription plans
const (
	PLAN_FREE         = "free"
	PLAN_BASIC        = "basic"
	PLAN_PROFESSIONAL = "professional"
	PLAN_ENTERPRISE   = "enterprise"
)

// Common response messages
const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	NOT_ADMIN                  = "Admin access required"
	NOT_BUSINESS               = "Business account required"
	NOT_FOUND                  = "Record not found"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_EMAIL              = "Email does not exist"
	INVALID_PASSWORD           = "Password does not match"
	EMAIL_EXISTS               = "Email already registered"
	ACCOUNT_NOT_ACTIVE         = "Account is disabled"
	PLAN_LIMIT_REACHED         = "Plan limit reached, upgrade to continue"
	INVALID_QR_CODE            = "Invalid QR Code"
	WAITLIST_INACTIVE          = "Waitlist is not accepting entries"
	WAITLIST_FULL              = "Waitlist is full"
)
