package model

import "strconv"

// Unlimited is the sentinel for numeric limits without a cap.
const Unlimited = -1

// FeatureLimits is the static entitlement table for one subscription tier.
type FeatureLimits struct {
	MaxWaitlists          int  `json:"maxWaitlists"`
	MaxLocations          int  `json:"maxLocations"`
	MaxCustomersPerDay    int  `json:"maxCustomersPerDay"`
	MaxStaffAccounts      int  `json:"maxStaffAccounts"`
	HasEmailNotifications bool `json:"hasEmailNotifications"`
	HasSmsNotifications   bool `json:"hasSmsNotifications"`
	HasAdvancedReports    bool `json:"hasAdvancedReports"`
	HasCustomBranding     bool `json:"hasCustomBranding"`
	HasApiAccess          bool `json:"hasApiAccess"`
}

var planLimits = map[string]FeatureLimits{
	"free": {
		MaxWaitlists:          1,
		MaxLocations:          1,
		MaxCustomersPerDay:    50,
		MaxStaffAccounts:      1,
		HasEmailNotifications: true,
	},
	"basic": {
		MaxWaitlists:          3,
		MaxLocations:          1,
		MaxCustomersPerDay:    200,
		MaxStaffAccounts:      5,
		HasEmailNotifications: true,
		HasSmsNotifications:   true,
	},
	"professional": {
		MaxWaitlists:          10,
		MaxLocations:          5,
		MaxCustomersPerDay:    1000,
		MaxStaffAccounts:      20,
		HasEmailNotifications: true,
		HasSmsNotifications:   true,
		HasAdvancedReports:    true,
		HasCustomBranding:     true,
	},
	"enterprise": {
		MaxWaitlists:          Unlimited,
		MaxLocations:          Unlimited,
		MaxCustomersPerDay:    Unlimited,
		MaxStaffAccounts:      Unlimited,
		HasEmailNotifications: true,
		HasSmsNotifications:   true,
		HasAdvancedReports:    true,
		HasCustomBranding:     true,
		HasApiAccess:          true,
	},
}

// GetFeatureLimits returns the limits for a plan; unknown or empty plans fall
// back to the free tier.
func GetFeatureLimits(plan string) FeatureLimits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits["free"]
}

func (l FeatureLimits) numericValue(feature string) (int, bool) {
	switch feature {
	case "maxWaitlists":
		return l.MaxWaitlists, true
	case "maxLocations":
		return l.MaxLocations, true
	case "maxCustomersPerDay":
		return l.MaxCustomersPerDay, true
	case "maxStaffAccounts":
		return l.MaxStaffAccounts, true
	}
	return 0, false
}

func (l FeatureLimits) boolValue(feature string) (bool, bool) {
	switch feature {
	case "hasEmailNotifications":
		return l.HasEmailNotifications, true
	case "hasSmsNotifications":
		return l.HasSmsNotifications, true
	case "hasAdvancedReports":
		return l.HasAdvancedReports, true
	case "hasCustomBranding":
		return l.HasCustomBranding, true
	case "hasApiAccess":
		return l.HasApiAccess, true
	}
	return false, false
}

// HasFeatureAccess reports whether a feature is usable at all on a plan: a
// boolean feature must be enabled, a numeric one unlimited or above zero.
func HasFeatureAccess(feature, plan string) bool {
	limits := GetFeatureLimits(plan)
	if v, ok := limits.boolValue(feature); ok {
		return v
	}
	if n, ok := limits.numericValue(feature); ok {
		return n == Unlimited || n > 0
	}
	return false
}

// IsWithinLimits reports whether one more of a numeric feature fits; the
// current count must be strictly below the limit.
func IsWithinLimits(feature string, currentCount int, plan string) bool {
	limits := GetFeatureLimits(plan)
	n, ok := limits.numericValue(feature)
	if !ok {
		return false
	}
	return n == Unlimited || currentCount < n
}

// GetLimitDescription renders a numeric limit for display.
func GetLimitDescription(feature, plan string) string {
	limits := GetFeatureLimits(plan)
	n, ok := limits.numericValue(feature)
	if !ok {
		return ""
	}
	if n == Unlimited {
		return "Unlimited"
	}
	return strconv.Itoa(n)
}

// SubscriptionStatus is the billing provider's view of a business.
type SubscriptionStatus struct {
	Plan             string `json:"plan"`
	Active           bool   `json:"active"`
	PaymentMethod    string `json:"paymentMethod,omitempty"`
	CurrentPeriodEnd string `json:"currentPeriodEnd,omitempty"`
}

// Invoice is a summary row from the billing provider.
type Invoice struct {
	Id        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	PdfUrl    string  `json:"pdfUrl,omitempty"`
}

type CreateCheckoutInput struct {
	PlanId string `json:"planId" validate:"required,oneof=basic professional enterprise"`
}
