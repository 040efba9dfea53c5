package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFeatureLimitsFreeTier(t *testing.T) {
	free := GetFeatureLimits("free")

	assert.Equal(t, 1, free.MaxWaitlists)
	assert.Equal(t, 1, free.MaxLocations)
	assert.Equal(t, 50, free.MaxCustomersPerDay)
	assert.Equal(t, 1, free.MaxStaffAccounts)
	assert.True(t, free.HasEmailNotifications)
	assert.False(t, free.HasSmsNotifications)
	assert.False(t, free.HasAdvancedReports)
	assert.False(t, free.HasCustomBranding)
	assert.False(t, free.HasApiAccess)
}

func TestGetFeatureLimitsUnknownPlanFallsBackToFree(t *testing.T) {
	assert.Equal(t, GetFeatureLimits("free"), GetFeatureLimits("platinum"))
	assert.Equal(t, GetFeatureLimits("free"), GetFeatureLimits(""))
}

func TestEnterpriseIsUnlimited(t *testing.T) {
	enterprise := GetFeatureLimits("enterprise")

	assert.Equal(t, Unlimited, enterprise.MaxWaitlists)
	assert.Equal(t, Unlimited, enterprise.MaxLocations)
	assert.Equal(t, Unlimited, enterprise.MaxCustomersPerDay)
	assert.Equal(t, Unlimited, enterprise.MaxStaffAccounts)
	assert.True(t, enterprise.HasApiAccess)
}

func TestIsWithinLimits(t *testing.T) {
	// Basic allows 3 waitlists: counts 0-2 fit, 3 does not.
	assert.True(t, IsWithinLimits("maxWaitlists", 0, "basic"))
	assert.True(t, IsWithinLimits("maxWaitlists", 2, "basic"))
	assert.False(t, IsWithinLimits("maxWaitlists", 3, "basic"))
	assert.False(t, IsWithinLimits("maxWaitlists", 4, "basic"))

	assert.False(t, IsWithinLimits("maxWaitlists", 1, "free"))
	assert.True(t, IsWithinLimits("maxWaitlists", 1000000, "enterprise"))

	// Unknown feature names never fit.
	assert.False(t, IsWithinLimits("maxRockets", 0, "enterprise"))
}

func TestHasFeatureAccess(t *testing.T) {
	assert.True(t, HasFeatureAccess("hasEmailNotifications", "free"))
	assert.False(t, HasFeatureAccess("hasSmsNotifications", "free"))
	assert.True(t, HasFeatureAccess("hasSmsNotifications", "basic"))
	assert.False(t, HasFeatureAccess("hasApiAccess", "professional"))
	assert.True(t, HasFeatureAccess("hasApiAccess", "enterprise"))

	// Numeric features grant access when the cap is positive or unlimited.
	assert.True(t, HasFeatureAccess("maxWaitlists", "free"))
	assert.True(t, HasFeatureAccess("maxWaitlists", "enterprise"))
	assert.False(t, HasFeatureAccess("unknownFeature", "enterprise"))
}

func TestGetLimitDescription(t *testing.T) {
	assert.Equal(t, "3", GetLimitDescription("maxWaitlists", "basic"))
	assert.Equal(t, "Unlimited", GetLimitDescription("maxWaitlists", "enterprise"))
	assert.Equal(t, "50", GetLimitDescription("maxCustomersPerDay", "free"))
	assert.Equal(t, "", GetLimitDescription("hasApiAccess", "enterprise"))
}
