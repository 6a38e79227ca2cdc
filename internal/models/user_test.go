package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateLoyaltyTier(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   LoyaltyTier
	}{
		{"zero points stays bronze", 0, LoyaltyTierBronze},
		{"just below silver", 499, LoyaltyTierBronze},
		{"silver threshold", 500, LoyaltyTierSilver},
		{"gold threshold", 1000, LoyaltyTierGold},
		{"between gold and platinum", 1999, LoyaltyTierGold},
		{"platinum threshold", 2000, LoyaltyTierPlatinum},
		{"well past platinum", 10000, LoyaltyTierPlatinum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{LoyaltyPoints: tt.points}
			user.UpdateLoyaltyTier()
			assert.Equal(t, tt.want, user.LoyaltyTier)
		})
	}
}

func TestUpdateLoyaltyTierDowngrades(t *testing.T) {
	user := &User{LoyaltyPoints: 1200, LoyaltyTier: LoyaltyTierGold}

	user.LoyaltyPoints = 400
	user.UpdateLoyaltyTier()

	assert.Equal(t, LoyaltyTierBronze, user.LoyaltyTier)
}

func TestTierDiscountRate(t *testing.T) {
	assert.Equal(t, 0.0, (&User{LoyaltyTier: LoyaltyTierBronze}).TierDiscountRate())
	assert.Equal(t, 0.0, (&User{LoyaltyTier: LoyaltyTierSilver}).TierDiscountRate())
	assert.Equal(t, 0.10, (&User{LoyaltyTier: LoyaltyTierGold}).TierDiscountRate())
	assert.Equal(t, 0.15, (&User{LoyaltyTier: LoyaltyTierPlatinum}).TierDiscountRate())
}

func TestSummaryHidesPassword(t *testing.T) {
	user := &User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hashed",
		Role:     UserRoleUser,
	}

	summary := user.Summary()

	assert.Equal(t, "Alice", summary.Name)
	assert.Equal(t, "alice@example.com", summary.Email)
}
