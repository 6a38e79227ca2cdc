package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string
type LoyaltyTier string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	LoyaltyTierBronze   LoyaltyTier = "bronze"
	LoyaltyTierSilver   LoyaltyTier = "silver"
	LoyaltyTierGold     LoyaltyTier = "gold"
	LoyaltyTierPlatinum LoyaltyTier = "platinum"
)

// Loyalty tier thresholds in accumulated points.
const (
	silverTierPoints   = 500
	goldTierPoints     = 1000
	platinumTierPoints = 2000
)

type UserPreferences struct {
	FavoriteSports []string `json:"favorite_sports" bson:"favorite_sports"`
	Newsletter     bool     `json:"newsletter" bson:"newsletter"`
}

type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required,min=2,max=50"`
	Email         string             `json:"email" bson:"email" validate:"required,email"`
	Password      string             `json:"-" bson:"password"`
	Phone         string             `json:"phone" bson:"phone"`
	DateOfBirth   *time.Time         `json:"date_of_birth" bson:"date_of_birth"`
	Role          UserRole           `json:"role" bson:"role" default:"user"`
	Preferences   UserPreferences    `json:"preferences" bson:"preferences"`
	LoyaltyPoints int                `json:"loyalty_points" bson:"loyalty_points"`
	LoyaltyTier   LoyaltyTier        `json:"loyalty_tier" bson:"loyalty_tier" default:"bronze"`
	IsActive      bool               `json:"is_active" bson:"is_active" default:"true"`
	LastLogin     *time.Time         `json:"last_login" bson:"last_login"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// UpdateLoyaltyTier recomputes the tier from the cumulative point balance.
func (u *User) UpdateLoyaltyTier() {
	switch {
	case u.LoyaltyPoints >= platinumTierPoints:
		u.LoyaltyTier = LoyaltyTierPlatinum
	case u.LoyaltyPoints >= goldTierPoints:
		u.LoyaltyTier = LoyaltyTierGold
	case u.LoyaltyPoints >= silverTierPoints:
		u.LoyaltyTier = LoyaltyTierSilver
	default:
		u.LoyaltyTier = LoyaltyTierBronze
	}
}

// TierDiscountRate returns the flat percentage reduction the user's tier
// grants on a ticket's base price.
func (u *User) TierDiscountRate() float64 {
	switch u.LoyaltyTier {
	case LoyaltyTierGold:
		return 0.10
	case LoyaltyTierPlatinum:
		return 0.15
	default:
		return 0
	}
}

// UserSummary is the shape returned by auth endpoints.
type UserSummary struct {
	ID            primitive.ObjectID `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Role          UserRole           `json:"role"`
	Phone         string             `json:"phone,omitempty"`
	DateOfBirth   *time.Time         `json:"date_of_birth,omitempty"`
	LoyaltyPoints int                `json:"loyalty_points"`
	LoyaltyTier   LoyaltyTier        `json:"loyalty_tier"`
	Preferences   UserPreferences    `json:"preferences"`
	LastLogin     *time.Time         `json:"last_login,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Phone:         u.Phone,
		DateOfBirth:   u.DateOfBirth,
		LoyaltyPoints: u.LoyaltyPoints,
		LoyaltyTier:   u.LoyaltyTier,
		Preferences:   u.Preferences,
		LastLogin:     u.LastLogin,
	}
}
