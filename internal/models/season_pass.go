package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SeasonPassType string
type SeasonPassStatus string
type SeasonPassBenefit string

const (
	SeasonPassTypeSingleSport SeasonPassType = "single_sport"
	SeasonPassTypeMultiSport  SeasonPassType = "multi_sport"
	SeasonPassTypeVIP         SeasonPassType = "vip"
	SeasonPassTypePremium     SeasonPassType = "premium"

	SeasonPassStatusActive    SeasonPassStatus = "active"
	SeasonPassStatusExpired   SeasonPassStatus = "expired"
	SeasonPassStatusCancelled SeasonPassStatus = "cancelled"

	BenefitPriorityBooking     SeasonPassBenefit = "priority_booking"
	BenefitDiscountedTickets   SeasonPassBenefit = "discounted_tickets"
	BenefitVIPLoungeAccess     SeasonPassBenefit = "vip_lounge_access"
	BenefitFreeParking         SeasonPassBenefit = "free_parking"
	BenefitExclusiveEvents     SeasonPassBenefit = "exclusive_events"
	BenefitMerchandiseDiscount SeasonPassBenefit = "merchandise_discount"
	BenefitLoyaltyPointsBonus  SeasonPassBenefit = "loyalty_points_bonus"
)

// SportAll widens a pass to every sport.
const SportAll Sport = "all"

var ErrSeasonPassExhausted = errors.New("maximum events reached for this season pass")

type ValidityPeriod struct {
	Start time.Time `json:"start" bson:"start" validate:"required"`
	End   time.Time `json:"end" bson:"end" validate:"required,gtfield=Start"`
}

type SeasonPass struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	User           primitive.ObjectID  `json:"user" bson:"user"`
	Name           string              `json:"name" bson:"name" validate:"required"`
	Description    string              `json:"description" bson:"description"`
	Sport          Sport               `json:"sport" bson:"sport" validate:"required"`
	Type           SeasonPassType      `json:"type" bson:"type" default:"single_sport"`
	Price          float64             `json:"price" bson:"price" validate:"min=0"`
	ValidityPeriod ValidityPeriod      `json:"validity_period" bson:"validity_period"`
	Benefits       []SeasonPassBenefit `json:"benefits" bson:"benefits"`
	MaxEvents      *int                `json:"max_events" bson:"max_events"` // nil means unlimited
	EventsUsed     int                 `json:"events_used" bson:"events_used"`
	Status         SeasonPassStatus    `json:"status" bson:"status" default:"active"`
	PaymentInfo    PaymentInfo         `json:"payment_info" bson:"payment_info"`
	AutoRenew      bool                `json:"auto_renew" bson:"auto_renew"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

// IsValid reports whether the pass is usable right now: active, inside its
// validity window, and under the usage cap.
func (p *SeasonPass) IsValid(now time.Time) bool {
	if p.Status != SeasonPassStatusActive {
		return false
	}
	if now.Before(p.ValidityPeriod.Start) || now.After(p.ValidityPeriod.End) {
		return false
	}
	if p.MaxEvents != nil && p.EventsUsed >= *p.MaxEvents {
		return false
	}
	return true
}

// CanUseForEvent additionally checks the sport scope against the event.
func (p *SeasonPass) CanUseForEvent(event *Event, now time.Time) bool {
	if !p.IsValid(now) {
		return false
	}
	return p.Sport == SportAll || p.Sport == event.Sport
}

// HasBenefit reports whether the pass carries the named benefit.
func (p *SeasonPass) HasBenefit(benefit SeasonPassBenefit) bool {
	for _, b := range p.Benefits {
		if b == benefit {
			return true
		}
	}
	return false
}

// Use records one event usage against the cap.
func (p *SeasonPass) Use(now time.Time) error {
	if !p.IsValid(now) {
		return ErrSeasonPassExhausted
	}
	p.EventsUsed++
	return nil
}

// RemainingEvents returns the events left on the pass, or nil for unlimited.
func (p *SeasonPass) RemainingEvents() *int {
	if p.MaxEvents == nil {
		return nil
	}
	remaining := *p.MaxEvents - p.EventsUsed
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}
