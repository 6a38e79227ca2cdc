package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketStatus string
type PaymentMethod string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusUsed      TicketStatus = "used"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusRefunded  TicketStatus = "refunded"

	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPayPal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard, PaymentMethodDebitCard,
	PaymentMethodPayPal, PaymentMethodBankTransfer,
}

var (
	ErrTicketNotActive = errors.New("ticket is not active")
)

type SeatInfo struct {
	Category   TicketCategory `json:"category" bson:"category" validate:"required,ticket_category"`
	Section    string         `json:"section" bson:"section"`
	Row        string         `json:"row" bson:"row"`
	SeatNumber string         `json:"seat_number" bson:"seat_number"`
}

type PaymentInfo struct {
	Method        PaymentMethod `json:"method" bson:"method" validate:"required,payment_method"`
	TransactionID string        `json:"transaction_id" bson:"transaction_id"`
	Amount        float64       `json:"amount" bson:"amount"`
}

type Ticket struct {
	ID                  primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Event               primitive.ObjectID  `json:"event" bson:"event"`
	EventDetails        *Event              `json:"event_details,omitempty" bson:"event_details,omitempty"`
	User                primitive.ObjectID  `json:"user" bson:"user"`
	SeatInfo            SeatInfo            `json:"seat_info" bson:"seat_info"`
	Price               float64             `json:"price" bson:"price" validate:"min=0"`
	PurchaseDate        time.Time           `json:"purchase_date" bson:"purchase_date"`
	Status              TicketStatus        `json:"status" bson:"status" default:"active"`
	EntryCode           string              `json:"entry_code" bson:"entry_code"`
	PaymentInfo         PaymentInfo         `json:"payment_info" bson:"payment_info"`
	SeasonPassID        *primitive.ObjectID `json:"season_pass_id,omitempty" bson:"season_pass_id,omitempty"`
	DiscountApplied     float64             `json:"discount_applied" bson:"discount_applied"`
	LoyaltyPointsEarned int                 `json:"loyalty_points_earned" bson:"loyalty_points_earned"`
	CreatedAt           time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" bson:"updated_at"`
}

// MarkAsUsed flips an active ticket to used. Any other starting status is an
// error, which is what blocks a second gate scan.
func (t *Ticket) MarkAsUsed() error {
	if t.Status != TicketStatusActive {
		return ErrTicketNotActive
	}
	t.Status = TicketStatusUsed
	return nil
}

// Cancel flips an active ticket to cancelled.
func (t *Ticket) Cancel() error {
	if t.Status != TicketStatusActive {
		return ErrTicketNotActive
	}
	t.Status = TicketStatusCancelled
	return nil
}

func (t *Ticket) IsOwnedBy(userID primitive.ObjectID) bool {
	return t.User == userID
}

func IsValidPaymentMethod(s string) bool {
	for _, method := range PaymentMethods {
		if PaymentMethod(s) == method {
			return true
		}
	}
	return false
}
