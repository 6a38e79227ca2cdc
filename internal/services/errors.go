package services

import "errors"

// Domain-rule errors. Handlers translate these into HTTP statuses; anything
// else is a 500.
var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrWrongPassword      = errors.New("current password is incorrect")

	ErrEventNotFound      = errors.New("event not found")
	ErrVenueNotFound      = errors.New("venue not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrSeasonPassNotFound = errors.New("season pass not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrNotOwner           = errors.New("not authorized for this resource")
	ErrPastEvent          = errors.New("cannot purchase tickets for past events")
	ErrEventDateInPast    = errors.New("event date must be in the future")
	ErrInvalidCategory    = errors.New("invalid ticket category")
	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 10")
	ErrInsufficientSeats  = errors.New("insufficient seats available")
	ErrCancellationWindow = errors.New("tickets cannot be cancelled less than 24 hours before the event")
	ErrTicketNotActive    = errors.New("ticket is not active")
	ErrSeasonPassValidity = errors.New("validity end must be after validity start")
	ErrTicketNotForToday  = errors.New("ticket is not valid for today")
)
