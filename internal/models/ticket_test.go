package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMarkAsUsed(t *testing.T) {
	ticket := &Ticket{Status: TicketStatusActive}

	require.NoError(t, ticket.MarkAsUsed())
	assert.Equal(t, TicketStatusUsed, ticket.Status)

	// Second scan must fail
	assert.ErrorIs(t, ticket.MarkAsUsed(), ErrTicketNotActive)
}

func TestCancelTicket(t *testing.T) {
	ticket := &Ticket{Status: TicketStatusActive}

	require.NoError(t, ticket.Cancel())
	assert.Equal(t, TicketStatusCancelled, ticket.Status)

	assert.ErrorIs(t, ticket.Cancel(), ErrTicketNotActive)
}

func TestCancelUsedTicket(t *testing.T) {
	ticket := &Ticket{Status: TicketStatusUsed}
	assert.ErrorIs(t, ticket.Cancel(), ErrTicketNotActive)
}

func TestIsOwnedBy(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	ticket := &Ticket{User: owner}

	assert.True(t, ticket.IsOwnedBy(owner))
	assert.False(t, ticket.IsOwnedBy(other))
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod("credit_card"))
	assert.True(t, IsValidPaymentMethod("paypal"))
	assert.False(t, IsValidPaymentMethod("cash"))
}
