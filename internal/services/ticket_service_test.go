package services

import (
	"context"
	"testing"
	"time"

	"matchday/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComputeTicketPrice(t *testing.T) {
	tests := []struct {
		name         string
		base         float64
		passDiscount bool
		tier         models.LoyaltyTier
		wantFinal    float64
		wantDiscount float64
	}{
		{"no discounts", 100, false, models.LoyaltyTierBronze, 100, 0},
		{"silver gets nothing", 100, false, models.LoyaltyTierSilver, 100, 0},
		{"gold tier", 100, false, models.LoyaltyTierGold, 90, 10},
		{"platinum tier", 100, false, models.LoyaltyTierPlatinum, 85, 15},
		{"season pass only", 100, true, models.LoyaltyTierBronze, 80, 20},
		{"season pass stacks with gold", 100, true, models.LoyaltyTierGold, 70, 30},
		{"season pass stacks with platinum", 100, true, models.LoyaltyTierPlatinum, 65, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, discount := computeTicketPrice(tt.base, tt.passDiscount, tt.tier)
			assert.InDelta(t, tt.wantFinal, final, 0.0001)
			assert.InDelta(t, tt.wantDiscount, discount, 0.0001)
		})
	}
}

type ticketServiceFixture struct {
	service TicketService
	users   *fakeUserRepo
	events  *fakeEventRepo
	tickets *fakeTicketRepo
	passes  *fakeSeasonPassRepo
	emails  *fakeEmailService
}

func newTicketServiceFixture() *ticketServiceFixture {
	users := newFakeUserRepo()
	events := newFakeEventRepo()
	tickets := newFakeTicketRepo()
	passes := newFakeSeasonPassRepo()
	emails := &fakeEmailService{}
	return &ticketServiceFixture{
		service: NewTicketService(tickets, events, users, passes, emails, testLogger()),
		users:   users,
		events:  events,
		tickets: tickets,
		passes:  passes,
		emails:  emails,
	}
}

func (f *ticketServiceFixture) seedUser(t *testing.T, tier models.LoyaltyTier, points int) *models.User {
	t.Helper()
	user := &models.User{
		Name:          "Buyer",
		Email:         primitive.NewObjectID().Hex() + "@example.com",
		LoyaltyTier:   tier,
		LoyaltyPoints: points,
		IsActive:      true,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *ticketServiceFixture) seedEvent(t *testing.T, daysAhead int, available int) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:  "Final",
		Sport:  models.SportSoccer,
		Date:   time.Now().Add(time.Duration(daysAhead) * 24 * time.Hour),
		Status: models.EventStatusUpcoming,
		TicketCategories: []models.EventTicketCategory{
			{Name: models.TicketCategoryVIP, Price: 100, TotalSeats: 50, AvailableSeats: available},
		},
		IsActive: true,
	}
	require.NoError(t, f.events.Create(context.Background(), event))
	return event
}

func TestPurchaseTickets(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      3,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	require.Len(t, result.Tickets, 3)
	assert.InDelta(t, 300.0, result.TotalPrice, 0.0001)
	// floor(100 * 0.1) once for the whole purchase
	assert.Equal(t, 10, result.LoyaltyPointsEarned)
	assert.Equal(t, 3, f.emails.confirmations)

	for _, ticket := range result.Tickets {
		assert.Equal(t, models.TicketStatusActive, ticket.Status)
		assert.NotEmpty(t, ticket.EntryCode)
		assert.NotEmpty(t, ticket.PaymentInfo.TransactionID)
	}

	stored, err := f.events.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 47, stored.Category(models.TicketCategoryVIP).AvailableSeats)

	updated, err := f.users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.LoyaltyPoints)
}

func TestPurchaseInsufficientSeats(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 2)

	_, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      3,
		PaymentMethod: "credit_card",
	})
	assert.ErrorIs(t, err, ErrInsufficientSeats)

	// Nothing reserved on failure
	stored, err := f.events.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Category(models.TicketCategoryVIP).AvailableSeats)
}

func TestPurchasePastEvent(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, -1, 50)

	_, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	assert.ErrorIs(t, err, ErrPastEvent)
}

func TestPurchaseUnknownCategory(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	_, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "box",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestPurchaseWithSeasonPass(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierGold, 1000)
	event := f.seedEvent(t, 7, 50)

	now := time.Now()
	pass := &models.SeasonPass{
		User:   user.ID,
		Name:   "Soccer Season",
		Sport:  models.SportSoccer,
		Status: models.SeasonPassStatusActive,
		ValidityPeriod: models.ValidityPeriod{
			Start: now.Add(-24 * time.Hour),
			End:   now.Add(90 * 24 * time.Hour),
		},
		Benefits: []models.SeasonPassBenefit{models.BenefitDiscountedTickets},
	}
	require.NoError(t, f.passes.Create(context.Background(), pass))

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
		SeasonPassID:  pass.ID.Hex(),
	})
	require.NoError(t, err)

	// 20 percent pass plus 10 percent gold, both off the face price
	assert.InDelta(t, 70.0, result.TotalPrice, 0.0001)
	assert.InDelta(t, 30.0, result.DiscountApplied, 0.0001)
	require.NotNil(t, result.Tickets[0].SeasonPassID)
	assert.Equal(t, pass.ID, *result.Tickets[0].SeasonPassID)

	storedPass, err := f.passes.GetByID(context.Background(), pass.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, storedPass.EventsUsed)
}

func TestPurchaseSeasonPassWrongSport(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	now := time.Now()
	pass := &models.SeasonPass{
		User:   user.ID,
		Name:   "Cricket Season",
		Sport:  models.SportCricket,
		Status: models.SeasonPassStatusActive,
		ValidityPeriod: models.ValidityPeriod{
			Start: now.Add(-24 * time.Hour),
			End:   now.Add(90 * 24 * time.Hour),
		},
		Benefits: []models.SeasonPassBenefit{models.BenefitDiscountedTickets},
	}
	require.NoError(t, f.passes.Create(context.Background(), pass))

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
		SeasonPassID:  pass.ID.Hex(),
	})
	require.NoError(t, err)

	// Pass does not cover soccer, full price applies
	assert.InDelta(t, 100.0, result.TotalPrice, 0.0001)
	assert.Nil(t, result.Tickets[0].SeasonPassID)
}

func TestPurchaseSomeoneElsesPass(t *testing.T) {
	f := newTicketServiceFixture()
	buyer := f.seedUser(t, models.LoyaltyTierBronze, 0)
	other := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	now := time.Now()
	pass := &models.SeasonPass{
		User:   other.ID,
		Name:   "Soccer Season",
		Sport:  models.SportSoccer,
		Status: models.SeasonPassStatusActive,
		ValidityPeriod: models.ValidityPeriod{
			Start: now.Add(-24 * time.Hour),
			End:   now.Add(90 * 24 * time.Hour),
		},
	}
	require.NoError(t, f.passes.Create(context.Background(), pass))

	_, err := f.service.Purchase(context.Background(), buyer, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
		SeasonPassID:  pass.ID.Hex(),
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestTierUpgradeAfterPurchase(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 495)
	event := f.seedEvent(t, 7, 50)

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	// 495 + floor(100*0.1) = 505, crosses the silver threshold
	assert.Equal(t, models.LoyaltyTierSilver, result.LoyaltyTier)
}

func TestCancelTicketFlow(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	user, err = f.users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)

	cancelled, err := f.service.Cancel(context.Background(), user, result.Tickets[0].ID)
	require.NoError(t, err)

	assert.Equal(t, models.TicketStatusCancelled, cancelled.Ticket.Status)
	assert.InDelta(t, 100.0, cancelled.RefundAmount, 0.0001)
	assert.Equal(t, 10, cancelled.LoyaltyPointsRemoved)
	assert.Equal(t, 1, f.emails.cancellations)

	// Seat returned to the pool
	stored, err := f.events.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Category(models.TicketCategoryVIP).AvailableSeats)

	// Points clawed back
	updated, err := f.users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.LoyaltyPoints)
}

func TestCancelInsideCutoff(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	// Move the event inside the 24h window
	require.NoError(t, f.events.Update(context.Background(), event.ID, map[string]interface{}{
		"date": time.Now().Add(3 * time.Hour),
	}))

	_, err = f.service.Cancel(context.Background(), user, result.Tickets[0].ID)
	assert.ErrorIs(t, err, ErrCancellationWindow)
}

func TestCancelNotOwner(t *testing.T) {
	f := newTicketServiceFixture()
	owner := f.seedUser(t, models.LoyaltyTierBronze, 0)
	stranger := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	result, err := f.service.Purchase(context.Background(), owner, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), stranger, result.Tickets[0].ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestCancelRejectsAdminNonOwner(t *testing.T) {
	f := newTicketServiceFixture()
	owner := f.seedUser(t, models.LoyaltyTierBronze, 0)
	admin := f.seedUser(t, models.LoyaltyTierBronze, 0)
	admin.Role = models.UserRoleAdmin
	event := f.seedEvent(t, 7, 50)

	result, err := f.service.Purchase(context.Background(), owner, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), admin, result.Tickets[0].ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	stored, err := f.tickets.GetByID(context.Background(), result.Tickets[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusActive, stored.Status)
}

func TestValidateTicket(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)

	// Event later today so the calendar-day check passes
	event := &models.Event{
		Title:  "Tonight",
		Sport:  models.SportSoccer,
		Date:   time.Now().Add(2 * time.Hour),
		Status: models.EventStatusUpcoming,
		TicketCategories: []models.EventTicketCategory{
			{Name: models.TicketCategoryVIP, Price: 100, TotalSeats: 50, AvailableSeats: 50},
		},
		IsActive: true,
	}
	require.NoError(t, f.events.Create(context.Background(), event))

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	validated, err := f.service.Validate(context.Background(), result.Tickets[0].EntryCode)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusUsed, validated.Status)

	// A second scan of the same code must be rejected
	_, err = f.service.Validate(context.Background(), result.Tickets[0].EntryCode)
	assert.ErrorIs(t, err, ErrTicketNotActive)
}

func TestValidateWrongDay(t *testing.T) {
	f := newTicketServiceFixture()
	user := f.seedUser(t, models.LoyaltyTierBronze, 0)
	event := f.seedEvent(t, 7, 50)

	result, err := f.service.Purchase(context.Background(), user, &PurchaseTicketRequest{
		EventID:       event.ID.Hex(),
		Category:      "vip",
		Quantity:      1,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	_, err = f.service.Validate(context.Background(), result.Tickets[0].EntryCode)
	assert.ErrorIs(t, err, ErrTicketNotForToday)
}

func TestValidateUnknownCode(t *testing.T) {
	f := newTicketServiceFixture()

	_, err := f.service.Validate(context.Background(), "TICKET-DOES-NOT-EXIST")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
