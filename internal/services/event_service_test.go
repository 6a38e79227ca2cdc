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

type eventServiceFixture struct {
	service EventService
	events  *fakeEventRepo
	venues  *fakeVenueRepo
	users   *fakeUserRepo
}

func newEventServiceFixture() *eventServiceFixture {
	events := newFakeEventRepo()
	venues := newFakeVenueRepo()
	users := newFakeUserRepo()
	return &eventServiceFixture{
		service: NewEventService(events, venues, users, testLogger()),
		events:  events,
		venues:  venues,
		users:   users,
	}
}

func adminUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Admin",
		Role:     models.UserRoleAdmin,
		IsActive: true,
	}
}

func createRequest(venue string) *CreateEventRequest {
	return &CreateEventRequest{
		Title:       "Championship Final",
		Description: "Season finale",
		Sport:       "soccer",
		Date:        time.Now().Add(14 * 24 * time.Hour),
		Venue:       venue,
		Categories: []TicketCategoryRequest{
			{Name: "bleachers", Price: 30, TotalSeats: 200},
			{Name: "vip", Price: 120, TotalSeats: 40},
		},
	}
}

func TestCreateEventWithVenueID(t *testing.T) {
	f := newEventServiceFixture()
	admin := adminUser()

	venue := &models.Venue{Name: "Grand Arena", Capacity: 500, IsActive: true}
	require.NoError(t, f.venues.Create(context.Background(), venue))

	event, err := f.service.Create(context.Background(), admin, createRequest(venue.ID.Hex()))
	require.NoError(t, err)

	assert.Equal(t, venue.ID, event.Venue)
	assert.Equal(t, models.EventStatusUpcoming, event.Status)
	assert.True(t, event.IsActive)
	assert.Equal(t, admin.ID, event.CreatedBy)
	// Available mirrors total on creation
	assert.Equal(t, 200, event.TicketCategories[0].AvailableSeats)
}

func TestCreateEventWithVenueName(t *testing.T) {
	f := newEventServiceFixture()
	admin := adminUser()

	venue := &models.Venue{Name: "Grand Arena", Capacity: 500, IsActive: true}
	require.NoError(t, f.venues.Create(context.Background(), venue))

	event, err := f.service.Create(context.Background(), admin, createRequest("Grand Arena"))
	require.NoError(t, err)
	assert.Equal(t, venue.ID, event.Venue)
}

func TestCreateEventUnknownVenueNameCreatesPlaceholder(t *testing.T) {
	f := newEventServiceFixture()
	admin := adminUser()

	event, err := f.service.Create(context.Background(), admin, createRequest("Pop-up Grounds"))
	require.NoError(t, err)

	placeholder, err := f.venues.GetByName(context.Background(), "Pop-up Grounds")
	require.NoError(t, err)
	assert.Equal(t, placeholder.ID, event.Venue)
	// Capacity covers the requested seats
	assert.Equal(t, 240, placeholder.Capacity)
	assert.True(t, placeholder.IsActive)
}

func TestCreateEventUnknownVenueID(t *testing.T) {
	f := newEventServiceFixture()
	admin := adminUser()

	_, err := f.service.Create(context.Background(), admin, createRequest(primitive.NewObjectID().Hex()))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreateEventPastDate(t *testing.T) {
	f := newEventServiceFixture()
	admin := adminUser()

	request := createRequest("Grand Arena")
	request.Date = time.Now().Add(-time.Hour)

	_, err := f.service.Create(context.Background(), admin, request)
	assert.ErrorIs(t, err, ErrEventDateInPast)
}

func TestUpdateEventOwnership(t *testing.T) {
	f := newEventServiceFixture()
	admin := adminUser()

	venue := &models.Venue{Name: "Grand Arena", Capacity: 500, IsActive: true}
	require.NoError(t, f.venues.Create(context.Background(), venue))

	event, err := f.service.Create(context.Background(), admin, createRequest(venue.ID.Hex()))
	require.NoError(t, err)

	outsider := &models.User{ID: primitive.NewObjectID(), Role: models.UserRoleUser, IsActive: true}
	newTitle := "Renamed"
	_, err = f.service.Update(context.Background(), outsider, event.ID, &UpdateEventRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := f.service.Update(context.Background(), admin, event.ID, &UpdateEventRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestEventStatsFromService(t *testing.T) {
	f := newEventServiceFixture()
	admin := adminUser()

	venue := &models.Venue{Name: "Grand Arena", Capacity: 500, IsActive: true}
	require.NoError(t, f.venues.Create(context.Background(), venue))

	event, err := f.service.Create(context.Background(), admin, createRequest(venue.ID.Hex()))
	require.NoError(t, err)

	require.NoError(t, f.events.ReserveSeats(context.Background(), event.ID, models.TicketCategoryVIP, 10))

	stats, err := f.service.Stats(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.SoldSeats)
	assert.InDelta(t, 1200.0, stats.Revenue, 0.0001)
}

func TestGetEventNotFound(t *testing.T) {
	f := newEventServiceFixture()

	_, err := f.service.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrEventNotFound)
}
