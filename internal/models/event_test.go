package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *Event {
	return &Event{
		Title: "City Derby",
		Sport: SportSoccer,
		Date:  time.Now().Add(48 * time.Hour),
		TicketCategories: []EventTicketCategory{
			{Name: TicketCategoryBleachers, Price: 40, TotalSeats: 100, AvailableSeats: 80},
			{Name: TicketCategoryVIP, Price: 150, TotalSeats: 20, AvailableSeats: 5},
		},
	}
}

func TestEventCategory(t *testing.T) {
	event := sampleEvent()

	vip := event.Category(TicketCategoryVIP)
	require.NotNil(t, vip)
	assert.Equal(t, 150.0, vip.Price)

	assert.Nil(t, event.Category(TicketCategoryBox))
}

func TestCheckSeatAvailability(t *testing.T) {
	event := sampleEvent()

	assert.True(t, event.CheckSeatAvailability(TicketCategoryVIP, 5))
	assert.False(t, event.CheckSeatAvailability(TicketCategoryVIP, 6))
	assert.False(t, event.CheckSeatAvailability(TicketCategoryBox, 1))
}

func TestSeatTotals(t *testing.T) {
	event := sampleEvent()

	assert.Equal(t, 120, event.TotalSeats())
	assert.Equal(t, 85, event.AvailableSeats())
	assert.Equal(t, 35, event.TicketsSold())
	assert.False(t, event.IsSoldOut())

	for i := range event.TicketCategories {
		event.TicketCategories[i].AvailableSeats = 0
	}
	assert.True(t, event.IsSoldOut())
}

func TestEventStats(t *testing.T) {
	event := sampleEvent()

	stats := event.Stats()

	assert.Equal(t, 35, stats.SoldSeats)
	// 20 bleachers at 40 plus 15 vip at 150
	assert.Equal(t, 20*40.0+15*150.0, stats.Revenue)
	require.Len(t, stats.Categories, 2)
	assert.Equal(t, 15, stats.Categories[1].SoldSeats)
}

func TestIsUpcoming(t *testing.T) {
	event := sampleEvent()
	now := time.Now()

	assert.True(t, event.IsUpcoming(now))

	event.Date = now.Add(-time.Hour)
	assert.False(t, event.IsUpcoming(now))
}

func TestIsValidSport(t *testing.T) {
	assert.True(t, IsValidSport("cricket"))
	assert.False(t, IsValidSport("chess"))
}
