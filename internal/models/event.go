package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Sport string
type EventStatus string
type TicketCategory string

const (
	SportFootball   Sport = "football"
	SportCricket    Sport = "cricket"
	SportBasketball Sport = "basketball"
	SportBaseball   Sport = "baseball"
	SportSoccer     Sport = "soccer"
	SportTennis     Sport = "tennis"
	SportOther      Sport = "other"

	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusLive      EventStatus = "live"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"

	TicketCategoryBleachers TicketCategory = "bleachers"
	TicketCategoryVIP       TicketCategory = "vip"
	TicketCategoryPremium   TicketCategory = "premium"
	TicketCategoryBox       TicketCategory = "box"
)

var Sports = []Sport{
	SportFootball, SportCricket, SportBasketball,
	SportBaseball, SportSoccer, SportTennis, SportOther,
}

var TicketCategories = []TicketCategory{
	TicketCategoryBleachers, TicketCategoryVIP,
	TicketCategoryPremium, TicketCategoryBox,
}

type Team struct {
	Name string `json:"name" bson:"name"`
	Logo string `json:"logo" bson:"logo"`
}

type Teams struct {
	Home Team `json:"home" bson:"home"`
	Away Team `json:"away" bson:"away"`
}

type EventTicketCategory struct {
	Name           TicketCategory `json:"name" bson:"name" validate:"required,ticket_category"`
	Price          float64        `json:"price" bson:"price" validate:"min=0"`
	AvailableSeats int            `json:"available_seats" bson:"available_seats" validate:"min=0"`
	TotalSeats     int            `json:"total_seats" bson:"total_seats" validate:"required,min=1"`
	Benefits       []string       `json:"benefits" bson:"benefits"`
}

type Event struct {
	ID               primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	Title            string                `json:"title" bson:"title" validate:"required,max=100"`
	Description      string                `json:"description" bson:"description" validate:"required,max=1000"`
	Sport            Sport                 `json:"sport" bson:"sport" validate:"required,sport"`
	Date             time.Time             `json:"date" bson:"date" validate:"required"`
	Venue            primitive.ObjectID    `json:"venue" bson:"venue"`
	VenueDetails     *VenueSummary         `json:"venue_details,omitempty" bson:"venue_details,omitempty"`
	Teams            Teams                 `json:"teams" bson:"teams"`
	TicketCategories []EventTicketCategory `json:"ticket_categories" bson:"ticket_categories" validate:"required,min=1,dive"`
	Status           EventStatus           `json:"status" bson:"status" default:"upcoming"`
	Images           []Image               `json:"images" bson:"images"`
	Tags             []string              `json:"tags" bson:"tags"`
	IsActive         bool                  `json:"is_active" bson:"is_active" default:"true"`
	CreatedBy        primitive.ObjectID    `json:"created_by" bson:"created_by"`
	CreatedAt        time.Time             `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at" bson:"updated_at"`
}

// Category returns the ticket category with the given name, or nil.
func (e *Event) Category(name TicketCategory) *EventTicketCategory {
	for i := range e.TicketCategories {
		if e.TicketCategories[i].Name == name {
			return &e.TicketCategories[i]
		}
	}
	return nil
}

// CheckSeatAvailability reports whether a category has at least quantity
// seats remaining.
func (e *Event) CheckSeatAvailability(name TicketCategory, quantity int) bool {
	category := e.Category(name)
	return category != nil && category.AvailableSeats >= quantity
}

func (e *Event) IsSoldOut() bool {
	for _, category := range e.TicketCategories {
		if category.AvailableSeats > 0 {
			return false
		}
	}
	return true
}

func (e *Event) TotalSeats() int {
	total := 0
	for _, category := range e.TicketCategories {
		total += category.TotalSeats
	}
	return total
}

func (e *Event) AvailableSeats() int {
	available := 0
	for _, category := range e.TicketCategories {
		available += category.AvailableSeats
	}
	return available
}

func (e *Event) TicketsSold() int {
	return e.TotalSeats() - e.AvailableSeats()
}

func (e *Event) IsUpcoming(now time.Time) bool {
	return e.Date.After(now)
}

func IsValidSport(s string) bool {
	for _, sport := range Sports {
		if Sport(s) == sport {
			return true
		}
	}
	return false
}

func IsValidTicketCategory(s string) bool {
	for _, category := range TicketCategories {
		if TicketCategory(s) == category {
			return true
		}
	}
	return false
}

// EventStats is the admin statistics payload for a single event.
type EventStats struct {
	TotalSeats     int                 `json:"total_seats"`
	AvailableSeats int                 `json:"available_seats"`
	SoldSeats      int                 `json:"sold_seats"`
	Revenue        float64             `json:"revenue"`
	Categories     []EventCategoryStat `json:"categories"`
}

type EventCategoryStat struct {
	Name           TicketCategory `json:"name"`
	TotalSeats     int            `json:"total_seats"`
	AvailableSeats int            `json:"available_seats"`
	SoldSeats      int            `json:"sold_seats"`
	Price          float64        `json:"price"`
	Revenue        float64        `json:"revenue"`
}

// Stats computes per-category sales figures. Revenue assumes face value per
// sold seat; discounts are not folded back in.
func (e *Event) Stats() *EventStats {
	stats := &EventStats{
		TotalSeats:     e.TotalSeats(),
		AvailableSeats: e.AvailableSeats(),
		SoldSeats:      e.TicketsSold(),
	}
	for _, category := range e.TicketCategories {
		sold := category.TotalSeats - category.AvailableSeats
		revenue := float64(sold) * category.Price
		stats.Revenue += revenue
		stats.Categories = append(stats.Categories, EventCategoryStat{
			Name:           category.Name,
			TotalSeats:     category.TotalSeats,
			AvailableSeats: category.AvailableSeats,
			SoldSeats:      sold,
			Price:          category.Price,
			Revenue:        revenue,
		})
	}
	return stats
}
