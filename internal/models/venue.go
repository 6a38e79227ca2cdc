package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street  string `json:"street" bson:"street" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	State   string `json:"state" bson:"state" validate:"required"`
	ZipCode string `json:"zip_code" bson:"zip_code" validate:"required"`
	Country string `json:"country" bson:"country" default:"USA"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.ZipCode, a.Country)
}

type SeatSection struct {
	Name        string         `json:"name" bson:"name"`
	Category    TicketCategory `json:"category" bson:"category"`
	Rows        int            `json:"rows" bson:"rows"`
	SeatsPerRow int            `json:"seats_per_row" bson:"seats_per_row"`
	Price       float64        `json:"price" bson:"price"`
}

type SeatMap struct {
	ImageURL string        `json:"image_url" bson:"image_url"`
	Sections []SeatSection `json:"sections" bson:"sections"`
}

type ContactInfo struct {
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Website string `json:"website" bson:"website"`
}

type Image struct {
	URL string `json:"url" bson:"url"`
	Alt string `json:"alt" bson:"alt"`
}

type Venue struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required,max=100"`
	Address     Address            `json:"address" bson:"address"`
	Capacity    int                `json:"capacity" bson:"capacity" validate:"required,min=100"`
	SeatMap     SeatMap            `json:"seat_map" bson:"seat_map"`
	Facilities  []string           `json:"facilities" bson:"facilities"`
	ContactInfo ContactInfo        `json:"contact_info" bson:"contact_info"`
	Images      []Image            `json:"images" bson:"images"`
	IsActive    bool               `json:"is_active" bson:"is_active" default:"true"`
	CreatedBy   primitive.ObjectID `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// SectionSeats returns the seat count a section provides for a category.
func (v *Venue) SectionSeats(category TicketCategory) int {
	for _, section := range v.SeatMap.Sections {
		if section.Category == category {
			return section.Rows * section.SeatsPerRow
		}
	}
	return 0
}

// VenueSummary is the populated shape embedded in event listings.
type VenueSummary struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Address  Address            `json:"address" bson:"address"`
	Capacity int                `json:"capacity" bson:"capacity"`
}
