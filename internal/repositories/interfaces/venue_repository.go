package interfaces

import (
	"context"

	"matchday/internal/models"
	"matchday/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VenueFilter captures the query surface of the venue listing.
type VenueFilter struct {
	City       string
	Search     string
	ActiveOnly bool
}

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error)
	GetByName(ctx context.Context, name string) (*models.Venue, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Deactivate(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, filter *VenueFilter, params *utils.PaginationParams) ([]*models.Venue, int64, error)
}
