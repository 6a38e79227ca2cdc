package interfaces

import (
	"context"
	"time"

	"matchday/internal/models"
	"matchday/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventFilter captures the query surface of the public event listing.
type EventFilter struct {
	Sport      models.Sport
	Status     models.EventStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Sort       string // date, date_desc, price_asc, price_desc
	ActiveOnly bool
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, filter *EventFilter, params *utils.PaginationParams) ([]*models.Event, int64, error)

	// ReserveSeats atomically decrements a category's available counter by
	// quantity, failing when fewer than quantity seats remain. A single
	// conditional update, so concurrent purchases cannot overdraw the pool.
	ReserveSeats(ctx context.Context, id primitive.ObjectID, category models.TicketCategory, quantity int) error

	// ReleaseSeats returns quantity seats to a category's pool.
	ReleaseSeats(ctx context.Context, id primitive.ObjectID, category models.TicketCategory, quantity int) error
}
