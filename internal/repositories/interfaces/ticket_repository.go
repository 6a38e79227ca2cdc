package interfaces

import (
	"context"

	"matchday/internal/models"
	"matchday/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketFilter struct {
	Status models.TicketStatus
	Event  *primitive.ObjectID
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	GetByEntryCode(ctx context.Context, code string) (*models.Ticket, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error

	ListByUser(ctx context.Context, userID primitive.ObjectID, filter *TicketFilter, params *utils.PaginationParams) ([]*models.Ticket, int64, error)
}
