package interfaces

import (
	"context"

	"matchday/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SeasonPassRepository interface {
	Create(ctx context.Context, pass *models.SeasonPass) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SeasonPass, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.SeasonPass, error)

	// IncrementUsage bumps the events-used counter by one.
	IncrementUsage(ctx context.Context, id primitive.ObjectID) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SeasonPassStatus) error
}
