package interfaces

import (
	"context"

	"matchday/internal/models"
	"matchday/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error

	// SetLoyalty persists a recomputed point balance and tier together.
	SetLoyalty(ctx context.Context, id primitive.ObjectID, points int, tier models.LoyaltyTier) error

	List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error)
}
