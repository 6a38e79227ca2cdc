package mongodb

import (
	"context"
	"fmt"
	"time"

	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seasonPassRepository struct {
	collection *mongo.Collection
}

func NewSeasonPassRepository(db *mongo.Database) interfaces.SeasonPassRepository {
	return &seasonPassRepository{collection: db.Collection("season_passes")}
}

func (r *seasonPassRepository) Create(ctx context.Context, pass *models.SeasonPass) error {
	pass.ID = primitive.NewObjectID()
	pass.CreatedAt = time.Now()
	pass.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, pass)
	if err != nil {
		return fmt.Errorf("failed to create season pass: %w", err)
	}
	return nil
}

func (r *seasonPassRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SeasonPass, error) {
	var pass models.SeasonPass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pass)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get season pass: %w", err)
	}
	return &pass, nil
}

func (r *seasonPassRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.SeasonPass, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list season passes: %w", err)
	}
	defer cursor.Close(ctx)

	var passes []*models.SeasonPass
	if err := cursor.All(ctx, &passes); err != nil {
		return nil, fmt.Errorf("failed to decode season passes: %w", err)
	}
	return passes, nil
}

func (r *seasonPassRepository) IncrementUsage(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"events_used": 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to increment season pass usage: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *seasonPassRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SeasonPassStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update season pass status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
