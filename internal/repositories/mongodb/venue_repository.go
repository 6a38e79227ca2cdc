package mongodb

import (
	"context"
	"fmt"
	"time"

	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type venueRepository struct {
	collection *mongo.Collection
}

func NewVenueRepository(db *mongo.Database) interfaces.VenueRepository {
	return &venueRepository{collection: db.Collection("venues")}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	venue.ID = primitive.NewObjectID()
	venue.CreatedAt = time.Now()
	venue.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, venue)
	if err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	var venue models.Venue
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&venue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return &venue, nil
}

func (r *venueRepository) GetByName(ctx context.Context, name string) (*models.Venue, error) {
	var venue models.Venue
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&venue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get venue by name: %w", err)
	}
	return &venue, nil
}

func (r *venueRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update venue: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *venueRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}

func (r *venueRepository) List(ctx context.Context, filter *interfaces.VenueFilter, params *utils.PaginationParams) ([]*models.Venue, int64, error) {
	query := bson.M{}
	if filter != nil {
		if filter.ActiveOnly {
			query["is_active"] = true
		}
		if filter.City != "" {
			query["address.city"] = bson.M{"$regex": filter.City, "$options": "i"}
		}
		if filter.Search != "" {
			query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
		}
	}

	opts := params.FindOptions().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []*models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, 0, fmt.Errorf("failed to decode venues: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count venues: %w", err)
	}

	return venues, total, nil
}
