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

type eventRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewEventRepository(db *mongo.Database, cache CacheService) interfaces.EventRepository {
	return &eventRepository{
		collection: db.Collection("events"),
		cache:      cache,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	if r.cache != nil {
		var event models.Event
		if err := r.cache.Get(ctx, utils.CacheEventPrefix+id.Hex(), &event); err == nil {
			return &event, nil
		}
	}

	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, utils.CacheEventPrefix+id.Hex(), &event, defaultCacheTTL)
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	r.invalidateEvent(ctx, id)
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	r.invalidateEvent(ctx, id)
	return nil
}

func (r *eventRepository) List(ctx context.Context, filter *interfaces.EventFilter, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	query := bson.M{}

	if filter.ActiveOnly {
		query["is_active"] = true
	}
	if filter.Sport != "" {
		query["sport"] = filter.Sport
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		dateRange := bson.M{}
		if filter.StartDate != nil {
			dateRange["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			dateRange["$lte"] = *filter.EndDate
		}
		query["date"] = dateRange
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"title": regex},
			{"teams.home.name": regex},
			{"teams.away.name": regex},
		}
	}

	opts := params.FindOptions().SetSort(sortFor(filter.Sort))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("failed to decode events: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	return events, total, nil
}

func sortFor(key string) bson.D {
	switch key {
	case "date_desc":
		return bson.D{{Key: "date", Value: -1}}
	case "price_asc":
		return bson.D{{Key: "ticket_categories.price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "ticket_categories.price", Value: -1}}
	default:
		return bson.D{{Key: "date", Value: 1}}
	}
}

// ReserveSeats is the compare-and-decrement at the heart of the purchase
// flow. The filter only matches when the category still has quantity seats,
// so two racing purchases cannot both succeed past the pool.
func (r *eventRepository) ReserveSeats(ctx context.Context, id primitive.ObjectID, category models.TicketCategory, quantity int) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{
			"_id": id,
			"ticket_categories": bson.M{
				"$elemMatch": bson.M{
					"name":            category,
					"available_seats": bson.M{"$gte": quantity},
				},
			},
		},
		bson.M{
			"$inc": bson.M{"ticket_categories.$.available_seats": -quantity},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}
	if result.ModifiedCount == 0 {
		return ErrInsufficientSeats
	}

	r.invalidateEvent(ctx, id)
	return nil
}

func (r *eventRepository) ReleaseSeats(ctx context.Context, id primitive.ObjectID, category models.TicketCategory, quantity int) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{
			"_id":                    id,
			"ticket_categories.name": category,
		},
		bson.M{
			"$inc": bson.M{"ticket_categories.$.available_seats": quantity},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}
	if result.ModifiedCount == 0 {
		return ErrNotFound
	}

	r.invalidateEvent(ctx, id)
	return nil
}

func (r *eventRepository) invalidateEvent(ctx context.Context, id primitive.ObjectID) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, utils.CacheEventPrefix+id.Hex())
}
