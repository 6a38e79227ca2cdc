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

type ticketRepository struct {
	collection *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) interfaces.TicketRepository {
	return &ticketRepository{collection: db.Collection("tickets")}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	ticket.ID = primitive.NewObjectID()
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = time.Now()
	if ticket.PurchaseDate.IsZero() {
		ticket.PurchaseDate = ticket.CreatedAt
	}
	if ticket.EntryCode == "" {
		ticket.EntryCode = utils.GenerateTicketCode()
	}

	_, err := r.collection.InsertOne(ctx, ticket)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &ticket, nil
}

func (r *ticketRepository) GetByEntryCode(ctx context.Context, code string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOne(ctx, bson.M{"entry_code": code}).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket by entry code: %w", err)
	}
	return &ticket, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter *interfaces.TicketFilter, params *utils.PaginationParams) ([]*models.Ticket, int64, error) {
	query := bson.M{"user": userID}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.Event != nil {
			query["event"] = *filter.Event
		}
	}

	opts := params.FindOptions().SetSort(bson.D{{Key: "purchase_date", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []*models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, 0, fmt.Errorf("failed to decode tickets: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return tickets, total, nil
}
