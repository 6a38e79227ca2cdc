package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/repositories/mongodb"
	"matchday/internal/utils"
	"matchday/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService interface {
	List(ctx context.Context, filter *interfaces.EventFilter, params *utils.PaginationParams) ([]*models.Event, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*EventDetail, error)
	Create(ctx context.Context, actor *models.User, request *CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, actor *models.User, id primitive.ObjectID, request *UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) error
	Stats(ctx context.Context, id primitive.ObjectID) (*models.EventStats, error)
}

type EventDetail struct {
	*models.Event
	CreatedByUser *models.UserSummary `json:"created_by_user,omitempty"`
}

type TicketCategoryRequest struct {
	Name       string   `json:"name" validate:"required,ticket_category"`
	Price      float64  `json:"price" validate:"min=0"`
	TotalSeats int      `json:"total_seats" validate:"required,min=1"`
	Benefits   []string `json:"benefits"`
}

type CreateEventRequest struct {
	Title       string                  `json:"title" validate:"required,max=100"`
	Description string                  `json:"description" validate:"required,max=1000"`
	Sport       string                  `json:"sport" validate:"required,sport"`
	Date        time.Time               `json:"date" validate:"required"`
	Venue       string                  `json:"venue" validate:"required"`
	Teams       models.Teams            `json:"teams"`
	Categories  []TicketCategoryRequest `json:"ticket_categories" validate:"required,min=1,dive"`
	Images      []models.Image          `json:"images"`
	Tags        []string                `json:"tags"`
}

type UpdateEventRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Date        *time.Time          `json:"date"`
	Status      *models.EventStatus `json:"status"`
	Teams       *models.Teams       `json:"teams"`
	Images      []models.Image      `json:"images"`
	Tags        []string            `json:"tags"`
	IsActive    *bool               `json:"is_active"`
}

type eventService struct {
	eventRepo interfaces.EventRepository
	venueRepo interfaces.VenueRepository
	userRepo  interfaces.UserRepository
	logger    *logger.Logger
}

func NewEventService(
	eventRepo interfaces.EventRepository,
	venueRepo interfaces.VenueRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) EventService {
	return &eventService{
		eventRepo: eventRepo,
		venueRepo: venueRepo,
		userRepo:  userRepo,
		logger:    log,
	}
}

func (s *eventService) List(ctx context.Context, filter *interfaces.EventFilter, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	events, total, err := s.eventRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, err
	}

	for _, event := range events {
		s.attachVenue(ctx, event)
	}

	return events, total, nil
}

func (s *eventService) Get(ctx context.Context, id primitive.ObjectID) (*EventDetail, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	s.attachVenue(ctx, event)

	detail := &EventDetail{Event: event}
	if creator, err := s.userRepo.GetByID(ctx, event.CreatedBy); err == nil {
		detail.CreatedByUser = creator.Summary()
	}

	return detail, nil
}

func (s *eventService) Create(ctx context.Context, actor *models.User, request *CreateEventRequest) (*models.Event, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	if !request.Date.After(time.Now()) {
		return nil, ErrEventDateInPast
	}

	categories := make([]models.EventTicketCategory, 0, len(request.Categories))
	totalSeats := 0
	for _, cat := range request.Categories {
		categories = append(categories, models.EventTicketCategory{
			Name:           models.TicketCategory(cat.Name),
			Price:          cat.Price,
			TotalSeats:     cat.TotalSeats,
			AvailableSeats: cat.TotalSeats,
			Benefits:       cat.Benefits,
		})
		totalSeats += cat.TotalSeats
	}

	venueID, err := s.resolveVenue(ctx, actor, request.Venue, totalSeats)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:            request.Title,
		Description:      request.Description,
		Sport:            models.Sport(request.Sport),
		Date:             request.Date,
		Venue:            venueID,
		Teams:            request.Teams,
		TicketCategories: categories,
		Status:           models.EventStatusUpcoming,
		Images:           request.Images,
		Tags:             request.Tags,
		IsActive:         true,
		CreatedBy:        actor.ID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.WithError(err).Error("Failed to create event")
		return nil, err
	}

	s.attachVenue(ctx, event)
	return event, nil
}

// resolveVenue accepts either an ObjectID hex or a venue name. Unknown names
// get a placeholder venue so admins can sketch events before the venue record
// is filled in.
func (s *eventService) resolveVenue(ctx context.Context, actor *models.User, ref string, totalSeats int) (primitive.ObjectID, error) {
	if id, err := primitive.ObjectIDFromHex(ref); err == nil {
		venue, err := s.venueRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				return primitive.NilObjectID, ErrVenueNotFound
			}
			return primitive.NilObjectID, err
		}
		return venue.ID, nil
	}

	venue, err := s.venueRepo.GetByName(ctx, ref)
	if err == nil {
		return venue.ID, nil
	}
	if !errors.Is(err, mongodb.ErrNotFound) {
		return primitive.NilObjectID, err
	}

	capacity := totalSeats
	if capacity < 100 {
		capacity = 100
	}

	placeholder := &models.Venue{
		Name: ref,
		Address: models.Address{
			Street:  "TBD",
			City:    "TBD",
			State:   "TBD",
			ZipCode: "00000",
			Country: "USA",
		},
		Capacity:  capacity,
		IsActive:  true,
		CreatedBy: actor.ID,
	}
	if err := s.venueRepo.Create(ctx, placeholder); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create placeholder venue: %w", err)
	}

	s.logger.WithField("venue", ref).Info("Created placeholder venue for event")
	return placeholder.ID, nil
}

func (s *eventService) Update(ctx context.Context, actor *models.User, id primitive.ObjectID, request *UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin() && event.CreatedBy != actor.ID {
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Date != nil {
		if !request.Date.After(time.Now()) {
			return nil, ErrEventDateInPast
		}
		updates["date"] = *request.Date
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}
	if request.Teams != nil {
		updates["teams"] = *request.Teams
	}
	if request.Images != nil {
		updates["images"] = request.Images
	}
	if request.Tags != nil {
		updates["tags"] = request.Tags
	}
	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}

	if len(updates) > 0 {
		if err := s.eventRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachVenue(ctx, updated)
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if !actor.IsAdmin() && event.CreatedBy != actor.ID {
		return ErrNotOwner
	}

	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) Stats(ctx context.Context, id primitive.ObjectID) (*models.EventStats, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event.Stats(), nil
}

func (s *eventService) attachVenue(ctx context.Context, event *models.Event) {
	if event.Venue.IsZero() {
		return
	}
	venue, err := s.venueRepo.GetByID(ctx, event.Venue)
	if err != nil {
		return
	}
	event.VenueDetails = &models.VenueSummary{
		ID:       venue.ID,
		Name:     venue.Name,
		Address:  venue.Address,
		Capacity: venue.Capacity,
	}
}
