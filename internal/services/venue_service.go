package services

import (
	"context"
	"errors"

	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/repositories/mongodb"
	"matchday/internal/utils"
	"matchday/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VenueService interface {
	List(ctx context.Context, filter *interfaces.VenueFilter, params *utils.PaginationParams) ([]*models.Venue, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Venue, error)
	Create(ctx context.Context, actor *models.User, request *CreateVenueRequest) (*models.Venue, error)
	Update(ctx context.Context, id primitive.ObjectID, request *UpdateVenueRequest) (*models.Venue, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}

type CreateVenueRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Address     models.Address      `json:"address" validate:"required"`
	Capacity    int                 `json:"capacity" validate:"required,min=1"`
	SeatMap     models.SeatMap      `json:"seat_map"`
	Facilities  []string            `json:"facilities"`
	ContactInfo models.ContactInfo  `json:"contact_info"`
	Images      []models.Image      `json:"images"`
}

type UpdateVenueRequest struct {
	Name        *string             `json:"name"`
	Address     *models.Address     `json:"address"`
	Capacity    *int                `json:"capacity"`
	SeatMap     *models.SeatMap     `json:"seat_map"`
	Facilities  []string            `json:"facilities"`
	ContactInfo *models.ContactInfo `json:"contact_info"`
	Images      []models.Image      `json:"images"`
	IsActive    *bool               `json:"is_active"`
}

type venueService struct {
	venueRepo interfaces.VenueRepository
	logger    *logger.Logger
}

func NewVenueService(venueRepo interfaces.VenueRepository, log *logger.Logger) VenueService {
	return &venueService{venueRepo: venueRepo, logger: log}
}

func (s *venueService) List(ctx context.Context, filter *interfaces.VenueFilter, params *utils.PaginationParams) ([]*models.Venue, int64, error) {
	return s.venueRepo.List(ctx, filter, params)
}

func (s *venueService) Get(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) Create(ctx context.Context, actor *models.User, request *CreateVenueRequest) (*models.Venue, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	venue := &models.Venue{
		Name:        request.Name,
		Address:     request.Address,
		Capacity:    request.Capacity,
		SeatMap:     request.SeatMap,
		Facilities:  request.Facilities,
		ContactInfo: request.ContactInfo,
		Images:      request.Images,
		IsActive:    true,
		CreatedBy:   actor.ID,
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		s.logger.WithError(err).Error("Failed to create venue")
		return nil, err
	}

	return venue, nil
}

func (s *venueService) Update(ctx context.Context, id primitive.ObjectID, request *UpdateVenueRequest) (*models.Venue, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Address != nil {
		updates["address"] = *request.Address
	}
	if request.Capacity != nil {
		updates["capacity"] = *request.Capacity
	}
	if request.SeatMap != nil {
		updates["seat_map"] = *request.SeatMap
	}
	if request.Facilities != nil {
		updates["facilities"] = request.Facilities
	}
	if request.ContactInfo != nil {
		updates["contact_info"] = *request.ContactInfo
	}
	if request.Images != nil {
		updates["images"] = request.Images
	}
	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}

	if len(updates) > 0 {
		if err := s.venueRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *venueService) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.venueRepo.Deactivate(ctx, id)
}
