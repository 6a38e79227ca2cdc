package services

import (
	"context"
	"errors"
	"time"

	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/repositories/mongodb"
	"matchday/internal/utils"
	"matchday/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SeasonPassService interface {
	ListMine(ctx context.Context, userID primitive.ObjectID) ([]*SeasonPassView, error)
	Get(ctx context.Context, user *models.User, id primitive.ObjectID) (*SeasonPassView, error)
	Create(ctx context.Context, user *models.User, request *CreateSeasonPassRequest) (*models.SeasonPass, error)
}

type CreateSeasonPassRequest struct {
	Name          string                     `json:"name" validate:"required,max=100"`
	Description   string                     `json:"description" validate:"max=500"`
	Sport         string                     `json:"sport" validate:"required"`
	Type          models.SeasonPassType      `json:"type"`
	Price         float64                    `json:"price" validate:"min=0"`
	ValidityStart time.Time                  `json:"validity_start" validate:"required"`
	ValidityEnd   time.Time                  `json:"validity_end" validate:"required"`
	Benefits      []models.SeasonPassBenefit `json:"benefits"`
	MaxEvents     *int                       `json:"max_events"`
	PaymentMethod string                     `json:"payment_method" validate:"required,payment_method"`
	AutoRenew     bool                       `json:"auto_renew"`
}

// SeasonPassView adds the derived validity fields the pass listing exposes.
type SeasonPassView struct {
	*models.SeasonPass
	IsCurrentlyValid bool `json:"is_currently_valid"`
	RemainingEvents  *int `json:"remaining_events,omitempty"`
}

type seasonPassService struct {
	passRepo interfaces.SeasonPassRepository
	logger   *logger.Logger
}

func NewSeasonPassService(passRepo interfaces.SeasonPassRepository, log *logger.Logger) SeasonPassService {
	return &seasonPassService{passRepo: passRepo, logger: log}
}

func (s *seasonPassService) ListMine(ctx context.Context, userID primitive.ObjectID) ([]*SeasonPassView, error) {
	passes, err := s.passRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*SeasonPassView, 0, len(passes))
	for _, pass := range passes {
		// Surface expiry without waiting for a write to flip the status.
		if pass.Status == models.SeasonPassStatusActive && now.After(pass.ValidityPeriod.End) {
			pass.Status = models.SeasonPassStatusExpired
			if err := s.passRepo.UpdateStatus(ctx, pass.ID, models.SeasonPassStatusExpired); err != nil {
				s.logger.WithError(err).Warn("Failed to persist season pass expiry")
			}
		}
		views = append(views, &SeasonPassView{
			SeasonPass:       pass,
			IsCurrentlyValid: pass.IsValid(now),
			RemainingEvents:  pass.RemainingEvents(),
		})
	}

	return views, nil
}

func (s *seasonPassService) Get(ctx context.Context, user *models.User, id primitive.ObjectID) (*SeasonPassView, error) {
	pass, err := s.passRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrSeasonPassNotFound
		}
		return nil, err
	}

	if pass.User != user.ID && !user.IsAdmin() {
		return nil, ErrNotOwner
	}

	now := time.Now()
	return &SeasonPassView{
		SeasonPass:       pass,
		IsCurrentlyValid: pass.IsValid(now),
		RemainingEvents:  pass.RemainingEvents(),
	}, nil
}

func (s *seasonPassService) Create(ctx context.Context, user *models.User, request *CreateSeasonPassRequest) (*models.SeasonPass, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	sport := models.Sport(request.Sport)
	if sport != models.SportAll && !models.IsValidSport(request.Sport) {
		return nil, ErrInvalidCategory
	}
	if !request.ValidityEnd.After(request.ValidityStart) {
		return nil, ErrSeasonPassValidity
	}

	passType := request.Type
	if passType == "" {
		passType = models.SeasonPassTypeSingleSport
	}

	pass := &models.SeasonPass{
		User:        user.ID,
		Name:        request.Name,
		Description: request.Description,
		Sport:       sport,
		Type:        passType,
		Price:       request.Price,
		ValidityPeriod: models.ValidityPeriod{
			Start: request.ValidityStart,
			End:   request.ValidityEnd,
		},
		Benefits:  request.Benefits,
		MaxEvents: request.MaxEvents,
		Status:    models.SeasonPassStatusActive,
		PaymentInfo: models.PaymentInfo{
			Method:        models.PaymentMethod(request.PaymentMethod),
			TransactionID: utils.GenerateTransactionID(),
			Amount:        request.Price,
		},
		AutoRenew: request.AutoRenew,
	}

	if err := s.passRepo.Create(ctx, pass); err != nil {
		s.logger.WithError(err).Error("Failed to create season pass")
		return nil, err
	}

	s.logger.WithUserID(user.ID).WithField("pass_id", pass.ID.Hex()).Info("Season pass purchased")
	return pass, nil
}
