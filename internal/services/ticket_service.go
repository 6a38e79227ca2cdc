package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/repositories/mongodb"
	"matchday/internal/utils"
	"matchday/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketService interface {
	Purchase(ctx context.Context, user *models.User, request *PurchaseTicketRequest) (*PurchaseResult, error)
	Cancel(ctx context.Context, user *models.User, ticketID primitive.ObjectID) (*CancelResult, error)
	Validate(ctx context.Context, entryCode string) (*models.Ticket, error)
	ListMine(ctx context.Context, userID primitive.ObjectID, filter *interfaces.TicketFilter, params *utils.PaginationParams) ([]*models.Ticket, int64, error)
	Get(ctx context.Context, user *models.User, ticketID primitive.ObjectID) (*models.Ticket, error)
	QRCode(ctx context.Context, user *models.User, ticketID primitive.ObjectID) ([]byte, error)
}

type PurchaseTicketRequest struct {
	EventID       string `json:"event_id" validate:"required"`
	Category      string `json:"ticket_category" validate:"required,ticket_category"`
	Quantity      int    `json:"quantity" validate:"required,min=1,max=10"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
	SeasonPassID  string `json:"season_pass_id"`
}

type PurchaseResult struct {
	Tickets             []*models.Ticket `json:"tickets"`
	TotalPrice          float64          `json:"total_price"`
	DiscountApplied     float64          `json:"discount_applied"`
	LoyaltyPointsEarned int              `json:"loyalty_points_earned"`
	LoyaltyTier         models.LoyaltyTier `json:"loyalty_tier"`
}

type CancelResult struct {
	Ticket              *models.Ticket `json:"ticket"`
	RefundAmount        float64        `json:"refund_amount"`
	LoyaltyPointsRemoved int           `json:"loyalty_points_removed"`
}

type ticketService struct {
	ticketRepo interfaces.TicketRepository
	eventRepo  interfaces.EventRepository
	userRepo   interfaces.UserRepository
	passRepo   interfaces.SeasonPassRepository
	emails     EmailService
	logger     *logger.Logger
}

func NewTicketService(
	ticketRepo interfaces.TicketRepository,
	eventRepo interfaces.EventRepository,
	userRepo interfaces.UserRepository,
	passRepo interfaces.SeasonPassRepository,
	emails EmailService,
	log *logger.Logger,
) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		passRepo:   passRepo,
		emails:     emails,
		logger:     log,
	}
}

// computeTicketPrice applies the season pass and loyalty tier discounts to a
// category's base price. Both percentages come off the original price, so a
// gold member with an eligible pass pays base minus 30 percent.
func computeTicketPrice(base float64, passDiscount bool, tier models.LoyaltyTier) (final, discount float64) {
	if passDiscount {
		discount += base * utils.SeasonPassDiscountRate
	}
	switch tier {
	case models.LoyaltyTierGold:
		discount += base * 0.10
	case models.LoyaltyTierPlatinum:
		discount += base * 0.15
	}
	final = base - discount
	if final < 0 {
		final = 0
	}
	return final, discount
}

func (s *ticketService) Purchase(ctx context.Context, user *models.User, request *PurchaseTicketRequest) (*PurchaseResult, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	if request.Quantity < 1 || request.Quantity > utils.MaxTicketsPerPurchase {
		return nil, ErrInvalidQuantity
	}

	eventID, err := primitive.ObjectIDFromHex(request.EventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	now := time.Now()
	if !event.IsUpcoming(now) {
		return nil, ErrPastEvent
	}

	categoryName := models.TicketCategory(request.Category)
	category := event.Category(categoryName)
	if category == nil {
		return nil, ErrInvalidCategory
	}

	var pass *models.SeasonPass
	passDiscount := false
	if request.SeasonPassID != "" {
		passID, err := primitive.ObjectIDFromHex(request.SeasonPassID)
		if err != nil {
			return nil, ErrSeasonPassNotFound
		}
		pass, err = s.passRepo.GetByID(ctx, passID)
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				return nil, ErrSeasonPassNotFound
			}
			return nil, err
		}
		if pass.User != user.ID {
			return nil, ErrNotOwner
		}
		passDiscount = pass.CanUseForEvent(event, now) && pass.HasBenefit(models.BenefitDiscountedTickets)
	}

	unitPrice, unitDiscount := computeTicketPrice(category.Price, passDiscount, user.LoyaltyTier)

	// Points accrue once per purchase, not per ticket.
	earned := int(math.Floor(unitPrice * utils.LoyaltyEarnRate))

	// The conditional decrement is the only seat accounting step, so two
	// concurrent purchases can never oversell a category.
	if err := s.eventRepo.ReserveSeats(ctx, eventID, categoryName, request.Quantity); err != nil {
		if errors.Is(err, mongodb.ErrInsufficientSeats) {
			return nil, ErrInsufficientSeats
		}
		return nil, err
	}

	result := &PurchaseResult{}
	for i := 0; i < request.Quantity; i++ {
		ticket := &models.Ticket{
			Event: eventID,
			User:  user.ID,
			SeatInfo: models.SeatInfo{
				Category:   categoryName,
				SeatNumber: fmt.Sprintf("AUTO-%d", now.UnixMilli()+int64(i)),
			},
			Price:  unitPrice,
			Status: models.TicketStatusActive,
			PaymentInfo: models.PaymentInfo{
				Method:        models.PaymentMethod(request.PaymentMethod),
				TransactionID: utils.GenerateTransactionID(),
				Amount:        unitPrice,
			},
			DiscountApplied:     unitDiscount,
			LoyaltyPointsEarned: earned,
		}
		if pass != nil && passDiscount {
			ticket.SeasonPassID = &pass.ID
		}

		if err := s.ticketRepo.Create(ctx, ticket); err != nil {
			// Hand back the seats we grabbed but could not issue.
			released := request.Quantity - i
			if relErr := s.eventRepo.ReleaseSeats(ctx, eventID, categoryName, released); relErr != nil {
				s.logger.WithError(relErr).WithEventID(eventID).Error("Failed to release seats after ticket creation failure")
			}
			return nil, err
		}

		if pass != nil && passDiscount {
			if err := s.passRepo.IncrementUsage(ctx, pass.ID); err != nil {
				s.logger.WithError(err).Error("Failed to record season pass usage")
			}
		}

		result.Tickets = append(result.Tickets, ticket)
		result.TotalPrice += ticket.Price
		result.DiscountApplied += ticket.DiscountApplied
	}

	result.LoyaltyPointsEarned = earned
	user.LoyaltyPoints += earned
	user.UpdateLoyaltyTier()
	if err := s.userRepo.SetLoyalty(ctx, user.ID, user.LoyaltyPoints, user.LoyaltyTier); err != nil {
		s.logger.WithError(err).WithUserID(user.ID).Error("Failed to update loyalty balance")
	}
	result.LoyaltyTier = user.LoyaltyTier

	for _, ticket := range result.Tickets {
		qr, err := utils.TicketQRCode(ticket.EntryCode)
		if err != nil {
			s.logger.WithError(err).WithTicketID(ticket.ID).Warn("Failed to render ticket QR code")
			qr = nil
		}
		if err := s.emails.SendTicketConfirmation(ctx, user, ticket, event, qr); err != nil {
			s.logger.WithError(err).WithTicketID(ticket.ID).Warn("Failed to send ticket confirmation email")
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID.Hex(),
		"event_id": eventID.Hex(),
		"quantity": request.Quantity,
		"total":    result.TotalPrice,
	}).Info("Tickets purchased")

	return result, nil
}

func (s *ticketService) Cancel(ctx context.Context, user *models.User, ticketID primitive.ObjectID) (*CancelResult, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if !ticket.IsOwnedBy(user.ID) {
		return nil, ErrNotOwner
	}
	if ticket.Status != models.TicketStatusActive {
		return nil, ErrTicketNotActive
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.Event)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if time.Until(event.Date) < utils.CancellationCutoff {
		return nil, ErrCancellationWindow
	}

	if err := s.ticketRepo.UpdateStatus(ctx, ticketID, models.TicketStatusCancelled); err != nil {
		return nil, err
	}
	ticket.Status = models.TicketStatusCancelled

	if err := s.eventRepo.ReleaseSeats(ctx, ticket.Event, ticket.SeatInfo.Category, 1); err != nil {
		s.logger.WithError(err).WithEventID(ticket.Event).Error("Failed to release seat on cancellation")
	}

	// Claw back the points the ticket earned, never below zero.
	removed := int(math.Floor(ticket.Price * utils.LoyaltyEarnRate))
	user.LoyaltyPoints -= removed
	if user.LoyaltyPoints < 0 {
		user.LoyaltyPoints = 0
	}
	user.UpdateLoyaltyTier()
	if err := s.userRepo.SetLoyalty(ctx, user.ID, user.LoyaltyPoints, user.LoyaltyTier); err != nil {
		s.logger.WithError(err).WithUserID(user.ID).Error("Failed to update loyalty balance after cancellation")
	}
	if err := s.emails.SendCancellationNotice(ctx, user, ticket, event); err != nil {
		s.logger.WithError(err).WithTicketID(ticket.ID).Warn("Failed to send cancellation email")
	}

	s.logger.WithFields(map[string]interface{}{
		"ticket_id": ticketID.Hex(),
		"user_id":   user.ID.Hex(),
		"refund":    ticket.Price,
	}).Info("Ticket cancelled")

	return &CancelResult{
		Ticket:               ticket,
		RefundAmount:         ticket.Price,
		LoyaltyPointsRemoved: removed,
	}, nil
}

func (s *ticketService) Validate(ctx context.Context, entryCode string) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByEntryCode(ctx, entryCode)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if ticket.Status != models.TicketStatusActive {
		return nil, ErrTicketNotActive
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.Event)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	// Entry only opens on the event's calendar day.
	now := time.Now()
	ey, em, ed := event.Date.Date()
	ny, nm, nd := now.Date()
	if ey != ny || em != nm || ed != nd {
		return nil, ErrTicketNotForToday
	}

	if err := s.ticketRepo.UpdateStatus(ctx, ticket.ID, models.TicketStatusUsed); err != nil {
		return nil, err
	}
	ticket.Status = models.TicketStatusUsed
	ticket.EventDetails = event

	s.logger.WithTicketID(ticket.ID).Info("Ticket validated at gate")
	return ticket, nil
}

func (s *ticketService) ListMine(ctx context.Context, userID primitive.ObjectID, filter *interfaces.TicketFilter, params *utils.PaginationParams) ([]*models.Ticket, int64, error) {
	tickets, total, err := s.ticketRepo.ListByUser(ctx, userID, filter, params)
	if err != nil {
		return nil, 0, err
	}

	for _, ticket := range tickets {
		if event, err := s.eventRepo.GetByID(ctx, ticket.Event); err == nil {
			ticket.EventDetails = event
		}
	}

	return tickets, total, nil
}

func (s *ticketService) Get(ctx context.Context, user *models.User, ticketID primitive.ObjectID) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if !ticket.IsOwnedBy(user.ID) && !user.IsAdmin() {
		return nil, ErrNotOwner
	}

	if event, err := s.eventRepo.GetByID(ctx, ticket.Event); err == nil {
		ticket.EventDetails = event
	}

	return ticket, nil
}

func (s *ticketService) QRCode(ctx context.Context, user *models.User, ticketID primitive.ObjectID) ([]byte, error) {
	ticket, err := s.Get(ctx, user, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status != models.TicketStatusActive {
		return nil, ErrTicketNotActive
	}
	return utils.TicketQRCode(ticket.EntryCode)
}
