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
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	GetUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, request *UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, request *ChangePasswordRequest) error
}

type RegisterRequest struct {
	Name        string                  `json:"name" validate:"required,min=2,max=50"`
	Email       string                  `json:"email" validate:"required,email"`
	Password    string                  `json:"password" validate:"required,min=6"`
	Phone       string                  `json:"phone"`
	DateOfBirth *time.Time              `json:"date_of_birth"`
	Preferences *models.UserPreferences `json:"preferences"`
	Role        string                  `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name        *string                 `json:"name"`
	Phone       *string                 `json:"phone"`
	DateOfBirth *time.Time              `json:"date_of_birth"`
	Preferences *models.UserPreferences `json:"preferences"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type AuthResponse struct {
	Token string              `json:"token"`
	User  *models.UserSummary `json:"user"`
}

type authService struct {
	userRepo     interfaces.UserRepository
	emailService EmailService
	jwtSecret    string
	tokenTTL     time.Duration
	logger       *logger.Logger
}

func NewAuthService(
	userRepo interfaces.UserRepository,
	emailService EmailService,
	jwtSecret string,
	tokenTTL time.Duration,
	log *logger.Logger,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		emailService: emailService,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		logger:       log,
	}
}

func (s *authService) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	// Duplicate email is rejected before anything is written.
	if existing, _ := s.userRepo.GetByEmail(ctx, request.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.UserRoleUser
	if request.Role == string(models.UserRoleAdmin) {
		role = models.UserRoleAdmin
	}

	user := &models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    string(hash),
		Phone:       request.Phone,
		DateOfBirth: request.DateOfBirth,
		Role:        role,
		LoyaltyTier: models.LoyaltyTierBronze,
		IsActive:    true,
	}
	if request.Preferences != nil {
		user.Preferences = *request.Preferences
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, mongodb.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.logger.WithError(err).Error("Failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Registration must not fail on mail problems.
	if err := s.emailService.SendWelcome(ctx, user); err != nil {
		s.logger.WithError(err).WithUserID(user.ID).Warn("Welcome email failed")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: user.Summary()}, nil
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.WithError(err).WithUserID(user.ID).Warn("Failed to record last login")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: user.Summary()}, nil
}

func (s *authService) GetUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, request *UpdateProfileRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Phone != nil {
		updates["phone"] = *request.Phone
	}
	if request.DateOfBirth != nil {
		updates["date_of_birth"] = *request.DateOfBirth
	}
	if request.Preferences != nil {
		updates["preferences"] = *request.Preferences
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, userID, updates); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return s.GetUser(ctx, userID)
}

func (s *authService) ChangePassword(ctx context.Context, userID primitive.ObjectID, request *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(request); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.Update(ctx, userID, map[string]interface{}{"password": string(hash)})
}
