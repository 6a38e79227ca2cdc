package services

import (
	"context"
	"testing"
	"time"

	"matchday/internal/models"
	"matchday/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeEmailService) {
	users := newFakeUserRepo()
	emails := &fakeEmailService{}
	service := NewAuthService(users, emails, testSecret, time.Hour, testLogger())
	return service, users, emails
}

func TestRegister(t *testing.T) {
	service, _, emails := newAuthFixture()

	response, err := service.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "alice@example.com", response.User.Email)
	assert.Equal(t, models.UserRoleUser, response.User.Role)
	assert.Equal(t, models.LoyaltyTierBronze, response.User.LoyaltyTier)
	assert.Equal(t, 1, emails.welcomes)

	claims, err := utils.ValidateToken(response.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, response.User.ID.Hex(), claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), &RegisterRequest{
		Name:     "Also Alice",
		Email:    "alice@example.com",
		Password: "different1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterAdminRole(t *testing.T) {
	service, _, _ := newAuthFixture()

	response, err := service.Register(context.Background(), &RegisterRequest{
		Name:     "Ops",
		Email:    "ops@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, response.User.Role)
}

func TestLogin(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	response, err := service.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	service, users, _ := newAuthFixture()

	response, err := service.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	users.mu.Lock()
	users.users[response.User.ID].IsActive = false
	users.mu.Unlock()

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestChangePassword(t *testing.T) {
	service, _, _ := newAuthFixture()

	response, err := service.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	err = service.ChangePassword(context.Background(), response.User.ID, &ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newsecret1",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = service.ChangePassword(context.Background(), response.User.ID, &ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret1",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "newsecret1",
	})
	assert.NoError(t, err)
}
