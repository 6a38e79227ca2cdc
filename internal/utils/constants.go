package utils

import "time"

// Application Constants
const (
	AppName    = "Matchday"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength = 6
	PasswordMaxLength = 128

	// Ticketing Constants
	MaxTicketsPerPurchase  = 10
	CancellationCutoff     = 24 * time.Hour
	SeasonPassDiscountRate = 0.20
	LoyaltyEarnRate        = 0.10

	// File Upload
	MaxImageSize      = 5 * 1024 * 1024 // 5MB
	MaxFilesPerUpload = 10
	TicketCodePrefix  = "TICKET"
	QRCodeImageSize   = 256
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrUserNotFound       = "user not found"
	ErrUserExists         = "user already exists with this email"
	ErrInvalidToken       = "invalid token"
	ErrTokenExpired       = "token expired"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not found"
	ErrValidationFailed   = "validation failed"
	ErrFileUploadFailed   = "file upload failed"
)

// Cache Keys
const (
	CacheUserPrefix       = "user:"
	CacheUserEmailPrefix  = "user_email:"
	CacheEventPrefix      = "event:"
	CacheVenuePrefix      = "venue:"
	CacheSeasonPassPrefix = "season_pass:"
)

// File Types
var AllowedImageTypes = []string{"jpg", "jpeg", "png", "gif", "webp"}

// Upload folders by kind
var UploadKinds = []string{"venues", "events", "seatmaps", "general"}
