package main

import (
	"fmt"
	"log"

	"matchday/internal/config"
	"matchday/internal/handlers"
	"matchday/internal/middleware"
	"matchday/internal/monitoring"
	"matchday/internal/repositories/mongodb"
	"matchday/internal/services"
	"matchday/internal/utils"
	"matchday/pkg/cache"
	"matchday/pkg/database"
	"matchday/pkg/logger"
	"matchday/pkg/mailer"
	"matchday/pkg/storage"
	"matchday/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := database.EnsureIndexes(db.Database); err != nil {
		appLogger.Fatalf("Failed to ensure indexes: %v", err)
	}

	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Warnf("Redis unavailable, running without cache: %v", err)
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	var repoCache mongodb.CacheService
	if redisCache != nil {
		repoCache = redisCache
	}

	storageProvider, localStorage, err := buildStorage(cfg)
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	smtpMailer := mailer.NewMailer(&mailer.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromEmail: cfg.SMTP.FromEmail,
		FromName:  cfg.SMTP.FromName,
	})

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database, repoCache)
	eventRepo := mongodb.NewEventRepository(db.Database, repoCache)
	ticketRepo := mongodb.NewTicketRepository(db.Database)
	venueRepo := mongodb.NewVenueRepository(db.Database)
	passRepo := mongodb.NewSeasonPassRepository(db.Database)

	// Services
	emailService := services.NewEmailService(smtpMailer, cfg.App.Name, cfg.App.FrontendURL, cfg.SMTP.Enabled)
	authService := services.NewAuthService(userRepo, emailService, cfg.Security.JWTSecret, cfg.Security.JWTTokenTTL, appLogger)
	eventService := services.NewEventService(eventRepo, venueRepo, userRepo, appLogger)
	ticketService := services.NewTicketService(ticketRepo, eventRepo, userRepo, passRepo, emailService, appLogger)
	venueService := services.NewVenueService(venueRepo, appLogger)
	passService := services.NewSeasonPassService(passRepo, appLogger)

	// Handlers
	production := cfg.IsProduction()
	authHandler := handlers.NewAuthHandler(authService, production)
	eventHandler := handlers.NewEventHandler(eventService, production)
	ticketHandler := handlers.NewTicketHandler(ticketService, production)
	venueHandler := handlers.NewVenueHandler(venueService, production)
	passHandler := handlers.NewSeasonPassHandler(passService, production)
	uploadHandler := handlers.NewUploadHandler(storageProvider, production)
	healthHandler := handlers.NewHealthHandler(db, redisCache)

	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(monitoring.Middleware())
	router.MaxMultipartMemory = utils.MaxImageSize

	authRequired := middleware.AuthRequired(cfg.Security.JWTSecret, userRepo)

	api := router.Group("/api")
	{
		routes.SetupAuthRoutes(api, authHandler, authRequired)
		routes.SetupEventRoutes(api, eventHandler, authRequired)
		routes.SetupTicketRoutes(api, ticketHandler, authRequired)
		routes.SetupVenueRoutes(api, venueHandler, authRequired)
		routes.SetupSeasonPassRoutes(api, passHandler, authRequired)
		routes.SetupUploadRoutes(api, uploadHandler, authRequired)
	}

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", monitoring.Handler())

	if localStorage != nil {
		router.Static("/uploads", localStorage.BasePath())
	}

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("%s listening on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}

func buildStorage(cfg *config.Config) (storage.Provider, *storage.LocalStorage, error) {
	switch cfg.Storage.Provider {
	case "s3":
		s3, err := storage.NewS3Storage(cfg.Storage.S3Region, cfg.Storage.S3Bucket, cfg.Storage.CDNDomain)
		if err != nil {
			return nil, nil, err
		}
		return s3, nil, nil
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.App.BaseURL+"/uploads")
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	}
}
