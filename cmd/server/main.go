package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/adedejiayobami0-ux/scene-backend/config"
	_ "github.com/adedejiayobami0-ux/scene-backend/docs"
	"github.com/adedejiayobami0-ux/scene-backend/internal/adapters/auth"
	"github.com/adedejiayobami0-ux/scene-backend/internal/adapters/contentgen"
	"github.com/adedejiayobami0-ux/scene-backend/internal/adapters/email"
	"github.com/adedejiayobami0-ux/scene-backend/internal/adapters/payments"
	"github.com/adedejiayobami0-ux/scene-backend/internal/adapters/storage"
	delivery "github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http"
	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/controllers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/middleware"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
	"github.com/adedejiayobami0-ux/scene-backend/internal/repository/postgres"
	"github.com/adedejiayobami0-ux/scene-backend/internal/services"
)

// @title scene-backend API
// @version 1.0
// @description Event creation, RSVP, payment tracking, messaging, and content generation.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	promoRepo := postgres.NewPromoContentRepository(db)
	recapRepo := postgres.NewRecapPhotoRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	var gateway domain.PaymentGateway
	if cfg.PaymentAPIKey != "" {
		gateway = payments.NewHTTPGateway(nil, cfg.PaymentAPIKey, cfg.PaymentBaseURL)
	} else {
		logger.Warn("no payment gateway configured; payment intents disabled")
		gateway = payments.NewDisabledGateway()
	}

	var generator domain.ContentGenerator
	if cfg.ContentGenAPIKey != "" {
		generator = contentgen.NewOpenAIClient(nil, cfg.ContentGenAPIKey, cfg.ContentGenBaseURL, cfg.ContentGenModel)
	} else {
		logger.Info("no text-generation api configured; using deterministic fallback")
		generator = contentgen.NewFallbackGenerator()
	}

	var photoStore domain.PhotoStore
	if cfg.PhotoBucket != "" {
		photoStore, err = storage.NewS3PhotoStore(context.Background(), cfg.PhotoBucket, cfg.PhotoRegion, cfg.PhotoEndpoint, cfg.PhotoPublicBase)
		if err != nil {
			logger.Error("failed to create photo store", "err", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no photo bucket configured; recap uploads disabled")
		photoStore = storage.NewDisabledPhotoStore()
	}

	// Services
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())
	userSvc := services.NewUserService(userRepo, hasher, tokenIssuer, cfg.TokenExpiry, emailSvc, logger)
	eventSvc := services.NewEventService(eventRepo)
	admissionSvc := services.NewAdmissionService(eventRepo, attendeeRepo)
	paymentSvc := services.NewPaymentService(eventRepo, attendeeRepo, gateway, cfg.Currency)
	analyticsSvc := services.NewAnalyticsService(eventRepo, attendeeRepo)
	messageSvc := services.NewMessageService(eventRepo, attendeeRepo, messageRepo, emailSvc, logger)
	contentSvc := services.NewContentService(eventRepo, promoRepo, generator)
	recapSvc := services.NewRecapService(eventRepo, recapRepo, photoStore)

	// HTTP
	mux := delivery.NewRouter(delivery.Controllers{
		Auth:    controllers.NewAuthController(logger, userSvc),
		Event:   controllers.NewEventController(logger, eventSvc, admissionSvc, analyticsSvc),
		RSVP:    controllers.NewRSVPController(logger, admissionSvc),
		Payment: controllers.NewPaymentController(logger, paymentSvc),
		Message: controllers.NewMessageController(logger, messageSvc),
		Content: controllers.NewContentController(logger, contentSvc),
		Recap:   controllers.NewRecapController(logger, recapSvc),
	}, tokenVerifier, logger)

	allowedOrigins := []string{"http://localhost:5173"}
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		allowedOrigins = allowedOrigins[:0]
		for _, origin := range strings.Split(s, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
