package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/serenitypath/hospital-api/internal/config"
	"github.com/serenitypath/hospital-api/internal/email"
	"github.com/serenitypath/hospital-api/internal/handler"
	appointmentHandler "github.com/serenitypath/hospital-api/internal/handler/appointment"
	authHandler "github.com/serenitypath/hospital-api/internal/handler/auth"
	bookingHandler "github.com/serenitypath/hospital-api/internal/handler/booking"
	calendarHandler "github.com/serenitypath/hospital-api/internal/handler/calendar"
	catalogHandler "github.com/serenitypath/hospital-api/internal/handler/catalog"
	chatHandler "github.com/serenitypath/hospital-api/internal/handler/chat"
	contactHandler "github.com/serenitypath/hospital-api/internal/handler/contact"
	contentHandler "github.com/serenitypath/hospital-api/internal/handler/content"
	sessionHandler "github.com/serenitypath/hospital-api/internal/handler/session"
	teamHandler "github.com/serenitypath/hospital-api/internal/handler/team"
	"github.com/serenitypath/hospital-api/internal/middleware"
	"github.com/serenitypath/hospital-api/internal/repository/document"
	"github.com/serenitypath/hospital-api/internal/router"
	appointmentService "github.com/serenitypath/hospital-api/internal/service/appointment"
	authService "github.com/serenitypath/hospital-api/internal/service/auth"
	availabilityService "github.com/serenitypath/hospital-api/internal/service/availability"
	bookingService "github.com/serenitypath/hospital-api/internal/service/booking"
	calendarService "github.com/serenitypath/hospital-api/internal/service/calendar"
	catalogService "github.com/serenitypath/hospital-api/internal/service/catalog"
	chatService "github.com/serenitypath/hospital-api/internal/service/chat"
	contactService "github.com/serenitypath/hospital-api/internal/service/contact"
	contentService "github.com/serenitypath/hospital-api/internal/service/content"
	sessionService "github.com/serenitypath/hospital-api/internal/service/session"
	teamService "github.com/serenitypath/hospital-api/internal/service/team"
	"github.com/serenitypath/hospital-api/pkg/auth"
	"github.com/serenitypath/hospital-api/pkg/logger"
	"github.com/serenitypath/hospital-api/pkg/security"
	"github.com/serenitypath/hospital-api/pkg/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	if err := validator.Register(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	ctx := context.Background()

	backend, err := newBackend(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to initialize storage backend")
	}

	store, err := document.Open(ctx, backend)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open document store")
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("document store ready")

	teamRepo := document.NewTeamRepository(store)
	bookingRepo := document.NewBookingRepository(store)
	staffSessionRepo := document.NewStaffSessionRepository(store)
	onlineSessionRepo := document.NewOnlineSessionRepository(store)
	appointmentRepo := document.NewAppointmentRepository(store)
	catalogRepo := document.NewCatalogRepository(store)
	contentRepo := document.NewContentRepository(store)
	contactRepo := document.NewContactRepository(store)

	mailer := email.NewSMTPSender(cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		log.Warn().Msg("smtp not configured, confirmation emails disabled")
	}

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	chatClient := chatService.NewDisabledClient()
	if cfg.Chat.APIKey != "" {
		chatClient, err = chatService.NewGeminiClient(ctx, cfg.Chat.APIKey, cfg.Chat.Model)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize assistant client")
		}
	} else {
		log.Warn().Msg("assistant api key not configured, chat runs in fallback mode")
	}

	authSvc := authService.NewService(cfg.Admin, hasher, jwtSvc)
	teamSvc := teamService.NewService(teamRepo)
	availabilitySvc := availabilityService.NewService(teamRepo, availabilityService.AcceptAll())
	bookingSvc := bookingService.NewService(bookingRepo, teamRepo, mailer)
	calendarSvc := calendarService.NewService(staffSessionRepo, appointmentRepo, bookingRepo, teamRepo)
	sessionSvc := sessionService.NewService(staffSessionRepo, onlineSessionRepo, teamRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	catalogSvc := catalogService.NewService(catalogRepo)
	contentSvc := contentService.NewService(contentRepo)
	contactSvc := contactService.NewService(contactRepo)
	chatSvc := chatService.NewService(chatClient, contentRepo, teamRepo, catalogRepo, cfg.Chat.HistoryTTL)
	defer chatSvc.Close()

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	r := router.NewRouter(cfg, authMiddleware, router.Handlers{
		Ops:         handler.NewHandler(store.Ping),
		Auth:        authHandler.NewHandler(authSvc),
		Team:        teamHandler.NewHandler(teamSvc, availabilitySvc),
		Booking:     bookingHandler.NewHandler(bookingSvc),
		Calendar:    calendarHandler.NewHandler(calendarSvc),
		Session:     sessionHandler.NewHandler(sessionSvc),
		Appointment: appointmentHandler.NewHandler(appointmentSvc),
		Catalog:     catalogHandler.NewHandler(catalogSvc),
		Content:     contentHandler.NewHandler(contentSvc),
		Contact:     contactHandler.NewHandler(contactSvc),
		Chat:        chatHandler.NewHandler(chatSvc),
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

func newBackend(cfg config.StorageConfig) (document.Backend, error) {
	switch cfg.Driver {
	case "file", "":
		return document.NewFileBackend(cfg.Path), nil
	case "memory":
		return document.NewMemoryBackend(), nil
	case "redis":
		return document.NewRedisBackend(cfg.RedisURL, cfg.Key)
	case "postgres":
		return document.NewPostgresBackend(cfg.PostgresDSN, cfg.Key)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
