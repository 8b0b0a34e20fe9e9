package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	_ "billbook/docs"
	"billbook/internal/config"
	"billbook/internal/email/noop"
	"billbook/internal/email/ses"
	"billbook/internal/handler"
	"billbook/internal/logger"
	"billbook/internal/port"
	"billbook/internal/repository/postgres"
	"billbook/internal/router"
	"billbook/internal/service"
	s3storage "billbook/internal/storage/s3"
	"billbook/internal/validator"
)

// @title BillBook API
// @version 1.0
// @description GST billing: parties, items, invoices, notes, returns, payments and reports.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl := logger.New(cfg.Log)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validator.RegisterBindings(); err != nil {
		return fmt.Errorf("failed to register request validators: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	companyRepo := postgres.NewCompanyRepo(db)
	userRepo := postgres.NewUserRepo(db)
	partyRepo := postgres.NewPartyRepo(db)
	itemRepo := postgres.NewItemRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	reportRepo := postgres.NewReportRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(ctx, cfg.Email)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender(zl)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, companyRepo, cfg.JWT)
	registrationSvc := service.NewRegistrationService(companyRepo, userRepo, authSvc)
	userSvc := service.NewUserService(userRepo)
	partySvc := service.NewPartyService(partyRepo)
	itemSvc := service.NewItemService(itemRepo)
	docSvc := service.NewDocumentService(docRepo, partyRepo, itemRepo, companyRepo, sender, validator.DefaultRegistry(), cfg.Billing)
	paymentSvc := service.NewPaymentService(paymentRepo, partyRepo)
	reportSvc := service.NewReportService(reportRepo, partyRepo, docRepo, paymentRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, docRepo, s3Client, &cfg.S3)

	// Setup router
	r := router.Setup(zl, cfg.CORS.AllowedOrigins, authSvc, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, registrationSvc),
		User:       handler.NewUserHandler(userSvc),
		Party:      handler.NewPartyHandler(partySvc, reportSvc),
		Item:       handler.NewItemHandler(itemSvc),
		Document:   handler.NewDocumentHandler(docSvc),
		Payment:    handler.NewPaymentHandler(paymentSvc),
		Report:     handler.NewReportHandler(reportSvc),
		Attachment: handler.NewAttachmentHandler(attachmentSvc),
		Health:     handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Port).Str("env", cfg.Server.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
