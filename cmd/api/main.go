package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/accordflow/engine/internal/api"
	"github.com/accordflow/engine/internal/api/handlers"
	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/repository"
	"github.com/accordflow/engine/internal/resource"
	"github.com/accordflow/engine/internal/services"
	"github.com/accordflow/engine/pkg/config"
	"github.com/accordflow/engine/pkg/database"
	"github.com/accordflow/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting contract lifecycle API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("close database failed", zap.Error(err))
		}
	}()
	log.Info("database connected")

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}

	// Audit trail goes through the queue; the API only enqueues.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer asynqClient.Close()
	recorder := services.NewAuditService(asynqClient)

	userRepo := repository.NewUserRepository(db)
	contractRepo := repository.NewCrudRepository[models.Contract](db, resource.Contracts.Singular)
	documentRepo := repository.NewCrudRepository[models.Document](db, resource.Documents.Singular)

	deps := api.Dependencies{
		HMACSecret: jwtSecret,

		Auth:      handlers.NewAuthHandler(services.NewAuthService(userRepo, jwtSecret)),
		Dashboard: handlers.NewDashboardHandler(services.NewStatsService(db)),
		Documents: handlers.NewDocumentsHandler(documentRepo,
			services.NewDocumentService(documentRepo, cfg.UploadBasePath)),

		Contracts: handlers.NewContractsHandler(contractRepo, recorder),
		Amendments: handlers.NewResource(resource.Amendments,
			repository.NewCrudRepository[models.Amendment](db, resource.Amendments.Singular)),
		Approvals: handlers.NewResource(resource.Approvals,
			repository.NewCrudRepository[models.Approval](db, resource.Approvals.Singular)),
		Audits: handlers.NewResource(resource.Audits,
			repository.NewCrudRepository[models.AuditEngagement](db, resource.Audits.Singular)),
		ComplianceChecks: handlers.NewResource(resource.ComplianceChecks,
			repository.NewCrudRepository[models.ComplianceCheck](db, resource.ComplianceChecks.Singular)),
		Executions: handlers.NewResource(resource.Executions,
			repository.NewCrudRepository[models.Execution](db, resource.Executions.Singular)),
		Negotiations: handlers.NewResource(resource.Negotiations,
			repository.NewCrudRepository[models.Negotiation](db, resource.Negotiations.Singular)),
		Obligations: handlers.NewResource(resource.Obligations,
			repository.NewCrudRepository[models.Obligation](db, resource.Obligations.Singular)),
		Renewals: handlers.NewResource(resource.Renewals,
			repository.NewCrudRepository[models.Renewal](db, resource.Renewals.Singular)),
		Terminations: handlers.NewResource(resource.Terminations,
			repository.NewCrudRepository[models.Termination](db, resource.Terminations.Singular)),
		StorageRecords: handlers.NewResource(resource.StorageRecords,
			repository.NewCrudRepository[models.StorageRecord](db, resource.StorageRecords.Singular)),
		Drafts: handlers.NewResource(resource.Drafts,
			repository.NewCrudRepository[models.Draft](db, resource.Drafts.Singular)),
		MonitoringEntries: handlers.NewResource(resource.MonitoringEntries,
			repository.NewCrudRepository[models.MonitoringEntry](db, resource.MonitoringEntries.Singular)),
		AuditLogs: handlers.NewResource(resource.AuditLogs,
			repository.NewCrudRepository[models.AuditLog](db, resource.AuditLogs.Singular)),
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
