package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	appealresolver "veridex/contexts/identity-verification/appeal-resolver"
	appealpostgres "veridex/contexts/identity-verification/appeal-resolver/adapters/postgres"
	verificationledger "veridex/contexts/identity-verification/verification-ledger"
	ledgerpostgres "veridex/contexts/identity-verification/verification-ledger/adapters/postgres"
	ledgerworkers "veridex/contexts/identity-verification/verification-ledger/application/workers"
	verifierregistry "veridex/contexts/identity-verification/verifier-registry"
	registrypostgres "veridex/contexts/identity-verification/verifier-registry/adapters/postgres"
	"veridex/internal/platform/config"
	"veridex/internal/platform/db"
	"veridex/internal/platform/httpserver"
	"veridex/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  ledgerworkers.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := ledgerpostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}
	if err := registrypostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}
	if err := appealpostgres.Migrate(pg.DB); err != nil {
		return nil, err
	}

	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	registryModule := verifierregistry.NewModule(verifierregistry.Dependencies{
		Verifiers:      registryRepo,
		Outcomes:       registryRepo,
		Sequencer:      registrypostgres.SystemSequencer{},
		MinStake:       cfg.MinStake,
		RejectionScore: cfg.RejectionScore,
		Logger:         logger,
	})

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	ledgerModule := verificationledger.NewModule(verificationledger.Dependencies{
		Requests:          ledgerRepo,
		Control:           ledgerRepo,
		Verifiers:         registryModule.Queries,
		Outbox:            ledgerRepo,
		Sequencer:         ledgerpostgres.SystemSequencer{},
		IDGen:             ledgerpostgres.UUIDGenerator{},
		Threshold:         cfg.VerificationThreshold,
		ApprovalScore:     cfg.ApprovalScore,
		RejectionScore:    cfg.RejectionScore,
		KycDurationBlocks: cfg.KycDurationBlocks,
		AdminID:           cfg.AdminID,
		Logger:            logger,
	})

	appealRepo := appealpostgres.NewRepository(pg.DB, logger)
	appealModule := appealresolver.NewModule(appealresolver.Dependencies{
		Appeals:           appealRepo,
		Requests:          appealRepo,
		Sequencer:         appealpostgres.SystemSequencer{},
		KycDurationBlocks: cfg.KycDurationBlocks,
		AdminID:           cfg.AdminID,
		Logger:            logger,
	})

	server := httpserver.New(registryModule, ledgerModule, appealModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: ledgerworkers.OutboxRelay{
			Outbox:    ledgerRepo,
			Publisher: kafka,
			BatchSize: 100,
			Logger:    logger,
		},
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
