package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meowza1/guardian-test/internal/config"
	"github.com/meowza1/guardian-test/internal/infra/telegram"
	"github.com/meowza1/guardian-test/internal/repo/dualrepo"
	"github.com/meowza1/guardian-test/internal/repo/mongodb"
	"github.com/meowza1/guardian-test/internal/repo/postgres"
	"github.com/meowza1/guardian-test/internal/services/access"
	"github.com/meowza1/guardian-test/internal/services/cases"
	"github.com/meowza1/guardian-test/internal/services/lookup"
	"github.com/meowza1/guardian-test/internal/services/mirror"
	"github.com/meowza1/guardian-test/internal/services/moderation"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger
	db     *sql.DB
	mongo  *mongo.Client
	tg     *telegram.Client

	accessService     *access.Service
	casesService      *cases.Service
	moderationService *moderation.Service
	mirrorService     *mirror.Service
	lookupService     *lookup.Service

	msgCacheMu    sync.Mutex
	msgCache      map[messageKey]string
	msgCacheOrder []messageKey
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Warn("postgres unavailable, continuing without database", "error", err)
		db = nil
	}

	mongoClient, err := mongodb.Connect(context.Background(), cfg.MongoURL)
	if err != nil {
		logger.Warn("mongo unavailable, continuing without document store", "error", err)
		mongoClient = nil
	}

	app := &App{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		mongo:    mongoClient,
		msgCache: make(map[messageKey]string),
	}

	app.tg, err = telegram.NewClient(cfg.BotToken, cfg.PollTimeoutSeconds, logger, app.routeUpdate)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	ledgerRepo := dualrepo.NewCasesRepo(
		mongodb.NewCasesRepo(mongoClient, cfg.MongoDatabase),
		postgres.NewCasesRepo(db),
		cfg.LedgerMode,
	)

	app.accessService = access.NewService(cfg.OwnerTGID, app.tg)
	app.casesService = cases.NewService(ledgerRepo)
	app.moderationService = moderation.NewService(app.tg, app.casesService, logger)
	app.mirrorService = mirror.NewService(app.tg, cfg.AuditChannel)
	app.lookupService = lookup.NewService(app.accessService, app.casesService)

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()
	return a.tg.Start(ctx)
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close postgres", "error", err)
		}
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(context.Background()); err != nil {
			a.logger.Error("disconnect mongo", "error", err)
		}
	}
}
