package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/koolabhinay07/Lollyzz/internal/availability"
	"github.com/koolabhinay07/Lollyzz/internal/catalog"
	"github.com/koolabhinay07/Lollyzz/internal/env"
	"github.com/koolabhinay07/Lollyzz/internal/parser"
	"github.com/koolabhinay07/Lollyzz/internal/qr"
	"github.com/koolabhinay07/Lollyzz/internal/queue"
	"github.com/koolabhinay07/Lollyzz/internal/ratelimiter"
	"github.com/koolabhinay07/Lollyzz/internal/repo"
	"github.com/koolabhinay07/Lollyzz/internal/service"
	"github.com/koolabhinay07/Lollyzz/internal/session"
	"github.com/koolabhinay07/Lollyzz/internal/store"
	filestore "github.com/koolabhinay07/Lollyzz/internal/store/file"
	mongostore "github.com/koolabhinay07/Lollyzz/internal/store/mongo"
	"github.com/koolabhinay07/Lollyzz/internal/worker"
	"go.uber.org/zap"
)

const version = "1.0.0"

const (
	brandName = "Lollyzz"
	brandSlug = "lollyzz"
)

//	@title			Lollyzz Digital Menu
//	@description	API for the Lollyzz digital menu

// @BasePath	/api/v1
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:          env.GetString("ADDR", ":8080"),
		apiURL:        env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:           env.GetString("ENV", "development"),
		menuURL:       env.GetString("MENU_URL", "https://koolabhinay07.github.io/Lollyzz/"),
		dataDir:       env.GetString("DATA_DIR", "./data"),
		storageDriver: env.GetString("STORAGE_DRIVER", "file"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 5),
			TimeFrame:            time.Second * 30,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
			Database: env.GetString("MONGO_DATABASE", "lollyzz"),
			Timeout:  time.Second * 10,
		},
		rabbitMQ: rabbitMQConfig{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:    time.Second * 2,
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
		googleCreds:   env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
		spreadsheetID: env.GetString("CATALOG_SPREADSHEET_ID", ""),
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// storage: file driver is the default (local key-value documents under
	// DATA_DIR), mongo is the hosted alternative
	var storage store.Storage
	var auditRepo repo.AvailabilityAuditRepository

	switch cfg.storageDriver {
	case "mongo":
		mongoStorage, err := mongostore.New(mongostore.Config{
			URI:      cfg.mongo.URI,
			Database: cfg.mongo.Database,
			Timeout:  cfg.mongo.Timeout,
		})
		if err != nil {
			logger.Fatalw("failed to connect to MongoDB", "error", err)
		}
		logger.Info("connected to MongoDB")

		if err := mongoStorage.CreateIndexes(ctx); err != nil {
			logger.Warnw("failed to create indexes", "error", err)
		}

		storage = mongoStorage
		auditRepo = mongostore.NewAvailabilityAuditRepository(mongoStorage.Database())
	default:
		fileStorage, err := filestore.New(filestore.Config{Dir: cfg.dataDir})
		if err != nil {
			logger.Fatalw("failed to open data directory", "error", err)
		}
		logger.Infow("using file storage", "dir", cfg.dataDir)

		storage = fileStorage
		auditRepo = filestore.NewAvailabilityAuditRepository(cfg.dataDir)
	}

	// catalog: embedded by default, spreadsheet when configured
	menuCatalog := catalog.Default()
	if cfg.googleCreds != "" && cfg.spreadsheetID != "" {
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			logger.Fatalw("failed to read Google credentials", "error", err)
		}

		googleParser, err := parser.New(parser.Config{
			CredentialsJSON: credsJSON,
		})
		if err != nil {
			logger.Fatalw("failed to create Google Sheets parser", "error", err)
		}

		loaded, err := googleParser.ParseCatalog(ctx, cfg.spreadsheetID)
		if err != nil {
			logger.Fatalw("failed to load catalog from spreadsheet", "error", err)
		}

		menuCatalog = loaded
		logger.Infow("catalog loaded from spreadsheet", "items", menuCatalog.ItemCount())
	} else {
		logger.Infow("using embedded catalog", "items", menuCatalog.ItemCount())
	}

	// rabbitmq broker: optional; without it availability events are skipped
	var broker queue.Broker
	if cfg.rabbitMQ.URL != "" {
		b, err := queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.rabbitMQ.URL,
			MaxRetries:    cfg.rabbitMQ.MaxRetries,
			RetryDelay:    cfg.rabbitMQ.RetryDelay,
			PrefetchCount: cfg.rabbitMQ.PrefetchCount,
		})
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}
		logger.Info("connected to RabbitMQ")
		broker = b
	} else {
		logger.Warn("RabbitMQ not configured, availability events disabled")
	}

	// state restored from storage; failures fall back to empty state
	availabilityStore := availability.NewStore(ctx, storage, logger)
	sessions := session.NewManager(ctx, storage, logger)

	menuService := service.NewMenuService(menuCatalog, availabilityStore, logger)
	availabilityService := service.NewAvailabilityService(
		menuCatalog,
		availabilityStore,
		auditRepo,
		broker,
		logger,
	)

	var auditWorker *worker.AvailabilityAuditWorker
	if broker != nil {
		auditWorker = worker.NewAvailabilityAuditWorker(availabilityService, broker, logger)
	}

	app := &application{
		config:              cfg,
		logger:              logger,
		rateLimiter:         rateLimiter,
		storage:             storage,
		broker:              broker,
		sessions:            sessions,
		menuService:         menuService,
		availabilityService: availabilityService,
		qrExporter:          qr.NewExporter(cfg.menuURL, brandName, brandSlug),
		auditWorker:         auditWorker,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
