package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"marketplace-analytics/internal/aggregators"
	"marketplace-analytics/internal/batching"
	internalhttp "marketplace-analytics/internal/http"
	"marketplace-analytics/internal/shared/configs"
	"marketplace-analytics/internal/shared/filestorages"
	"marketplace-analytics/internal/shared/loggers"
	"marketplace-analytics/internal/stores"
	"marketplace-analytics/internal/streams"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	eventConsumer  *streams.EventConsumer
	drainScheduler *batching.DrainScheduler
	topicPublisher streams.TopicPublisher
	mongoClient    *mongo.Client

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "marketplace-analytics").
		Logger()

	// Initialize the aggregate stores per the configured driver
	userStore, productStore, mongoClient, err := newStores(config)
	if err != nil {
		return nil, err
	}

	// Initialize the aggregation pipeline
	engine := aggregators.NewAggregateEngine()
	analyticsService := aggregators.NewAnalyticsService(engine, userStore, productStore)

	buffer := batching.NewEventBuffer()
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	drainInterval := time.Duration(config.Batching.DrainInterval) * time.Second
	drainScheduler := batching.NewDrainScheduler(buffer, analyticsService, drainInterval, schedulerLogger)

	// Initialize the transport adapter
	reader := streams.NewEventsReader(config.Kafka.Brokers, config.Kafka.EventsTopic, config.Kafka.GroupID)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	eventConsumer := streams.NewEventConsumer(reader, config.Kafka.EventsTopic, buffer, consumerLogger)

	topicPublisher := streams.NewTopicPublisher(config.Kafka.Brokers, config.Kafka.EventsTopic, config.Kafka.LogsTopic)

	// Initialize the ops router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		eventConsumer:  eventConsumer,
		drainScheduler: drainScheduler,
		topicPublisher: topicPublisher,
		mongoClient:    mongoClient,
	}, nil
}

// newStores builds the store pair for the configured storage driver. The
// returned client is non-nil only for the mongo driver.
func newStores(config *configs.Config) (stores.UserAnalyticsStore, stores.ProductAnalyticsStore, *mongo.Client, error) {
	switch config.Storage.Driver {
	case "mongo":
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.Storage.Mongo.URI))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		database := client.Database(config.Storage.Mongo.Database)
		return stores.NewMongoUserAnalyticsStore(database), stores.NewMongoProductAnalyticsStore(database), client, nil
	case "file":
		fileStorage, err := filestorages.NewFileStorage(config.Storage.File.RootDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		return stores.NewFileUserAnalyticsStore(fileStorage), stores.NewFileProductAnalyticsStore(fileStorage), nil, nil
	}
	return nil, nil, nil, fmt.Errorf("unsupported storage driver %q", config.Storage.Driver)
}

// Start starts the pipeline and serves the ops endpoints in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting marketplace-analytics on port %d (log_level=%s, storage_driver=%s, drain_interval=%ds)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.Driver,
			app.config.Batching.DrainInterval)

	// start the background pipeline: scheduler first so a drain target
	// exists before the consumer enqueues anything
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.drainScheduler.Start(app.backgroundCtx)
	app.eventConsumer.Start(app.backgroundCtx)

	if err := app.topicPublisher.PublishLog(app.backgroundCtx, streams.LogRecord{
		Type:    "info",
		Message: "analytics consumer started",
		Source:  "marketplace-analytics",
	}); err != nil {
		// The logs topic is best-effort; startup proceeds without it.
		app.appLogger.Warn().Err(err).Msg("failed to publish startup log record")
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application: intake stops first, then
// the final drain flushes buffered events, then connections close.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down...")

	// 1) Stop consuming so the buffer stops growing
	app.eventConsumer.Stop()
	app.appLogger.Info().Msg("Event consumer stopped")

	// 2) Flush in-flight batches
	app.drainScheduler.Stop()
	app.appLogger.Info().Msg("Drain scheduler stopped")

	// 3) Cancel the background context
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	// 4) Close the publisher and store client
	if err := app.topicPublisher.Close(); err != nil {
		app.appLogger.Warn().Err(err).Msg("failed to close topic publisher")
	}
	if app.mongoClient != nil {
		if err := app.mongoClient.Disconnect(ctx); err != nil {
			app.appLogger.Warn().Err(err).Msg("failed to disconnect mongo client")
		}
	}

	// 5) Shutdown the ops server
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
