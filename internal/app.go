package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/internal/metrics"
	"listing-service/pkg/fluentlogger"
	"listing-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// App wires every adapter and use case together. This is the composition
// root; nothing below this layer knows about concrete dependencies.
type App struct {
	config       *configs.AppConfig
	chairPool    *pgxpool.Pool
	estatePool   *pgxpool.Pool
	apiServer    *rest.Server
	publisher    port.EventPublisherPort
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first, so every later failure is reported structurally.
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// One pool per shard; chairs and estates never share a transaction.
	chairPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.ChairURL})
	if err != nil {
		appLogger.Error("Failed to connect to chair shard", err, nil)
		return nil, fmt.Errorf("failed to connect to chair shard: %w", err)
	}
	estatePool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.EstateURL})
	if err != nil {
		appLogger.Error("Failed to connect to estate shard", err, nil)
		chairPool.Close()
		return nil, fmt.Errorf("failed to connect to estate shard: %w", err)
	}
	appLogger.Info("Successfully connected to both PostgreSQL shards!", nil)

	// Condition catalogs are loaded once and validated against the embedded
	// contracts before anything serves them.
	var chairCondition domain.ChairSearchCondition
	chairConditionJSON, err := domain.LoadCondition(appConfig.Catalog.ChairConditionPath, &chairCondition)
	if err != nil {
		appLogger.Error("Failed to load chair condition catalog", err, nil)
		chairPool.Close()
		estatePool.Close()
		return nil, err
	}
	if err := contracts.Validate("ChairSearchCondition", constants.EventVersion, chairConditionJSON); err != nil {
		appLogger.Error("Chair condition catalog violates its contract", err, nil)
		chairPool.Close()
		estatePool.Close()
		return nil, err
	}

	var estateCondition domain.EstateSearchCondition
	estateConditionJSON, err := domain.LoadCondition(appConfig.Catalog.EstateConditionPath, &estateCondition)
	if err != nil {
		appLogger.Error("Failed to load estate condition catalog", err, nil)
		chairPool.Close()
		estatePool.Close()
		return nil, err
	}
	if err := contracts.Validate("EstateSearchCondition", constants.EventVersion, estateConditionJSON); err != nil {
		appLogger.Error("Estate condition catalog violates its contract", err, nil)
		chairPool.Close()
		estatePool.Close()
		return nil, err
	}
	appLogger.Info("Condition catalogs loaded and validated.", nil)

	chairRepository, err := postgres_adapter.NewChairRepository(chairPool, &chairCondition)
	if err != nil {
		appLogger.Error("Failed to create chair repository", err, nil)
		chairPool.Close()
		estatePool.Close()
		return nil, fmt.Errorf("failed to create chair repository: %w", err)
	}
	estateRepository, err := postgres_adapter.NewEstateRepository(estatePool, &estateCondition)
	if err != nil {
		appLogger.Error("Failed to create estate repository", err, nil)
		chairPool.Close()
		estatePool.Close()
		return nil, fmt.Errorf("failed to create estate repository: %w", err)
	}
	appLogger.Info("Postgres repositories initialized.", nil)

	var publisher port.EventPublisherPort
	if appConfig.RabbitMQ.Enabled {
		publisherLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_publisher"})
		publisher, err = rabbitmq_adapter.NewEventPublisher(appConfig.RabbitMQ.URL, publisherLogger)
		if err != nil {
			appLogger.Error("Failed to create event publisher", err, nil)
			chairPool.Close()
			estatePool.Close()
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		appLogger.Info("RabbitMQ event publisher initialized.", nil)
	} else {
		publisher = rabbitmq_adapter.NewNoopPublisher()
		appLogger.Info("Event publishing disabled, using noop publisher.", nil)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	// Use cases.
	searchChairsUC := usecase.NewSearchChairsUseCase(chairRepository)
	getChairDetailsUC := usecase.NewGetChairDetailsUseCase(chairRepository)
	buyChairUC := usecase.NewBuyChairUseCase(chairRepository, publisher)
	importChairsUC := usecase.NewImportChairsUseCase(chairRepository)
	getLowPricedChairsUC := usecase.NewGetLowPricedChairsUseCase(chairRepository)

	searchEstatesUC := usecase.NewSearchEstatesUseCase(estateRepository)
	getEstateDetailsUC := usecase.NewGetEstateDetailsUseCase(estateRepository)
	nazotteSearchUC := usecase.NewNazotteSearchUseCase(estateRepository)
	requestDocumentUC := usecase.NewRequestDocumentUseCase(estateRepository, publisher)
	importEstatesUC := usecase.NewImportEstatesUseCase(estateRepository)
	getLowPricedEstatesUC := usecase.NewGetLowPricedEstatesUseCase(estateRepository)
	recommendEstatesUC := usecase.NewRecommendEstatesUseCase(chairRepository, estateRepository)

	initializeUC := usecase.NewInitializeUseCase(chairRepository, estateRepository, appConfig.Catalog.SQLDir)
	appLogger.Info("All use cases initialized.", nil)

	// REST API server.
	initializeHandler := rest.NewInitializeHandler(initializeUC)
	chairHandler := rest.NewChairHandler(searchChairsUC, getChairDetailsUC, buyChairUC, importChairsUC, getLowPricedChairsUC, chairConditionJSON)
	estateHandler := rest.NewEstateHandler(searchEstatesUC, getEstateDetailsUC, nazotteSearchUC, requestDocumentUC, importEstatesUC, getLowPricedEstatesUC, recommendEstatesUC, estateConditionJSON)

	apiServer := rest.NewServer(appConfig.Rest.PORT, initializeHandler, chairHandler, estateHandler, nil, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		chairPool:    chairPool,
		estatePool:   estatePool,
		apiServer:    apiServer,
		publisher:    publisher,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts the HTTP server and blocks until a signal or a fatal error.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.publisher != nil {
			if err := a.publisher.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.chairPool != nil {
			a.chairPool.Close()
		}
		if a.estatePool != nil {
			a.estatePool.Close()
		}
		a.logger.Info("PostgreSQL pools closed.", nil)

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
