// cmd/rsa-rest-api/main.go
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

	v1 "github.com/MGTheTrain/mersenne-rsa/internal/api/rest/v1"
	"github.com/MGTheTrain/mersenne-rsa/internal/app"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services   *appServices
	processors *cryptoProcessors
}

type cryptoProcessors struct {
	rsa   cryptoalg.TextbookRSAProcessor
	image cryptoalg.ImageProcessor
}

type appServices struct {
	key             payloads.KeyService
	number          payloads.NumberService
	text            payloads.TextService
	file            payloads.FileService
	imageEncryption sessions.ImageEncryptionService
	imageDecryption sessions.ImageDecryptionService
	imageMetadata   sessions.ImageSessionMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.ImageSessionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	sessionRepo, err := persistence.NewGormImageSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image session repository: %w", err)
	}

	// Initialize cryptographic processors
	processors, err := initializeCryptoProcessors(&cfg.RSA, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize processors: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(sessionRepo, processors, &cfg.RSA, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services:   services,
		processors: processors,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", v1.HeaderModulus, v1.HeaderPublicExponent, v1.HeaderPrivateExponent},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.key,
		deps.services.number,
		deps.services.text,
		deps.services.file,
		deps.services.imageEncryption,
		deps.services.imageDecryption,
		deps.services.imageMetadata,
		&cfg.RSA,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeCryptoProcessors sets up the textbook RSA and image processors
func initializeCryptoProcessors(settings *config.RSASettings, log logger.Logger) (*cryptoProcessors, error) {
	rsaProcessor, err := cryptography.NewTextbookRSAProcessor(settings.EffectiveWorkers(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	codec, err := cryptography.NewImageCodec(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image codec: %w", err)
	}

	imageProcessor, err := cryptography.NewImageProcessor(rsaProcessor, codec, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image processor: %w", err)
	}

	log.Info("Cryptographic processors initialized successfully")
	return &cryptoProcessors{
		rsa:   rsaProcessor,
		image: imageProcessor,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	sessionRepo sessions.ImageSessionRepository,
	processors *cryptoProcessors,
	settings *config.RSASettings,
	log logger.Logger,
) (*appServices, error) {
	keyService, err := app.NewKeyService(processors.rsa, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	numberService, err := app.NewNumberService(processors.rsa, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create number service: %w", err)
	}

	textService, err := app.NewTextService(processors.rsa, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create text service: %w", err)
	}

	fileService, err := app.NewFileService(processors.rsa, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file service: %w", err)
	}

	imageEncryptionService, err := app.NewImageEncryptionService(processors.image, sessionRepo, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image encryption service: %w", err)
	}

	imageDecryptionService, err := app.NewImageDecryptionService(processors.image, sessionRepo, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image decryption service: %w", err)
	}

	imageMetadataService, err := app.NewImageSessionMetadataService(sessionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image session metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		key:             keyService,
		number:          numberService,
		text:            textService,
		file:            fileService,
		imageEncryption: imageEncryptionService,
		imageDecryption: imageDecryptionService,
		imageMetadata:   imageMetadataService,
	}, nil
}
