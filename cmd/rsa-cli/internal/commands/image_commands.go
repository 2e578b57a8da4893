package commands

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/mersenne-rsa/internal/app"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ImageCommandHandler encapsulates logic for encrypting and decrypting images via CLI.
// Sessions are kept in a SQLite file so that decrypt-image can run in a later invocation.
type ImageCommandHandler struct {
	imageProcessor cryptoalg.ImageProcessor
	logger         logger.Logger
}

// imageServices bundles the services opened against one session store
type imageServices struct {
	encryption sessions.ImageEncryptionService
	decryption sessions.ImageDecryptionService
	metadata   sessions.ImageSessionMetadataService
	close      func() error
}

// NewImageCommandHandler initializes a new ImageCommandHandler with logging and an image processor.
func NewImageCommandHandler() (*ImageCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := setupRSAProcessor(loggerInstance)
	if err != nil {
		return nil, err
	}

	codec, err := cryptography.NewImageCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create image codec: %w", err)
	}

	imageProcessor, err := cryptography.NewImageProcessor(rsaProcessor, codec, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create image processor: %w", err)
	}

	return &ImageCommandHandler{
		imageProcessor: imageProcessor,
		logger:         loggerInstance,
	}, nil
}

// openServices connects to the session store named by --db-file and wires the image services
func (commandHandler *ImageCommandHandler) openServices(cmd *cobra.Command) (*imageServices, error) {
	dbFile, err := cmd.Flags().GetString("db-file")
	if err != nil {
		return nil, fmt.Errorf("invalid db-file flag: %w", err)
	}
	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		return nil, fmt.Errorf("invalid output-dir flag: %w", err)
	}

	db, err := persistence.NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: dbFile})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.ImageSessionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sessionRepo, err := persistence.NewGormImageSessionRepository(db, commandHandler.logger)
	if err != nil {
		return nil, err
	}

	settings := config.DefaultRSASettings()
	if outputDir != "" {
		settings.EncryptedImageDir = outputDir
		settings.DecryptedImageDir = outputDir
	}

	encryption, err := app.NewImageEncryptionService(commandHandler.imageProcessor, sessionRepo, &settings, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create image encryption service: %w", err)
	}
	decryption, err := app.NewImageDecryptionService(commandHandler.imageProcessor, sessionRepo, &settings, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create image decryption service: %w", err)
	}
	metadata, err := app.NewImageSessionMetadataService(sessionRepo, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create image session metadata service: %w", err)
	}

	return &imageServices{
		encryption: encryption,
		decryption: decryption,
		metadata:   metadata,
		close:      func() error { return persistence.CloseDB(db) },
	}, nil
}

// EncryptImageCmd encrypts an image and stores its raw ciphertext as a session
func (commandHandler *ImageCommandHandler) EncryptImageCmd(cmd *cobra.Command, _ []string) {
	p, q, err := primeFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}

	services, err := commandHandler.openServices(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer commandHandler.closeServices(services)

	session, bundle, err := services.encryption.Encrypt(context.Background(), inputFilePath, p, q)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(fmt.Sprintf("Public Key (n, e): (%s, %s), Private Key (d): %s", bundle.PublicKey.N, bundle.PublicKey.E, bundle.PrivateKey.D))
	commandHandler.logger.Info("Session ID: ", session.ID)
	commandHandler.logger.Info("Encrypted image saved at ", session.EncryptedImagePath)
}

// DecryptImageCmd decrypts a stored session into an image
func (commandHandler *ImageCommandHandler) DecryptImageCmd(cmd *cobra.Command, _ []string) {
	key, err := privateKeyFlags(cmd, true)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	sessionID, err := cmd.Flags().GetString("session-id")
	if err != nil {
		commandHandler.logger.Error("invalid session-id flag: ", err)
		return
	}

	services, err := commandHandler.openServices(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer commandHandler.closeServices(services)

	written, err := services.decryption.Decrypt(context.Background(), sessionID, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted image saved at ", written)
}

// ListImagesCmd lists the stored image sessions
func (commandHandler *ImageCommandHandler) ListImagesCmd(cmd *cobra.Command, _ []string) {
	services, err := commandHandler.openServices(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer commandHandler.closeServices(services)

	query := sessions.NewImageSessionQuery()
	query.Name, err = cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag: ", err)
		return
	}

	sessionList, err := services.metadata.List(context.Background(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, session := range sessionList {
		commandHandler.logger.Info(fmt.Sprintf("%s %s %dx%d n=%s e=%s %s",
			session.ID, session.Name, session.Width, session.Height,
			session.Modulus, session.PublicExponent, session.EncryptedImagePath))
	}
}

// DeleteImageCmd deletes a stored session and its encrypted image
func (commandHandler *ImageCommandHandler) DeleteImageCmd(cmd *cobra.Command, _ []string) {
	sessionID, err := cmd.Flags().GetString("session-id")
	if err != nil {
		commandHandler.logger.Error("invalid session-id flag: ", err)
		return
	}

	services, err := commandHandler.openServices(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer commandHandler.closeServices(services)

	if err := services.metadata.DeleteByID(context.Background(), sessionID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deleted image session ", sessionID)
}

func (commandHandler *ImageCommandHandler) closeServices(services *imageServices) {
	if err := services.close(); err != nil {
		commandHandler.logger.Warn("failed to close session store: ", err)
	}
}

// addSessionStoreFlags registers the --db-file and --output-dir flags on cmd
func addSessionStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("db-file", "", "rsa-sessions.db", "SQLite file holding image sessions")
	cmd.Flags().StringP("output-dir", "", "", "Directory for encrypted and decrypted images (defaults per kind)")
}

// InitImageCommands registers image session commands
func InitImageCommands(rootCmd *cobra.Command) error {
	handler, err := NewImageCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create image command handler %w", err)
	}

	var encryptImageCmd = &cobra.Command{
		Use:   "encrypt-image",
		Short: "Encrypt an image and store the raw ciphertext as a session",
		Run:   handler.EncryptImageCmd,
	}
	addPrimeFlags(encryptImageCmd)
	addSessionStoreFlags(encryptImageCmd)
	encryptImageCmd.Flags().StringP("input-file", "", "", "Path to the image which needs to be encrypted")
	rootCmd.AddCommand(encryptImageCmd)

	var decryptImageCmd = &cobra.Command{
		Use:   "decrypt-image",
		Short: "Decrypt a stored image session",
		Run:   handler.DecryptImageCmd,
	}
	addPrivateKeyFlags(decryptImageCmd)
	addSessionStoreFlags(decryptImageCmd)
	decryptImageCmd.Flags().StringP("session-id", "", "", "ID of the image session")
	rootCmd.AddCommand(decryptImageCmd)

	var listImagesCmd = &cobra.Command{
		Use:   "list-images",
		Short: "List stored image sessions",
		Run:   handler.ListImagesCmd,
	}
	addSessionStoreFlags(listImagesCmd)
	listImagesCmd.Flags().StringP("name", "", "", "Filter by original image name")
	rootCmd.AddCommand(listImagesCmd)

	var deleteImageCmd = &cobra.Command{
		Use:   "delete-image",
		Short: "Delete a stored image session",
		Run:   handler.DeleteImageCmd,
	}
	addSessionStoreFlags(deleteImageCmd)
	deleteImageCmd.Flags().StringP("session-id", "", "", "ID of the image session")
	rootCmd.AddCommand(deleteImageCmd)

	return nil
}
