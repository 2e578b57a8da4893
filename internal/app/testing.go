//go:build integration
// +build integration

package app

import (
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	// Payload services
	KeyService    payloads.KeyService
	NumberService payloads.NumberService
	TextService   payloads.TextService
	FileService   payloads.FileService

	// Image session services
	ImageEncryptionService      sessions.ImageEncryptionService
	ImageDecryptionService      sessions.ImageDecryptionService
	ImageSessionMetadataService sessions.ImageSessionMetadataService

	// Infrastructure
	Settings  *config.RSASettings
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	dir := t.TempDir()

	settings := &config.RSASettings{
		UploadDir:         filepath.Join(dir, config.DefaultUploadDir),
		EncryptedImageDir: filepath.Join(dir, config.DefaultEncryptedImageDir),
		DecryptedImageDir: filepath.Join(dir, config.DefaultDecryptedImageDir),
	}

	rsaProcessor, err := cryptography.NewTextbookRSAProcessor(settings.EffectiveWorkers(), logger)
	require.NoError(t, err, "Failed to create textbook RSA processor")

	codec, err := cryptography.NewImageCodec(logger)
	require.NoError(t, err, "Failed to create image codec")

	imageProcessor, err := cryptography.NewImageProcessor(rsaProcessor, codec, logger)
	require.NoError(t, err, "Failed to create image processor")

	keyService, err := NewKeyService(rsaProcessor, logger)
	require.NoError(t, err, "Failed to create KeyService")

	numberService, err := NewNumberService(rsaProcessor, logger)
	require.NoError(t, err, "Failed to create NumberService")

	textService, err := NewTextService(rsaProcessor, logger)
	require.NoError(t, err, "Failed to create TextService")

	fileService, err := NewFileService(rsaProcessor, logger)
	require.NoError(t, err, "Failed to create FileService")

	imageEncryptionService, err := NewImageEncryptionService(imageProcessor, dbContext.ImageSessionRepo, settings, logger)
	require.NoError(t, err, "Failed to create ImageEncryptionService")

	imageDecryptionService, err := NewImageDecryptionService(imageProcessor, dbContext.ImageSessionRepo, settings, logger)
	require.NoError(t, err, "Failed to create ImageDecryptionService")

	imageSessionMetadataService, err := NewImageSessionMetadataService(dbContext.ImageSessionRepo, logger)
	require.NoError(t, err, "Failed to create ImageSessionMetadataService")

	return &TestServices{
		KeyService:                  keyService,
		NumberService:               numberService,
		TextService:                 textService,
		FileService:                 fileService,
		ImageEncryptionService:      imageEncryptionService,
		ImageDecryptionService:      imageDecryptionService,
		ImageSessionMetadataService: imageSessionMetadataService,
		Settings:                    settings,
		DBContext:                   dbContext,
	}
}
