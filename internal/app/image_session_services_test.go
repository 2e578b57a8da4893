//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockImageSessionRepository is a mock for ImageSessionRepository
type mockImageSessionRepository struct {
	mock.Mock
}

func (m *mockImageSessionRepository) Create(ctx context.Context, session *sessions.ImageSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockImageSessionRepository) List(ctx context.Context, query *sessions.ImageSessionQuery) ([]*sessions.ImageSession, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessions.ImageSession), args.Error(1)
}

func (m *mockImageSessionRepository) GetByID(ctx context.Context, sessionID string) (*sessions.ImageSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.ImageSession), args.Error(1)
}

func (m *mockImageSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type imageTestServices struct {
	repo       *mockImageSessionRepository
	encryption sessions.ImageEncryptionService
	decryption sessions.ImageDecryptionService
	metadata   sessions.ImageSessionMetadataService
	settings   *config.RSASettings
}

func setupImageSessionServices(t *testing.T) *imageTestServices {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	dir := t.TempDir()

	settings := &config.RSASettings{
		Workers:           2,
		UploadDir:         filepath.Join(dir, config.DefaultUploadDir),
		EncryptedImageDir: filepath.Join(dir, config.DefaultEncryptedImageDir),
		DecryptedImageDir: filepath.Join(dir, config.DefaultDecryptedImageDir),
	}

	rsaProcessor, err := cryptography.NewTextbookRSAProcessor(settings.EffectiveWorkers(), logger)
	require.NoError(t, err)
	codec, err := cryptography.NewImageCodec(logger)
	require.NoError(t, err)
	imageProcessor, err := cryptography.NewImageProcessor(rsaProcessor, codec, logger)
	require.NoError(t, err)

	repo := &mockImageSessionRepository{}

	encryption, err := NewImageEncryptionService(imageProcessor, repo, settings, logger)
	require.NoError(t, err)
	decryption, err := NewImageDecryptionService(imageProcessor, repo, settings, logger)
	require.NoError(t, err)
	metadata, err := NewImageSessionMetadataService(repo, logger)
	require.NoError(t, err)

	return &imageTestServices{
		repo:       repo,
		encryption: encryption,
		decryption: decryption,
		metadata:   metadata,
		settings:   settings,
	}
}

func TestImageSessionServices_EncryptDecrypt(t *testing.T) {
	services := setupImageSessionServices(t)
	ctx := context.Background()
	source := testutil.CreateTestImageFile(t, 4, 3)

	services.repo.On("Create", mock.Anything, mock.AnythingOfType("*sessions.ImageSession")).Return(nil).Once()

	session, bundle, err := services.encryption.Encrypt(ctx, source, big.NewInt(17), big.NewInt(19))
	require.NoError(t, err)
	require.NoError(t, session.Validate())

	assert.Equal(t, "sample.png", session.Name)
	assert.Equal(t, filepath.Join(services.settings.EncryptedImageDir, session.ID, "encrypted_sample.png"), session.EncryptedImagePath)
	assert.FileExists(t, session.EncryptedImagePath)
	assert.Equal(t, int64(3703), bundle.PrivateKey.D.Int64())
	assert.Equal(t, 0, session.Modulus.Cmp(bundle.PublicKey.N))

	services.repo.On("GetByID", mock.Anything, session.ID).Return(session, nil)

	written, err := services.decryption.Decrypt(ctx, session.ID, crypto.PrivateKey{D: big.NewInt(3703)})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(services.settings.DecryptedImageDir, session.ID, "decrypted_sample.png"), written)

	codec, err := cryptography.NewImageCodec(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	original, err := codec.LoadImage(source)
	require.NoError(t, err)
	decrypted, err := codec.LoadImage(written)
	require.NoError(t, err)

	ob, og, or, _ := codec.Decompose(original)
	db, dg, dr, _ := codec.Decompose(decrypted)
	assert.Equal(t, ob, db)
	assert.Equal(t, og, dg)
	assert.Equal(t, or, dr)

	services.repo.AssertExpectations(t)
}

func TestImageSessionServices_EncryptStoreFailureRemovesImage(t *testing.T) {
	services := setupImageSessionServices(t)
	source := testutil.CreateTestImageFile(t, 2, 2)

	var stored *sessions.ImageSession
	services.repo.On("Create", mock.Anything, mock.AnythingOfType("*sessions.ImageSession")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*sessions.ImageSession) }).
		Return(fmt.Errorf("disk full")).Once()

	_, _, err := services.encryption.Encrypt(context.Background(), source, big.NewInt(17), big.NewInt(19))
	require.Error(t, err)
	require.NotNil(t, stored)

	_, statErr := os.Stat(stored.EncryptedImagePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImageSessionServices_DecryptUnknownSession(t *testing.T) {
	services := setupImageSessionServices(t)

	services.repo.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: missing", sessions.ErrSessionNotFound)).Once()

	_, err := services.decryption.Decrypt(context.Background(), "missing", crypto.PrivateKey{N: big.NewInt(10013), D: big.NewInt(3703)})
	assert.ErrorIs(t, err, crypto.ErrMissingCiphertext)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
}

func TestImageSessionServices_Metadata(t *testing.T) {
	services := setupImageSessionServices(t)
	ctx := context.Background()

	artifact := filepath.Join(services.settings.EncryptedImageDir, "session", "encrypted_a.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(artifact), 0750))
	require.NoError(t, os.WriteFile(artifact, []byte("png"), 0600))

	session := &sessions.ImageSession{ID: "session", Name: "a.png", EncryptedImagePath: artifact}
	query := sessions.NewImageSessionQuery()

	services.repo.On("List", mock.Anything, query).Return([]*sessions.ImageSession{session}, nil).Once()
	services.repo.On("GetByID", mock.Anything, "session").Return(session, nil)
	services.repo.On("DeleteByID", mock.Anything, "session").Return(nil).Once()

	list, err := services.metadata.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	fetched, err := services.metadata.GetByID(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, session, fetched)

	require.NoError(t, services.metadata.DeleteByID(ctx, "session"))
	assert.NoFileExists(t, artifact)
	assert.NoDirExists(t, filepath.Dir(artifact))

	services.repo.AssertExpectations(t)
}

func TestNewImageEncryptionService_InvalidSettings(t *testing.T) {
	_, err := NewImageEncryptionService(nil, &mockImageSessionRepository{}, &config.RSASettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
