//go:build integration
// +build integration

package app

import (
	"context"
	"math/big"
	"testing"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSessionServices_RoundTripThroughSqlite(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	source := testutil.CreateTestImageFile(t, 6, 4)

	session, bundle, err := services.ImageEncryptionService.Encrypt(ctx, source, big.NewInt(101), big.NewInt(103))
	require.NoError(t, err)

	stored, err := services.ImageSessionMetadataService.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Ciphertext, 3*6*4)

	written, err := services.ImageDecryptionService.Decrypt(ctx, session.ID, bundle.PrivateKey)
	require.NoError(t, err)
	assert.FileExists(t, written)

	list, err := services.ImageSessionMetadataService.List(ctx, sessions.NewImageSessionQuery())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, services.ImageSessionMetadataService.DeleteByID(ctx, session.ID))
	assert.NoFileExists(t, session.EncryptedImagePath)

	_, err = services.ImageDecryptionService.Decrypt(ctx, session.ID, bundle.PrivateKey)
	assert.ErrorIs(t, err, crypto.ErrMissingCiphertext)
}

func TestImageSessionServices_DecryptNeverEncrypted(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.ImageDecryptionService.Decrypt(context.Background(), uuid.NewString(), crypto.PrivateKey{N: big.NewInt(10013), D: big.NewInt(3703)})
	assert.ErrorIs(t, err, crypto.ErrMissingCiphertext)
}
