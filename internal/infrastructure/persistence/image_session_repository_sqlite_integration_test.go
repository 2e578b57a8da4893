//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSessionSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	session := CreateTestImageSession(t, "lena.png", 4, 3)
	require.NoError(t, ctx.ImageSessionRepo.Create(context.Background(), session))

	var stored models.ImageSessionModel
	require.NoError(t, ctx.DB.First(&stored, "id = ?", session.ID).Error)
	assert.Equal(t, "10013", stored.Modulus)
	assert.Equal(t, "7", stored.PublicExponent)
	assert.Equal(t, session.Name, stored.Name)
}

func TestImageSessionSqliteRepository_CreateInvalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	session := CreateTestImageSession(t, "lena.png", 4, 3)
	session.Ciphertext = session.Ciphertext[:5]

	err := ctx.ImageSessionRepo.Create(context.Background(), session)
	assert.Error(t, err)
}

func TestImageSessionSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	session := CreateTestImageSession(t, "", 2, 2)
	require.NoError(t, ctx.ImageSessionRepo.Create(context.Background(), session))

	fetched, err := ctx.ImageSessionRepo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, fetched.ID)
	assert.Equal(t, session.Dimensions(), fetched.Dimensions())
	require.Len(t, fetched.Ciphertext, len(session.Ciphertext))
	for i := range session.Ciphertext {
		assert.Equal(t, 0, session.Ciphertext[i].Cmp(fetched.Ciphertext[i]))
	}
}

func TestImageSessionSqliteRepository_GetByIDNotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.ImageSessionRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
}

func TestImageSessionSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestImageSession(t, "a.png", 1, 1)
	first.DateTimeCreated = time.Now().Add(-time.Hour)
	second := CreateTestImageSession(t, "b.png", 1, 1)
	third := CreateTestImageSession(t, "b.png", 2, 1)

	for _, s := range []*sessions.ImageSession{first, second, third} {
		require.NoError(t, ctx.ImageSessionRepo.Create(context.Background(), s))
	}

	all, err := ctx.ImageSessionRepo.List(context.Background(), sessions.NewImageSessionQuery())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byName, err := ctx.ImageSessionRepo.List(context.Background(), &sessions.ImageSessionQuery{Name: "b.png"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	sorted, err := ctx.ImageSessionRepo.List(context.Background(), &sessions.ImageSessionQuery{SortBy: "date_time_created", SortOrder: "asc", Limit: 1})
	require.NoError(t, err)
	require.Len(t, sorted, 1)
	assert.Equal(t, first.ID, sorted[0].ID)

	_, err = ctx.ImageSessionRepo.List(context.Background(), &sessions.ImageSessionQuery{SortBy: "ciphertext"})
	assert.Error(t, err)
}

func TestImageSessionSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	session := CreateTestImageSession(t, "", 1, 1)
	require.NoError(t, ctx.ImageSessionRepo.Create(context.Background(), session))

	require.NoError(t, ctx.ImageSessionRepo.DeleteByID(context.Background(), session.ID))

	_, err := ctx.ImageSessionRepo.GetByID(context.Background(), session.ID)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)

	err = ctx.ImageSessionRepo.DeleteByID(context.Background(), session.ID)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
}
