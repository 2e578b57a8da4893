//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSessionPsqlRepository_CreateGetDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	session := CreateTestImageSession(t, "psql.png", 3, 2)
	require.NoError(t, ctx.ImageSessionRepo.Create(context.Background(), session))

	fetched, err := ctx.ImageSessionRepo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Name, fetched.Name)
	assert.Len(t, fetched.Ciphertext, 18)

	require.NoError(t, ctx.ImageSessionRepo.DeleteByID(context.Background(), session.ID))
}
