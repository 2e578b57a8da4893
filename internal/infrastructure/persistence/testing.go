//go:build integration
// +build integration

package persistence

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	ImageSessionRepo sessions.ImageSessionRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.ImageSessionModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	imageSessionRepo, err := NewGormImageSessionRepository(db, logger)
	require.NoError(t, err, "Failed to create image session repository")

	return &TestContext{
		DB:               db,
		ImageSessionRepo: imageSessionRepo,
	}
}

// CreateTestImageSession creates a width x height test session with deterministic ciphertext
func CreateTestImageSession(t *testing.T, name string, width, height int) *sessions.ImageSession {
	t.Helper()

	if name == "" {
		name = "test-image.png"
	}

	ciphertext := make([]*big.Int, 3*width*height)
	for i := range ciphertext {
		ciphertext[i] = big.NewInt(int64((i*7919 + 1) % 10013))
	}

	return &sessions.ImageSession{
		ID:                 uuid.NewString(),
		DateTimeCreated:    time.Now(),
		Name:               name,
		Width:              width,
		Height:             height,
		Modulus:            big.NewInt(10013),
		PublicExponent:     big.NewInt(7),
		Ciphertext:         ciphertext,
		EncryptedImagePath: "encrypted_images/encrypted_" + name,
	}
}
