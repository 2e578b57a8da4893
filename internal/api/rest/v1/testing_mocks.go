//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"

	"github.com/stretchr/testify/mock"
)

// MockKeyService is a mock implementation of KeyService
type MockKeyService struct {
	mock.Mock
}

func (m *MockKeyService) Derive(ctx context.Context, p, q *big.Int) (*crypto.Keypair, error) {
	args := m.Called(ctx, p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.Keypair), args.Error(1)
}

// MockNumberService is a mock implementation of NumberService
type MockNumberService struct {
	mock.Mock
}

func (m *MockNumberService) Encrypt(ctx context.Context, p, q, value *big.Int) (*payloads.NumberEncryption, error) {
	args := m.Called(ctx, p, q, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payloads.NumberEncryption), args.Error(1)
}

func (m *MockNumberService) Decrypt(ctx context.Context, ciphertext *big.Int, key crypto.PrivateKey) (*big.Int, error) {
	args := m.Called(ctx, ciphertext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockTextService is a mock implementation of TextService
type MockTextService struct {
	mock.Mock
}

func (m *MockTextService) Encrypt(ctx context.Context, p, q *big.Int, text string) (*payloads.SequenceEncryption, error) {
	args := m.Called(ctx, p, q, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payloads.SequenceEncryption), args.Error(1)
}

func (m *MockTextService) Decrypt(ctx context.Context, ciphertext string, key crypto.PrivateKey) (string, error) {
	args := m.Called(ctx, ciphertext, key)
	return args.String(0), args.Error(1)
}

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Encrypt(ctx context.Context, p, q *big.Int, content []byte, mode string) (*payloads.SequenceEncryption, error) {
	args := m.Called(ctx, p, q, content, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payloads.SequenceEncryption), args.Error(1)
}

func (m *MockFileService) Decrypt(ctx context.Context, content []byte, key crypto.PrivateKey, mode string) ([]byte, error) {
	args := m.Called(ctx, content, key, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockImageEncryptionService is a mock implementation of ImageEncryptionService
type MockImageEncryptionService struct {
	mock.Mock
}

func (m *MockImageEncryptionService) Encrypt(ctx context.Context, imagePath string, p, q *big.Int) (*sessions.ImageSession, *crypto.CiphertextBundle, error) {
	args := m.Called(ctx, imagePath, p, q)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*sessions.ImageSession), args.Get(1).(*crypto.CiphertextBundle), args.Error(2)
}

// MockImageDecryptionService is a mock implementation of ImageDecryptionService
type MockImageDecryptionService struct {
	mock.Mock
}

func (m *MockImageDecryptionService) Decrypt(ctx context.Context, sessionID string, key crypto.PrivateKey) (string, error) {
	args := m.Called(ctx, sessionID, key)
	return args.String(0), args.Error(1)
}

// MockImageSessionMetadataService is a mock implementation of ImageSessionMetadataService
type MockImageSessionMetadataService struct {
	mock.Mock
}

func (m *MockImageSessionMetadataService) List(ctx context.Context, query *sessions.ImageSessionQuery) ([]*sessions.ImageSession, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessions.ImageSession), args.Error(1)
}

func (m *MockImageSessionMetadataService) GetByID(ctx context.Context, sessionID string) (*sessions.ImageSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.ImageSession), args.Error(1)
}

func (m *MockImageSessionMetadataService) DeleteByID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
