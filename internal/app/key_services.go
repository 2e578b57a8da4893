package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"
)

// keyService implements the KeyService interface for deriving keypairs
type keyService struct {
	rsaProcessor cryptoalg.TextbookRSAProcessor
	logger       logger.Logger
}

// NewKeyService creates a new keyService instance
func NewKeyService(rsaProcessor cryptoalg.TextbookRSAProcessor, logger logger.Logger) (payloads.KeyService, error) {
	if rsaProcessor == nil {
		return nil, errors.New("rsa processor cannot be nil")
	}
	return &keyService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Derive returns the keypair for p, q and the auxiliary prime
func (s *keyService) Derive(ctx context.Context, p, q *big.Int) (*crypto.Keypair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keypair, err := s.rsaProcessor.DeriveKeys(p, q)
	if err != nil {
		s.logger.Warn("Key derivation failed: ", err)
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	return keypair, nil
}
