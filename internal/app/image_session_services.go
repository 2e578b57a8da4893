package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// imageEncryptionService implements the ImageEncryptionService interface
type imageEncryptionService struct {
	imageProcessor cryptoalg.ImageProcessor
	sessionRepo    sessions.ImageSessionRepository
	settings       *config.RSASettings
	logger         logger.Logger
}

// NewImageEncryptionService creates a new imageEncryptionService instance
func NewImageEncryptionService(
	imageProcessor cryptoalg.ImageProcessor,
	sessionRepo sessions.ImageSessionRepository,
	settings *config.RSASettings,
	logger logger.Logger,
) (sessions.ImageEncryptionService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &imageEncryptionService{
		imageProcessor: imageProcessor,
		sessionRepo:    sessionRepo,
		settings:       settings,
		logger:         logger,
	}, nil
}

// Encrypt writes <EncryptedImageDir>/<session id>/encrypted_<name> and stores the raw ciphertext
func (s *imageEncryptionService) Encrypt(ctx context.Context, imagePath string, p, q *big.Int) (*sessions.ImageSession, *crypto.CiphertextBundle, error) {
	id := uuid.NewString()
	name := filepath.Base(imagePath)
	outputPath := filepath.Join(s.settings.EncryptedImageDir, id, crypto.EncryptedPrefix+name)

	bundle, err := s.imageProcessor.EncryptImage(ctx, imagePath, p, q, outputPath)
	if err != nil {
		s.logger.Error("Image encryption failed for ", imagePath, ": ", err)
		return nil, nil, err
	}

	session := &sessions.ImageSession{
		ID:                 id,
		DateTimeCreated:    time.Now(),
		Name:               name,
		Width:              bundle.Dimensions.Width,
		Height:             bundle.Dimensions.Height,
		Modulus:            bundle.PublicKey.N,
		PublicExponent:     bundle.PublicKey.E,
		Ciphertext:         bundle.Ciphertext,
		EncryptedImagePath: bundle.EncryptedImagePath,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		removeArtifact(bundle.EncryptedImagePath, s.logger)
		return nil, nil, fmt.Errorf("failed to store image session: %w", err)
	}

	s.logger.Info("Stored image session ", id, " for ", name)
	return session, bundle, nil
}

// imageDecryptionService implements the ImageDecryptionService interface
type imageDecryptionService struct {
	imageProcessor cryptoalg.ImageProcessor
	sessionRepo    sessions.ImageSessionRepository
	settings       *config.RSASettings
	logger         logger.Logger
}

// NewImageDecryptionService creates a new imageDecryptionService instance
func NewImageDecryptionService(
	imageProcessor cryptoalg.ImageProcessor,
	sessionRepo sessions.ImageSessionRepository,
	settings *config.RSASettings,
	logger logger.Logger,
) (sessions.ImageDecryptionService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &imageDecryptionService{
		imageProcessor: imageProcessor,
		sessionRepo:    sessionRepo,
		settings:       settings,
		logger:         logger,
	}, nil
}

// Decrypt writes <DecryptedImageDir>/<session id>/decrypted_<name>
func (s *imageDecryptionService) Decrypt(ctx context.Context, sessionID string, key crypto.PrivateKey) (string, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return "", fmt.Errorf("%w: %w", crypto.ErrMissingCiphertext, err)
		}
		return "", err
	}

	if key.N == nil {
		key.N = session.Modulus
	}

	outputPath := filepath.Join(s.settings.DecryptedImageDir, session.ID, crypto.DecryptedPrefix+session.Name)
	written, err := s.imageProcessor.DecryptImage(ctx, session.Bundle(key), key, outputPath)
	if err != nil {
		s.logger.Error("Image decryption failed for session ", sessionID, ": ", err)
		return "", err
	}

	return written, nil
}

// imageSessionMetadataService implements the ImageSessionMetadataService interface
type imageSessionMetadataService struct {
	sessionRepo sessions.ImageSessionRepository
	logger      logger.Logger
}

// NewImageSessionMetadataService creates a new imageSessionMetadataService instance
func NewImageSessionMetadataService(sessionRepo sessions.ImageSessionRepository, logger logger.Logger) (sessions.ImageSessionMetadataService, error) {
	return &imageSessionMetadataService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}, nil
}

// List retrieves image sessions matching query
func (s *imageSessionMetadataService) List(ctx context.Context, query *sessions.ImageSessionQuery) ([]*sessions.ImageSession, error) {
	sessionList, err := s.sessionRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list image sessions: %w", err)
	}
	return sessionList, nil
}

// GetByID retrieves a single image session
func (s *imageSessionMetadataService) GetByID(ctx context.Context, sessionID string) (*sessions.ImageSession, error) {
	return s.sessionRepo.GetByID(ctx, sessionID)
}

// DeleteByID deletes the session and its encrypted display image
func (s *imageSessionMetadataService) DeleteByID(ctx context.Context, sessionID string) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return err
	}

	removeArtifact(session.EncryptedImagePath, s.logger)
	return nil
}

// removeArtifact removes an image file and, if then empty, its per-session directory
func removeArtifact(path string, logger logger.Logger) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to remove ", path, ": ", err)
		return
	}
	_ = os.Remove(filepath.Dir(path))
}
