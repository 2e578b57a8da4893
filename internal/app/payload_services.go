package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"
)

// numberService implements the NumberService interface for single integers
type numberService struct {
	rsaProcessor cryptoalg.TextbookRSAProcessor
	logger       logger.Logger
}

// NewNumberService creates a new numberService instance
func NewNumberService(rsaProcessor cryptoalg.TextbookRSAProcessor, logger logger.Logger) (payloads.NumberService, error) {
	if rsaProcessor == nil {
		return nil, errors.New("rsa processor cannot be nil")
	}
	return &numberService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt derives a keypair from p and q and encrypts value
func (s *numberService) Encrypt(ctx context.Context, p, q, value *big.Int) (*payloads.NumberEncryption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keypair, err := s.rsaProcessor.DeriveKeys(p, q)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	ciphertext, err := s.rsaProcessor.EncryptScalar(value, keypair.PublicKey())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Encrypted number under n = ", keypair.N)
	return &payloads.NumberEncryption{
		Ciphertext: ciphertext,
		Keypair:    keypair,
	}, nil
}

// Decrypt decrypts ciphertext with key
func (s *numberService) Decrypt(ctx context.Context, ciphertext *big.Int, key crypto.PrivateKey) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.rsaProcessor.DecryptScalar(ciphertext, key)
}

// textService implements the TextService interface for character strings
type textService struct {
	rsaProcessor cryptoalg.TextbookRSAProcessor
	logger       logger.Logger
}

// NewTextService creates a new textService instance
func NewTextService(rsaProcessor cryptoalg.TextbookRSAProcessor, logger logger.Logger) (payloads.TextService, error) {
	if rsaProcessor == nil {
		return nil, errors.New("rsa processor cannot be nil")
	}
	return &textService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt derives a keypair from p and q and encrypts text code point by code point
func (s *textService) Encrypt(ctx context.Context, p, q *big.Int, text string) (*payloads.SequenceEncryption, error) {
	keypair, err := s.rsaProcessor.DeriveKeys(p, q)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	ciphertext, err := s.rsaProcessor.EncryptText(ctx, text, keypair.PublicKey())
	if err != nil {
		return nil, err
	}

	return &payloads.SequenceEncryption{
		Ciphertext: ciphertext,
		Keypair:    keypair,
	}, nil
}

// Decrypt parses comma-separated ciphertext integers and decrypts them with key
func (s *textService) Decrypt(ctx context.Context, ciphertext string, key crypto.PrivateKey) (string, error) {
	values, err := cryptography.ParseCiphertext(ciphertext)
	if err != nil {
		return "", err
	}
	return s.rsaProcessor.DecryptText(ctx, values, key)
}

// fileService implements the FileService interface for uploaded file content
type fileService struct {
	rsaProcessor cryptoalg.TextbookRSAProcessor
	logger       logger.Logger
}

// NewFileService creates a new fileService instance
func NewFileService(rsaProcessor cryptoalg.TextbookRSAProcessor, logger logger.Logger) (payloads.FileService, error) {
	if rsaProcessor == nil {
		return nil, errors.New("rsa processor cannot be nil")
	}
	return &fileService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt derives a keypair from p and q and encrypts content. Text mode
// encrypts UTF-8 code points, binary mode encrypts raw bytes. An empty mode is text.
func (s *fileService) Encrypt(ctx context.Context, p, q *big.Int, content []byte, mode string) (*payloads.SequenceEncryption, error) {
	mode, err := resolveFileMode(mode)
	if err != nil {
		return nil, err
	}
	if mode == crypto.FileModeText && !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8, use %s mode", crypto.ErrUnsupportedFileMode, crypto.FileModeBinary)
	}

	keypair, err := s.rsaProcessor.DeriveKeys(p, q)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	var ciphertext []*big.Int
	switch mode {
	case crypto.FileModeText:
		ciphertext, err = s.rsaProcessor.EncryptText(ctx, string(content), keypair.PublicKey())
	default:
		ciphertext, err = s.rsaProcessor.EncryptBytes(ctx, content, keypair.PublicKey())
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Encrypted ", len(content), " bytes of file content in ", mode, " mode")
	return &payloads.SequenceEncryption{
		Ciphertext: ciphertext,
		Keypair:    keypair,
	}, nil
}

// Decrypt parses comma-separated ciphertext content and decrypts it in the given mode
func (s *fileService) Decrypt(ctx context.Context, content []byte, key crypto.PrivateKey, mode string) ([]byte, error) {
	mode, err := resolveFileMode(mode)
	if err != nil {
		return nil, err
	}

	values, err := cryptography.ParseCiphertext(string(content))
	if err != nil {
		return nil, err
	}

	if mode == crypto.FileModeText {
		text, err := s.rsaProcessor.DecryptText(ctx, values, key)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	}

	return s.rsaProcessor.DecryptBytes(ctx, values, key)
}

func resolveFileMode(mode string) (string, error) {
	switch mode {
	case "", crypto.FileModeText:
		return crypto.FileModeText, nil
	case crypto.FileModeBinary:
		return crypto.FileModeBinary, nil
	default:
		return "", fmt.Errorf("%w: %q", crypto.ErrUnsupportedFileMode, mode)
	}
}
