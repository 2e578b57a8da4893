package payloads

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
)

// KeyService derives keypairs from caller primes.
type KeyService interface {
	// Derive returns the keypair for p, q and the auxiliary prime.
	Derive(ctx context.Context, p, q *big.Int) (*crypto.Keypair, error)
}

// NumberService encrypts and decrypts single integers.
type NumberService interface {
	// Encrypt derives a keypair from p and q and encrypts value.
	Encrypt(ctx context.Context, p, q, value *big.Int) (*NumberEncryption, error)

	// Decrypt decrypts ciphertext with key.
	Decrypt(ctx context.Context, ciphertext *big.Int, key crypto.PrivateKey) (*big.Int, error)
}

// TextService encrypts and decrypts character strings.
type TextService interface {
	// Encrypt derives a keypair from p and q and encrypts text code point by code point.
	Encrypt(ctx context.Context, p, q *big.Int, text string) (*SequenceEncryption, error)

	// Decrypt parses comma-separated ciphertext integers and decrypts them with key.
	Decrypt(ctx context.Context, ciphertext string, key crypto.PrivateKey) (string, error)
}

// FileService encrypts and decrypts uploaded file content.
type FileService interface {
	// Encrypt derives a keypair from p and q and encrypts content in the given mode
	// (crypto.FileModeText or crypto.FileModeBinary).
	Encrypt(ctx context.Context, p, q *big.Int, content []byte, mode string) (*SequenceEncryption, error)

	// Decrypt parses comma-separated ciphertext content and decrypts it in the given mode.
	Decrypt(ctx context.Context, content []byte, key crypto.PrivateKey, mode string) ([]byte, error)
}
