package sessions

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
)

// ImageEncryptionService defines methods for encrypting images into stored sessions.
type ImageEncryptionService interface {
	// Encrypt encrypts the image at imagePath under a keypair derived from p and q,
	// stores the raw ciphertext as a session and returns it with the bundle,
	// which is the only place the private key is handed out.
	Encrypt(ctx context.Context, imagePath string, p, q *big.Int) (*ImageSession, *crypto.CiphertextBundle, error)
}

// ImageDecryptionService defines methods for decrypting stored sessions.
type ImageDecryptionService interface {
	// Decrypt decrypts the session's raw ciphertext with key and returns the written image path.
	// An unknown session fails with crypto.ErrMissingCiphertext. A key without N
	// falls back to the session modulus.
	Decrypt(ctx context.Context, sessionID string, key crypto.PrivateKey) (string, error)
}

// ImageSessionMetadataService defines methods for listing and deleting sessions.
type ImageSessionMetadataService interface {
	List(ctx context.Context, query *ImageSessionQuery) ([]*ImageSession, error)
	GetByID(ctx context.Context, sessionID string) (*ImageSession, error)
	// DeleteByID deletes the session and its encrypted display image.
	DeleteByID(ctx context.Context, sessionID string) error
}

// ImageSessionRepository defines the persistence operations for image sessions
type ImageSessionRepository interface {
	Create(ctx context.Context, session *ImageSession) error
	List(ctx context.Context, query *ImageSessionQuery) ([]*ImageSession, error)
	GetByID(ctx context.Context, sessionID string) (*ImageSession, error)
	DeleteByID(ctx context.Context, sessionID string) error
}
