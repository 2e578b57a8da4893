package sessions

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/go-playground/validator/v10"
)

// ErrSessionNotFound indicates that no image session exists for an ID
var ErrSessionNotFound = errors.New("image session not found")

// ImageSession is a stored image encryption. It keeps the public key only;
// the private exponent is handed to the caller once and never persisted.
type ImageSession struct {
	ID                 string     `validate:"required,uuid4"`
	DateTimeCreated    time.Time  `validate:"required"`
	Name               string     `validate:"required,min=1,max=255"`
	Width              int        `validate:"required,min=1"`
	Height             int        `validate:"required,min=1"`
	Modulus            *big.Int   `validate:"required"`
	PublicExponent     *big.Int   `validate:"required"`
	Ciphertext         []*big.Int `validate:"min=1"`
	EncryptedImagePath string     `validate:"required"`
}

// Validate for validating ImageSession struct
func (s *ImageSession) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if len(s.Ciphertext) != s.Dimensions().FlatLength() {
		return fmt.Errorf("validation failed: %w", crypto.ErrDimensionMismatch)
	}

	return nil
}

// Dimensions returns the pixel size of the encrypted image
func (s *ImageSession) Dimensions() crypto.Dimensions {
	return crypto.Dimensions{Width: s.Width, Height: s.Height}
}

// PublicKey returns the (n, e) pair the session was encrypted under
func (s *ImageSession) PublicKey() crypto.PublicKey {
	return crypto.PublicKey{N: s.Modulus, E: s.PublicExponent}
}

// Bundle rebuilds the ciphertext bundle for decryption with key
func (s *ImageSession) Bundle(key crypto.PrivateKey) *crypto.CiphertextBundle {
	return &crypto.CiphertextBundle{
		Ciphertext:         s.Ciphertext,
		PublicKey:          s.PublicKey(),
		PrivateKey:         key,
		Dimensions:         s.Dimensions(),
		EncryptedImagePath: s.EncryptedImagePath,
	}
}
