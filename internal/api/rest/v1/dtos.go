package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Response headers carrying the keypair of a file encryption
const (
	HeaderModulus         = "X-RSA-N"
	HeaderPublicExponent  = "X-RSA-E"
	HeaderPrivateExponent = "X-RSA-D"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

// DeriveKeysRequest carries the two caller primes
type DeriveKeysRequest struct {
	P json.Number `json:"p" validate:"required,decimal_min2"`
	Q json.Number `json:"q" validate:"required,decimal_min2"`
}

// Validate for validating DeriveKeysRequest struct
func (r *DeriveKeysRequest) Validate() error {
	return validateStruct(r)
}

// EncryptNumberRequest carries the primes and the integer to encrypt
type EncryptNumberRequest struct {
	P     json.Number `json:"p" validate:"required,decimal_min2"`
	Q     json.Number `json:"q" validate:"required,decimal_min2"`
	Value json.Number `json:"value" validate:"required,decimal_int"`
}

// Validate for validating EncryptNumberRequest struct
func (r *EncryptNumberRequest) Validate() error {
	return validateStruct(r)
}

// DecryptNumberRequest carries the private key and the ciphertext integer
type DecryptNumberRequest struct {
	D          json.Number `json:"d" validate:"required,decimal_int"`
	N          json.Number `json:"n" validate:"required,decimal_int"`
	Ciphertext json.Number `json:"ciphertext" validate:"required,decimal_int"`
}

// Validate for validating DecryptNumberRequest struct
func (r *DecryptNumberRequest) Validate() error {
	return validateStruct(r)
}

// EncryptTextRequest carries the primes and the text to encrypt. Empty text is allowed.
type EncryptTextRequest struct {
	P    json.Number `json:"p" validate:"required,decimal_min2"`
	Q    json.Number `json:"q" validate:"required,decimal_min2"`
	Text string      `json:"text"`
}

// Validate for validating EncryptTextRequest struct
func (r *EncryptTextRequest) Validate() error {
	return validateStruct(r)
}

// DecryptTextRequest carries the private key and comma-separated ciphertext integers
type DecryptTextRequest struct {
	D          json.Number `json:"d" validate:"required,decimal_int"`
	N          json.Number `json:"n" validate:"required,decimal_int"`
	Ciphertext string      `json:"ciphertext"`
}

// Validate for validating DecryptTextRequest struct
func (r *DecryptTextRequest) Validate() error {
	return validateStruct(r)
}

// DecryptImageRequest carries the private exponent and, optionally, the modulus.
// Without n the modulus stored with the session is used.
type DecryptImageRequest struct {
	D json.Number `json:"d" validate:"required,decimal_int"`
	N json.Number `json:"n" validate:"omitempty,decimal_int"`
}

// Validate for validating DecryptImageRequest struct
func (r *DecryptImageRequest) Validate() error {
	return validateStruct(r)
}

// KeypairResponse renders every value of a derivation as decimal text
type KeypairResponse struct {
	P              string `json:"p"`
	Q              string `json:"q"`
	AuxiliaryPrime string `json:"auxiliary_prime"`
	N              string `json:"n"`
	Phi            string `json:"phi"`
	E              string `json:"e"`
	D              string `json:"d"`
	Summary        string `json:"summary"`
}

// NumberEncryptionResponse is the result of POST /numbers/encrypt
type NumberEncryptionResponse struct {
	Ciphertext string          `json:"ciphertext"`
	Keypair    KeypairResponse `json:"keypair"`
}

// SequenceEncryptionResponse is the result of POST /texts/encrypt
type SequenceEncryptionResponse struct {
	Ciphertext string          `json:"ciphertext"`
	Keypair    KeypairResponse `json:"keypair"`
}

// PlaintextResponse is the result of a number or text decryption
type PlaintextResponse struct {
	Plaintext string `json:"plaintext"`
}

// ImageSessionResponse renders a stored image session without its ciphertext
type ImageSessionResponse struct {
	ID                 string    `json:"id"`
	DateTimeCreated    time.Time `json:"date_time_created"`
	Name               string    `json:"name"`
	Width              int       `json:"width"`
	Height             int       `json:"height"`
	N                  string    `json:"n"`
	E                  string    `json:"e"`
	CiphertextLength   int       `json:"ciphertext_length"`
	EncryptedImagePath string    `json:"encrypted_image_path"`
}

// ImageEncryptionResponse is the result of POST /images. D is returned once and never stored.
type ImageEncryptionResponse struct {
	Session ImageSessionResponse `json:"session"`
	D       string               `json:"d"`
	Summary string               `json:"summary"`
}

// NewKeypairResponse converts a keypair into its response DTO
func NewKeypairResponse(k *crypto.Keypair) KeypairResponse {
	return KeypairResponse{
		P:              k.P.String(),
		Q:              k.Q.String(),
		AuxiliaryPrime: k.AuxiliaryPrime.String(),
		N:              k.N.String(),
		Phi:            k.Phi.String(),
		E:              k.E.String(),
		D:              k.D.String(),
		Summary:        k.String(),
	}
}

// NewImageSessionResponse converts a session into its response DTO
func NewImageSessionResponse(s *sessions.ImageSession) ImageSessionResponse {
	return ImageSessionResponse{
		ID:                 s.ID,
		DateTimeCreated:    s.DateTimeCreated,
		Name:               s.Name,
		Width:              s.Width,
		Height:             s.Height,
		N:                  s.Modulus.String(),
		E:                  s.PublicExponent.String(),
		CiphertextLength:   len(s.Ciphertext),
		EncryptedImagePath: s.EncryptedImagePath,
	}
}

// parseDecimal converts an already validated decimal field
func parseDecimal(n json.Number) (*big.Int, error) {
	v, ok := new(big.Int).SetString(n.String(), 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", n)
	}
	return v, nil
}

func validateStruct(s interface{}) error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return err
	}

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
	return nil
}
