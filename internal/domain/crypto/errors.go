package crypto

import (
	"errors"

	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/modmath"
)

// Input validity errors
var (
	// ErrNoInverseExists indicates that the public exponent has no inverse modulo the totient.
	ErrNoInverseExists = modmath.ErrNoInverseExists

	// ErrInvalidPrimeInput indicates a caller prime below MinPrimeInput.
	ErrInvalidPrimeInput = errors.New("rsa: prime inputs must be >= 2")

	// ErrMalformedCiphertextInput indicates a non-integer token in a ciphertext payload.
	ErrMalformedCiphertextInput = errors.New("rsa: malformed ciphertext input")

	// ErrPlaintextOutOfRange indicates a decrypted value that is not a valid code point or byte.
	// This is what decrypting under a mismatched key usually produces.
	ErrPlaintextOutOfRange = errors.New("rsa: decrypted value out of plaintext range")

	// ErrImageNotFound indicates that the source image file does not exist.
	ErrImageNotFound = errors.New("rsa: image not found")

	// ErrImageDecode indicates that the source image could not be decoded.
	ErrImageDecode = errors.New("rsa: image could not be decoded")

	// ErrDimensionMismatch indicates a flat array whose length is not 3 x width x height.
	ErrDimensionMismatch = errors.New("rsa: array length does not match image dimensions")

	// ErrUnsupportedFileMode indicates a file mode other than text or binary.
	ErrUnsupportedFileMode = errors.New("rsa: unsupported file mode")
)

// State errors
var (
	// ErrMissingCiphertext indicates an image decryption without the raw ciphertext
	// sequence of a matching encryption.
	ErrMissingCiphertext = errors.New("rsa: raw ciphertext sequence unavailable")
)
