package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/modmath"
)

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, crypto.ErrMissingCiphertext),
		errors.Is(err, sessions.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, crypto.ErrInvalidPrimeInput),
		errors.Is(err, crypto.ErrNoInverseExists),
		errors.Is(err, crypto.ErrMalformedCiphertextInput),
		errors.Is(err, crypto.ErrPlaintextOutOfRange),
		errors.Is(err, crypto.ErrImageNotFound),
		errors.Is(err, crypto.ErrImageDecode),
		errors.Is(err, crypto.ErrDimensionMismatch),
		errors.Is(err, crypto.ErrUnsupportedFileMode),
		errors.Is(err, modmath.ErrInvalidModulus),
		errors.Is(err, modmath.ErrNegativeExponent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
