package modmath

import "errors"

var (
	// ErrNoInverseExists is returned when gcd(a, m) != 1.
	ErrNoInverseExists = errors.New("modmath: no modular inverse exists")

	// ErrInvalidModulus is returned for a modulus <= 0.
	ErrInvalidModulus = errors.New("modmath: modulus must be positive")

	// ErrNegativeExponent is returned by ModPow for exponents < 0.
	ErrNegativeExponent = errors.New("modmath: exponent must not be negative")
)
