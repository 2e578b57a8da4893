package modmath

import (
	"fmt"
	"math/big"
)

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x, y
// such that a*x + b*y == g. The sign handling follows the inputs: negative
// inputs are reduced by magnitude and the coefficient sign is flipped back.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	lastRemainder := new(big.Int).Abs(a)
	remainder := new(big.Int).Abs(b)

	x, lastX := big.NewInt(0), big.NewInt(1)
	y, lastY := big.NewInt(1), big.NewInt(0)

	quotient := new(big.Int)
	tmp := new(big.Int)

	for remainder.Sign() != 0 {
		next := new(big.Int)
		quotient.QuoRem(lastRemainder, remainder, next)
		lastRemainder, remainder = remainder, next

		// x, lastX = lastX - quotient*x, x
		tmp.Mul(quotient, x)
		x, lastX = new(big.Int).Sub(lastX, tmp), x

		tmp.Mul(quotient, y)
		y, lastY = new(big.Int).Sub(lastY, tmp), y
	}

	if a.Sign() < 0 {
		lastX.Neg(lastX)
	}
	if b.Sign() < 0 {
		lastY.Neg(lastY)
	}

	return lastRemainder, lastX, lastY
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidModulus, m.String())
	}

	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w for a = %s and m = %s", ErrNoInverseExists, a.String(), m.String())
	}

	// Mod is Euclidean, so the result is already in [0, m).
	return x.Mod(x, m), nil
}
