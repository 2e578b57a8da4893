package modmath

import "math/big"

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. The result is non-negative, and GCD(a, 0) == |a|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	r := new(big.Int)

	for y.Sign() != 0 {
		r.Rem(x, y)
		x, y, r = y, r, x
	}

	return x
}
