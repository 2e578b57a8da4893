package modmath

import (
	"fmt"
	"math/big"
)

// ModPow computes base^exponent mod modulus by left-to-right square and
// multiply. The base is first reduced into [0, modulus), so negative bases
// yield the same residue as their non-negative representative.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidModulus, modulus.String())
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeExponent, exponent.String())
	}

	result := big.NewInt(1)
	result.Mod(result, modulus) // modulus 1 maps everything to 0

	b := new(big.Int).Mod(base, modulus)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
	}

	return result, nil
}
