package cryptography

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
)

// FormatCiphertext joins elements as comma-separated decimal integers.
func FormatCiphertext(values []*big.Int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, crypto.CiphertextSeparator)
}

// ParseCiphertext reads comma-separated decimal integers. Whitespace around a
// token is ignored and blank input is an empty sequence.
func ParseCiphertext(s string) ([]*big.Int, error) {
	if strings.TrimSpace(s) == "" {
		return []*big.Int{}, nil
	}

	tokens := strings.Split(s, crypto.CiphertextSeparator)
	values := make([]*big.Int, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		v, ok := new(big.Int).SetString(token, 10)
		if !ok {
			return nil, fmt.Errorf("%w: token %d (%q) is not an integer", crypto.ErrMalformedCiphertextInput, i+1, token)
		}
		values[i] = v
	}

	return values, nil
}
