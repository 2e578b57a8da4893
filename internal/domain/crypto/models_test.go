//go:build unit
// +build unit

package crypto

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeypair_Halves(t *testing.T) {
	k := &Keypair{
		P: big.NewInt(17), Q: big.NewInt(19), AuxiliaryPrime: big.NewInt(AuxiliaryPrime),
		N: big.NewInt(10013), Phi: big.NewInt(8640), E: big.NewInt(7), D: big.NewInt(3703),
	}

	assert.Equal(t, PublicKey{N: k.N, E: k.E}, k.PublicKey())
	assert.Equal(t, PrivateKey{N: k.N, D: k.D}, k.PrivateKey())
	assert.Equal(t, "Public Key (n, e): (10013, 7), Private Key (d): 3703", k.String())
}

func TestDimensions(t *testing.T) {
	d := Dimensions{Width: 4, Height: 3}
	assert.Equal(t, 12, d.Pixels())
	assert.Equal(t, 36, d.FlatLength())
}

func TestCiphertextBundle_Validate(t *testing.T) {
	elements := func(n int) []*big.Int {
		out := make([]*big.Int, n)
		for i := range out {
			out[i] = big.NewInt(int64(i))
		}
		return out
	}

	tests := []struct {
		name    string
		bundle  *CiphertextBundle
		wantErr error
	}{
		{"nil bundle", nil, ErrMissingCiphertext},
		{"empty ciphertext", &CiphertextBundle{Dimensions: Dimensions{Width: 1, Height: 1}}, ErrMissingCiphertext},
		{"length mismatch", &CiphertextBundle{Ciphertext: elements(4), Dimensions: Dimensions{Width: 1, Height: 1}}, ErrDimensionMismatch},
		{"nil element", &CiphertextBundle{Ciphertext: []*big.Int{big.NewInt(1), nil, big.NewInt(2)}, Dimensions: Dimensions{Width: 1, Height: 1}}, ErrMissingCiphertext},
		{"valid", &CiphertextBundle{Ciphertext: elements(6), Dimensions: Dimensions{Width: 2, Height: 1}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
