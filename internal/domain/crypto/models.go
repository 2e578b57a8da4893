package crypto

import (
	"fmt"
	"math/big"
)

// PublicKey is the (n, e) half of a keypair
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the (n, d) half of a keypair
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// Keypair holds every value of a derivation:
// N = P*Q*AuxiliaryPrime, Phi = (P-1)(Q-1)(AuxiliaryPrime-1) and E*D ≡ 1 (mod Phi).
type Keypair struct {
	P              *big.Int
	Q              *big.Int
	AuxiliaryPrime *big.Int
	N              *big.Int
	Phi            *big.Int
	E              *big.Int
	D              *big.Int
}

// PublicKey returns the (n, e) pair
func (k *Keypair) PublicKey() PublicKey {
	return PublicKey{N: k.N, E: k.E}
}

// PrivateKey returns the (n, d) pair
func (k *Keypair) PrivateKey() PrivateKey {
	return PrivateKey{N: k.N, D: k.D}
}

// String renders the keypair the way it is presented to users
func (k *Keypair) String() string {
	return fmt.Sprintf("Public Key (n, e): (%s, %s), Private Key (d): %s", k.N, k.E, k.D)
}

// Dimensions is the pixel size of an image
type Dimensions struct {
	Width  int
	Height int
}

// Pixels is the number of pixels, i.e. the length of a single plane
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// FlatLength is the length of all three planes concatenated
func (d Dimensions) FlatLength() int {
	return ColorPlanes * d.Pixels()
}

// PlaneArray is a flat sequence of byte intensities in row-major order.
type PlaneArray []byte

// CiphertextBundle is what image encryption hands back to the caller. The raw
// Ciphertext, not the normalized display image, is the only valid decryption input.
type CiphertextBundle struct {
	Ciphertext         []*big.Int
	PublicKey          PublicKey
	PrivateKey         PrivateKey
	Dimensions         Dimensions
	EncryptedImagePath string
}

// Validate checks that the bundle can be decrypted
func (b *CiphertextBundle) Validate() error {
	if b == nil || len(b.Ciphertext) == 0 {
		return ErrMissingCiphertext
	}
	if len(b.Ciphertext) != b.Dimensions.FlatLength() {
		return fmt.Errorf("%w: %d elements for %dx%d", ErrDimensionMismatch, len(b.Ciphertext), b.Dimensions.Width, b.Dimensions.Height)
	}
	for i, c := range b.Ciphertext {
		if c == nil {
			return fmt.Errorf("%w: element %d is empty", ErrMissingCiphertext, i)
		}
	}
	return nil
}
