package cryptoalg

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
)

// TextbookRSAProcessor handles unpadded RSA over arbitrary-precision integers.
// It is NOT a secure RSA implementation: there is no padding and caller primes are trusted.
type TextbookRSAProcessor interface {
	// DeriveKeys combines p and q with the auxiliary prime 31 and searches the
	// smallest odd public exponent >= 3 coprime to the totient.
	DeriveKeys(p, q *big.Int) (*crypto.Keypair, error)

	// EncryptScalar computes value^e mod n.
	EncryptScalar(value *big.Int, key crypto.PublicKey) (*big.Int, error)

	// DecryptScalar computes value^d mod n.
	DecryptScalar(value *big.Int, key crypto.PrivateKey) (*big.Int, error)

	// EncryptText encrypts every code point of text independently, preserving order.
	EncryptText(ctx context.Context, text string, key crypto.PublicKey) ([]*big.Int, error)

	// DecryptText decrypts every element and concatenates the resulting code points.
	DecryptText(ctx context.Context, ciphertext []*big.Int, key crypto.PrivateKey) (string, error)

	// EncryptBytes encrypts every byte of data independently, preserving order.
	EncryptBytes(ctx context.Context, data []byte, key crypto.PublicKey) ([]*big.Int, error)

	// DecryptBytes decrypts every element back into a byte.
	DecryptBytes(ctx context.Context, ciphertext []*big.Int, key crypto.PrivateKey) ([]byte, error)

	// EncryptElements applies value^e mod n to every element, results in input order.
	EncryptElements(ctx context.Context, values []*big.Int, key crypto.PublicKey) ([]*big.Int, error)

	// DecryptElements applies value^d mod n to every element, results in input order.
	DecryptElements(ctx context.Context, values []*big.Int, key crypto.PrivateKey) ([]*big.Int, error)
}
