package cryptography

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/modmath"

	"golang.org/x/sync/errgroup"
)

// minChunkSize keeps tiny payloads (a short string) on a single goroutine.
const minChunkSize = 256

var (
	one      = big.NewInt(1)
	two      = big.NewInt(2)
	maxByte  = big.NewInt(255)
	maxRune  = big.NewInt(utf8.MaxRune)
	minPrime = big.NewInt(crypto.MinPrimeInput)
)

// textbookRSAProcessor struct that implements the TextbookRSAProcessor interface
type textbookRSAProcessor struct {
	workers int
	logger  logger.Logger
}

// NewTextbookRSAProcessor creates a processor that fans element-wise
// exponentiation out over at most workers goroutines.
func NewTextbookRSAProcessor(workers int, logger logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	return &textbookRSAProcessor{
		workers: workers,
		logger:  logger,
	}, nil
}

// DeriveKeys computes n = p*q*31, phi = (p-1)(q-1)*30, the smallest odd e >= 3
// coprime to phi and d = e^-1 mod phi. p and q are trusted to be prime.
func (r *textbookRSAProcessor) DeriveKeys(p, q *big.Int) (*crypto.Keypair, error) {
	if p == nil || q == nil || p.Cmp(minPrime) < 0 || q.Cmp(minPrime) < 0 {
		return nil, fmt.Errorf("%w: got p = %v, q = %v", crypto.ErrInvalidPrimeInput, p, q)
	}

	aux := big.NewInt(crypto.AuxiliaryPrime)

	n := new(big.Int).Mul(p, q)
	n.Mul(n, aux)

	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	phi.Mul(phi, new(big.Int).Sub(aux, one))

	e, err := publicExponent(phi)
	if err != nil {
		return nil, err
	}

	d, err := modmath.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	r.logger.Info("Derived textbook RSA keypair with n = ", n, ", e = ", e)

	return &crypto.Keypair{
		P:              new(big.Int).Set(p),
		Q:              new(big.Int).Set(q),
		AuxiliaryPrime: aux,
		N:              n,
		Phi:            phi,
		E:              e,
		D:              d,
	}, nil
}

// publicExponent returns the smallest odd e >= 3 with gcd(e, phi) == 1.
func publicExponent(phi *big.Int) (*big.Int, error) {
	for e := big.NewInt(crypto.FirstPublicExponent); e.Cmp(phi) < 0; e.Add(e, two) {
		if modmath.GCD(e, phi).Cmp(one) == 0 {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: no odd public exponent is coprime to phi = %s", crypto.ErrNoInverseExists, phi)
}

// EncryptScalar computes value^e mod n.
func (r *textbookRSAProcessor) EncryptScalar(value *big.Int, key crypto.PublicKey) (*big.Int, error) {
	if err := checkPublicKey(key); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errors.New("value cannot be nil")
	}

	c, err := modmath.ModPow(value, key.E, key.N)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt value: %w", err)
	}
	return c, nil
}

// DecryptScalar computes value^d mod n.
func (r *textbookRSAProcessor) DecryptScalar(value *big.Int, key crypto.PrivateKey) (*big.Int, error) {
	if err := checkPrivateKey(key); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errors.New("value cannot be nil")
	}

	m, err := modmath.ModPow(value, key.D, key.N)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt value: %w", err)
	}
	return m, nil
}

// EncryptText maps every character to its code point and encrypts it.
func (r *textbookRSAProcessor) EncryptText(ctx context.Context, text string, key crypto.PublicKey) ([]*big.Int, error) {
	runes := []rune(text)
	values := make([]*big.Int, len(runes))
	for i, ch := range runes {
		values[i] = big.NewInt(int64(ch))
	}

	ciphertext, err := r.EncryptElements(ctx, values, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt text: %w", err)
	}

	r.logger.Info("Encrypted text of ", len(runes), " characters")
	return ciphertext, nil
}

// DecryptText decrypts every element and maps it back to a character.
// There is no integrity check; a wrong key surfaces as ErrPlaintextOutOfRange
// at best and as garbage text at worst.
func (r *textbookRSAProcessor) DecryptText(ctx context.Context, ciphertext []*big.Int, key crypto.PrivateKey) (string, error) {
	values, err := r.DecryptElements(ctx, ciphertext, key)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt text: %w", err)
	}

	runes := make([]rune, len(values))
	for i, v := range values {
		if v.Cmp(maxRune) > 0 || !utf8.ValidRune(rune(v.Int64())) {
			return "", fmt.Errorf("%w: element %d decrypts to %s, not a code point", crypto.ErrPlaintextOutOfRange, i, v)
		}
		runes[i] = rune(v.Int64())
	}

	r.logger.Info("Decrypted text of ", len(runes), " characters")
	return string(runes), nil
}

// EncryptBytes encrypts every byte of data independently.
func (r *textbookRSAProcessor) EncryptBytes(ctx context.Context, data []byte, key crypto.PublicKey) ([]*big.Int, error) {
	values := make([]*big.Int, len(data))
	for i, b := range data {
		values[i] = big.NewInt(int64(b))
	}

	ciphertext, err := r.EncryptElements(ctx, values, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt bytes: %w", err)
	}

	r.logger.Info("Encrypted byte stream of length ", len(data))
	return ciphertext, nil
}

// DecryptBytes decrypts every element back into a byte.
func (r *textbookRSAProcessor) DecryptBytes(ctx context.Context, ciphertext []*big.Int, key crypto.PrivateKey) ([]byte, error) {
	values, err := r.DecryptElements(ctx, ciphertext, key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt bytes: %w", err)
	}

	data := make([]byte, len(values))
	for i, v := range values {
		if v.Cmp(maxByte) > 0 {
			return nil, fmt.Errorf("%w: element %d decrypts to %s, not a byte", crypto.ErrPlaintextOutOfRange, i, v)
		}
		data[i] = byte(v.Uint64())
	}

	r.logger.Info("Decrypted byte stream of length ", len(data))
	return data, nil
}

// EncryptElements computes value^e mod n for every element.
func (r *textbookRSAProcessor) EncryptElements(ctx context.Context, values []*big.Int, key crypto.PublicKey) ([]*big.Int, error) {
	if err := checkPublicKey(key); err != nil {
		return nil, err
	}
	return r.exponentiate(ctx, values, key.E, key.N)
}

// DecryptElements computes value^d mod n for every element.
func (r *textbookRSAProcessor) DecryptElements(ctx context.Context, values []*big.Int, key crypto.PrivateKey) ([]*big.Int, error) {
	if err := checkPrivateKey(key); err != nil {
		return nil, err
	}
	return r.exponentiate(ctx, values, key.D, key.N)
}

// exponentiate splits values into contiguous chunks, one goroutine per chunk,
// and writes each result back at its input index.
func (r *textbookRSAProcessor) exponentiate(ctx context.Context, values []*big.Int, exponent, modulus *big.Int) ([]*big.Int, error) {
	out := make([]*big.Int, len(values))
	if len(values) == 0 {
		return out, nil
	}

	chunk := (len(values) + r.workers - 1) / r.workers
	if chunk < minChunkSize {
		chunk = minChunkSize
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for start := 0; start < len(values); start += chunk {
		start := start // per-iteration copy (go.mod targets go 1.21 loop semantics)
		end := min(start+chunk, len(values))

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if values[i] == nil {
					return fmt.Errorf("%w: element %d is empty", crypto.ErrMalformedCiphertextInput, i)
				}

				v, err := modmath.ModPow(values[i], exponent, modulus)
				if err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
				out[i] = v
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Debug("Exponentiated ", len(values), " elements in chunks of ", chunk)
	return out, nil
}

func checkPublicKey(key crypto.PublicKey) error {
	if key.N == nil || key.E == nil {
		return errors.New("public key cannot be nil")
	}
	return nil
}

func checkPrivateKey(key crypto.PrivateKey) error {
	if key.N == nil || key.D == nil {
		return errors.New("private key cannot be nil")
	}
	return nil
}
