package payloads

import (
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
)

// NumberEncryption is the result of encrypting a single integer under a fresh keypair
type NumberEncryption struct {
	Ciphertext *big.Int
	Keypair    *crypto.Keypair
}

// SequenceEncryption is the result of encrypting text or file content under a fresh keypair.
// Ciphertext keeps one element per plaintext unit in input order.
type SequenceEncryption struct {
	Ciphertext []*big.Int
	Keypair    *crypto.Keypair
}
