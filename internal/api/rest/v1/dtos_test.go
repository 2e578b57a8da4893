//go:build unit
// +build unit

package v1

import (
	"math/big"
	"testing"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeysRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   DeriveKeysRequest
		shouldErr bool
	}{
		{"Valid small primes", DeriveKeysRequest{P: "17", Q: "19"}, false},
		{"Valid smallest input", DeriveKeysRequest{P: "2", Q: "2"}, false},
		{"Valid big prime", DeriveKeysRequest{P: "170141183460469231731687303715884105727", Q: "19"}, false},
		{"Missing q", DeriveKeysRequest{P: "17"}, true},
		{"Below two", DeriveKeysRequest{P: "1", Q: "19"}, true},
		{"Not an integer", DeriveKeysRequest{P: "1.5", Q: "19"}, true},
		{"Exponent notation", DeriveKeysRequest{P: "1e3", Q: "19"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestDecryptRequests_Validate(t *testing.T) {
	require.NoError(t, (&DecryptNumberRequest{D: "3703", N: "10013", Ciphertext: "1222"}).Validate())
	require.NoError(t, (&DecryptNumberRequest{D: "3703", N: "10013", Ciphertext: "-5"}).Validate())
	require.Error(t, (&DecryptNumberRequest{D: "3703", N: "10013"}).Validate())

	require.NoError(t, (&DecryptTextRequest{D: "3703", N: "10013", Ciphertext: ""}).Validate())
	require.Error(t, (&DecryptTextRequest{D: "x", N: "10013"}).Validate())

	require.NoError(t, (&DecryptImageRequest{D: "3703"}).Validate())
	require.Error(t, (&DecryptImageRequest{D: "3703", N: "abc"}).Validate())
	require.Error(t, (&DecryptImageRequest{}).Validate())
}

func TestNewKeypairResponse(t *testing.T) {
	response := NewKeypairResponse(testKeypair())

	assert.Equal(t, "10013", response.N)
	assert.Equal(t, "8640", response.Phi)
	assert.Equal(t, "7", response.E)
	assert.Equal(t, "3703", response.D)
	assert.Equal(t, "31", response.AuxiliaryPrime)
	assert.Equal(t, "Public Key (n, e): (10013, 7), Private Key (d): 3703", response.Summary)
}

func TestNewImageSessionResponse(t *testing.T) {
	response := NewImageSessionResponse(testSession())

	assert.Equal(t, "10013", response.N)
	assert.Equal(t, "7", response.E)
	assert.Equal(t, 3, response.CiphertextLength)
}

func testKeypair() *crypto.Keypair {
	return &crypto.Keypair{
		P:              big.NewInt(17),
		Q:              big.NewInt(19),
		AuxiliaryPrime: big.NewInt(crypto.AuxiliaryPrime),
		N:              big.NewInt(10013),
		Phi:            big.NewInt(8640),
		E:              big.NewInt(7),
		D:              big.NewInt(3703),
	}
}

func testSession() *sessions.ImageSession {
	return &sessions.ImageSession{
		ID:                 "7f0c2b0e-6a52-4f4e-9c37-5d7c2f4f1a11",
		DateTimeCreated:    time.Now(),
		Name:               "lena.png",
		Width:              1,
		Height:             1,
		Modulus:            big.NewInt(10013),
		PublicExponent:     big.NewInt(7),
		Ciphertext:         []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
		EncryptedImagePath: "encrypted_images/encrypted_lena.png",
	}
}
