//go:build unit
// +build unit

package sessions

import (
	"math/big"
	"testing"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() *ImageSession {
	ciphertext := make([]*big.Int, 6)
	for i := range ciphertext {
		ciphertext[i] = big.NewInt(int64(1000 + i))
	}

	return &ImageSession{
		ID:                 uuid.NewString(),
		DateTimeCreated:    time.Now(),
		Name:               "lena.png",
		Width:              2,
		Height:             1,
		Modulus:            big.NewInt(10013),
		PublicExponent:     big.NewInt(7),
		Ciphertext:         ciphertext,
		EncryptedImagePath: "encrypted_images/encrypted_lena.png",
	}
}

func TestImageSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *ImageSession)
		wantErr bool
	}{
		{"valid", func(s *ImageSession) {}, false},
		{"invalid id", func(s *ImageSession) { s.ID = "not-a-uuid" }, true},
		{"missing name", func(s *ImageSession) { s.Name = "" }, true},
		{"zero width", func(s *ImageSession) { s.Width = 0 }, true},
		{"missing modulus", func(s *ImageSession) { s.Modulus = nil }, true},
		{"empty ciphertext", func(s *ImageSession) { s.Ciphertext = nil }, true},
		{"ciphertext length mismatch", func(s *ImageSession) { s.Height = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImageSession_Bundle(t *testing.T) {
	s := validSession()
	key := crypto.PrivateKey{N: big.NewInt(10013), D: big.NewInt(3703)}

	bundle := s.Bundle(key)
	require.NoError(t, bundle.Validate())
	assert.Equal(t, s.Ciphertext, bundle.Ciphertext)
	assert.Equal(t, key, bundle.PrivateKey)
	assert.Equal(t, crypto.Dimensions{Width: 2, Height: 1}, bundle.Dimensions)
	assert.Equal(t, s.PublicKey(), bundle.PublicKey)
}

func TestImageSessionQuery_Validate(t *testing.T) {
	q := NewImageSessionQuery()
	assert.NoError(t, q.Validate())

	q.SortBy = "date_time_created"
	q.SortOrder = "desc"
	q.Limit = 10
	assert.NoError(t, q.Validate())

	q.SortBy = "modulus; DROP TABLE image_sessions"
	assert.Error(t, q.Validate())

	q = NewImageSessionQuery()
	q.Limit = -1
	assert.Error(t, q.Validate())
}
