package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
)

// ImageSessionModel is the GORM database model for image sessions (infrastructure concern)
type ImageSessionModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated    time.Time `gorm:"not null;index"`
	Name               string    `gorm:"not null;index;type:varchar(255)"`
	Width              int       `gorm:"not null"`
	Height             int       `gorm:"not null"`
	Modulus            string    `gorm:"not null;type:text"`
	PublicExponent     string    `gorm:"not null;type:text"`
	Ciphertext         string    `gorm:"not null;type:text"`
	EncryptedImagePath string    `gorm:"not null;type:varchar(1024)"`
}

// TableName specifies the table name for GORM
func (ImageSessionModel) TableName() string {
	return "image_sessions"
}

// ToDomain converts GORM model to domain entity
func (m *ImageSessionModel) ToDomain() (*sessions.ImageSession, error) {
	modulus, ok := new(big.Int).SetString(m.Modulus, 10)
	if !ok {
		return nil, fmt.Errorf("stored modulus of session %s is not an integer", m.ID)
	}

	exponent, ok := new(big.Int).SetString(m.PublicExponent, 10)
	if !ok {
		return nil, fmt.Errorf("stored public exponent of session %s is not an integer", m.ID)
	}

	ciphertext, err := cryptography.ParseCiphertext(m.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("stored ciphertext of session %s: %w", m.ID, err)
	}

	return &sessions.ImageSession{
		ID:                 m.ID,
		DateTimeCreated:    m.DateTimeCreated,
		Name:               m.Name,
		Width:              m.Width,
		Height:             m.Height,
		Modulus:            modulus,
		PublicExponent:     exponent,
		Ciphertext:         ciphertext,
		EncryptedImagePath: m.EncryptedImagePath,
	}, nil
}

// FromDomain converts domain entity to GORM model
func (m *ImageSessionModel) FromDomain(s *sessions.ImageSession) {
	m.ID = s.ID
	m.DateTimeCreated = s.DateTimeCreated
	m.Name = s.Name
	m.Width = s.Width
	m.Height = s.Height
	m.Modulus = s.Modulus.String()
	m.PublicExponent = s.PublicExponent.String()
	m.Ciphertext = cryptography.FormatCiphertext(s.Ciphertext)
	m.EncryptedImagePath = s.EncryptedImagePath
}
