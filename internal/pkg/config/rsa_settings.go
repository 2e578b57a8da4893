package config

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
)

// Default directories used when persisting image artifacts
const (
	DefaultUploadDir         = "uploaded_images"
	DefaultEncryptedImageDir = "encrypted_images"
	DefaultDecryptedImageDir = "decrypted_images"
)

// RSASettings controls the textbook RSA engine and where image artifacts are written.
// A Workers value of 0 means one worker per CPU.
type RSASettings struct {
	Workers           int    `mapstructure:"workers" validate:"gte=0,lte=256"`
	UploadDir         string `mapstructure:"upload_dir" validate:"required"`
	EncryptedImageDir string `mapstructure:"encrypted_image_dir" validate:"required"`
	DecryptedImageDir string `mapstructure:"decrypted_image_dir" validate:"required"`
}

// DefaultRSASettings returns settings with the default artifact directories
func DefaultRSASettings() RSASettings {
	return RSASettings{
		UploadDir:         DefaultUploadDir,
		EncryptedImageDir: DefaultEncryptedImageDir,
		DecryptedImageDir: DefaultDecryptedImageDir,
	}
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	return nil
}

// EffectiveWorkers resolves the worker count, substituting the CPU count for 0
func (s *RSASettings) EffectiveWorkers() int {
	if s.Workers <= 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}
