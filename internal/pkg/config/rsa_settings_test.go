//go:build unit
// +build unit

package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSASettingsValidation(t *testing.T) {
	valid := DefaultRSASettings()
	require.NoError(t, valid.Validate())

	negative := DefaultRSASettings()
	negative.Workers = -1
	assert.Error(t, negative.Validate())

	missingDir := DefaultRSASettings()
	missingDir.EncryptedImageDir = ""
	assert.Error(t, missingDir.Validate())
}

func TestRSASettings_EffectiveWorkers(t *testing.T) {
	s := DefaultRSASettings()
	assert.Equal(t, runtime.NumCPU(), s.EffectiveWorkers())

	s.Workers = 3
	assert.Equal(t, 3, s.EffectiveWorkers())
}
