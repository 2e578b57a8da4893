//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type primes struct {
	P     string `validate:"required,decimal_min2"`
	Value string `validate:"omitempty,decimal_int"`
}

func TestDecimalValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	tests := []struct {
		name    string
		input   primes
		wantErr bool
	}{
		{"smallest prime input", primes{P: "2"}, false},
		{"big prime input", primes{P: "170141183460469231731687303715884105727"}, false},
		{"below two", primes{P: "1"}, true},
		{"negative", primes{P: "-7"}, true},
		{"not a number", primes{P: "seventeen"}, true},
		{"fraction", primes{P: "17.0"}, true},
		{"negative value", primes{P: "17", Value: "-42"}, false},
		{"bad value", primes{P: "17", Value: "4x2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
