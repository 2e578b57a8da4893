package validators

import (
	"math/big"

	"github.com/go-playground/validator/v10"
)

// Tags registered by Register
const (
	DecimalIntegerTag = "decimal_int"
	PrimeInputTag     = "decimal_min2"
)

var minPrimeInput = big.NewInt(2)

// DecimalIntegerValidation checks that a string field is a base-10 integer of any size.
func DecimalIntegerValidation(fl validator.FieldLevel) bool {
	_, ok := new(big.Int).SetString(fl.Field().String(), 10)
	return ok
}

// PrimeInputValidation checks that a string field is a base-10 integer >= 2.
// Primality is not checked.
func PrimeInputValidation(fl validator.FieldLevel) bool {
	v, ok := new(big.Int).SetString(fl.Field().String(), 10)
	return ok && v.Cmp(minPrimeInput) >= 0
}

// Register adds the decimal validations to v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(DecimalIntegerTag, DecimalIntegerValidation); err != nil {
		return err
	}
	return v.RegisterValidation(PrimeInputTag, PrimeInputValidation)
}
