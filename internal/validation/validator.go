package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// Decimal fields validate through their canonical string form
	v.RegisterCustomTypeFunc(decimalToString, decimal.Decimal{})

	_ = v.RegisterValidation("usdc_amount", validateUSDCAmount)
	_ = v.RegisterValidation("trust_mode", validateTrustMode)
	_ = v.RegisterValidation("account_status", validateAccountStatus)
	_ = v.RegisterValidation("basis_points", validateBasisPoints)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func decimalToString(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// Custom validation functions

// validateUSDCAmount validates that an amount is positive and representable
// in USDC's 6 fractional digits
func validateUSDCAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}

	return amount.Exponent() >= -6
}

// validateTrustMode validates that trust mode is one of the allowed modes
func validateTrustMode(fl validator.FieldLevel) bool {
	mode := strings.ToUpper(fl.Field().String())
	validModes := map[string]bool{
		"MANUAL": true,
		"AUTO":   true,
	}
	return validModes[mode]
}

// validateAccountStatus validates that account status is one of the allowed states
func validateAccountStatus(fl validator.FieldLevel) bool {
	status := strings.ToLower(fl.Field().String())
	validStatuses := map[string]bool{
		"active":   true,
		"inactive": true,
	}
	return validStatuses[status]
}

// validateBasisPoints validates a fee or slippage expressed in basis points
func validateBasisPoints(fl validator.FieldLevel) bool {
	bps := fl.Field().Int()
	return bps >= 0 && bps < 10000
}
