package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxPEMKeyLength bounds accepted key text; a PKCS#8 PEM of an 8192-bit private key is well under this.
const MaxPEMKeyLength = 16 * 1024

// PEMKeyTag is the struct tag name PEMKeyValidation is registered under.
const PEMKeyTag = "pemkey"

// PEMKeyValidation accepts non-blank key text of bounded length.
// It deliberately does not require PEM delimiters: missing or damaged delimiters are repaired during key resolution.
func PEMKeyValidation(fl validator.FieldLevel) bool {
	text := fl.Field().String()
	if len(text) > MaxPEMKeyLength {
		return false
	}
	return strings.TrimSpace(text) != ""
}

// Register adds the custom validations of this package to v.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(PEMKeyTag, PEMKeyValidation)
}
