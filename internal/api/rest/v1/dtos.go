package v1

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// requestValidator is built once with the custom tags of the validators package.
var requestValidator = sync.OnceValues(func() (*validator.Validate, error) {
	v := validator.New()
	if err := validators.Register(v); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return v, nil
})

// EncryptRequest is the body of POST /encrypt
type EncryptRequest struct {
	PEMKey string `json:"pem_key" validate:"required,pemkey"`
	Data   string `json:"data" validate:"omitempty,base64"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateStruct(r)
}

// DecryptRequest is the body of POST /decrypt
type DecryptRequest struct {
	PEMKey        string `json:"pem_key" validate:"required,pemkey"`
	EncryptedData string `json:"encrypted_data" validate:"required,base64"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// SignRequest is the body of POST /sign
type SignRequest struct {
	PEMKey string `json:"pem_key" validate:"required,pemkey"`
	Data   string `json:"data" validate:"omitempty,base64"`
}

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error {
	return validateStruct(r)
}

// VerifyRequest is the body of POST /verify
type VerifyRequest struct {
	PEMKey    string `json:"pem_key" validate:"required,pemkey"`
	Data      string `json:"data" validate:"omitempty,base64"`
	Signature string `json:"signature" validate:"required,base64"`
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	return validateStruct(r)
}

// PublicKeyRequest is the body of POST /public-key
type PublicKeyRequest struct {
	PEMKey string `json:"pem_key" validate:"required,pemkey"`
}

// Validate for validating PublicKeyRequest struct
func (r *PublicKeyRequest) Validate() error {
	return validateStruct(r)
}

// DataResponse carries a Base64 result of encrypt, decrypt and sign
type DataResponse struct {
	Data string `json:"data"`
}

// VerifyResponse carries the outcome of a signature verification
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// PublicKeyResponse carries a PKIX PEM encoded public key
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// ErrorResponse represents an error message returned to the client
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func validateStruct(s any) error {
	validate, err := requestValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
