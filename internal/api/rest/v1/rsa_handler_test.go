//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPEMKey = "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----\n"

func newJSONContext(t *testing.T, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestRSAHandler_Encrypt_Success(t *testing.T) {
	mockService := new(MockRSAService)
	handler := NewRSAHandler(mockService)

	mockService.On("Encrypt", testPEMKey, "aGVsbG8=").Return("Y2lwaGVy", nil)

	c, w := newJSONContext(t, EncryptRequest{PEMKey: testPEMKey, Data: "aGVsbG8="})
	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response DataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Y2lwaGVy", response.Data)
	mockService.AssertExpectations(t)
}

func TestRSAHandler_Decrypt_Success(t *testing.T) {
	mockService := new(MockRSAService)
	handler := NewRSAHandler(mockService)

	mockService.On("Decrypt", testPEMKey, "Y2lwaGVy").Return("aGVsbG8=", nil)

	c, w := newJSONContext(t, DecryptRequest{PEMKey: testPEMKey, EncryptedData: "Y2lwaGVy"})
	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aGVsbG8=")
	mockService.AssertExpectations(t)
}

func TestRSAHandler_Sign_Success(t *testing.T) {
	mockService := new(MockRSAService)
	handler := NewRSAHandler(mockService)

	mockService.On("Sign", testPEMKey, "aGVsbG8=").Return("c2lnbmF0dXJl", nil)

	c, w := newJSONContext(t, SignRequest{PEMKey: testPEMKey, Data: "aGVsbG8="})
	handler.Sign(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "c2lnbmF0dXJl")
	mockService.AssertExpectations(t)
}

func TestRSAHandler_Verify(t *testing.T) {
	for _, valid := range []bool{true, false} {
		t.Run(fmt.Sprintf("valid=%t", valid), func(t *testing.T) {
			mockService := new(MockRSAService)
			handler := NewRSAHandler(mockService)

			mockService.On("VerifySignature", testPEMKey, "aGVsbG8=", "c2lnbmF0dXJl").Return(valid, nil)

			c, w := newJSONContext(t, VerifyRequest{PEMKey: testPEMKey, Data: "aGVsbG8=", Signature: "c2lnbmF0dXJl"})
			handler.Verify(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response VerifyResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, valid, response.Valid)
		})
	}
}

func TestRSAHandler_PublicKey_Success(t *testing.T) {
	mockService := new(MockRSAService)
	handler := NewRSAHandler(mockService)

	mockService.On("PublicKeyPEM", testPEMKey).Return(testPEMKey, nil)

	c, w := newJSONContext(t, PublicKeyRequest{PEMKey: testPEMKey})
	handler.PublicKey(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response PublicKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, testPEMKey, response.PublicKey)
}

func TestRSAHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"key parse", fmt.Errorf("%w: no PEM block", cryptoalg.ErrKeyParse), http.StatusUnprocessableEntity},
		{"key derivation", cryptoalg.ErrKeyDerivation, http.StatusUnprocessableEntity},
		{"unsupported key type", cryptoalg.ErrUnsupportedKeyType, http.StatusUnprocessableEntity},
		{"invalid encoding", cryptoalg.ErrInvalidEncoding, http.StatusUnprocessableEntity},
		{"padding", cryptoalg.ErrPadding, http.StatusBadRequest},
		{"crypto backend", fmt.Errorf("%w: too long", cryptoalg.ErrCryptoBackend), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRSAService)
			handler := NewRSAHandler(mockService)

			mockService.On("Decrypt", testPEMKey, "Y2lwaGVy").Return("", tt.err)

			c, w := newJSONContext(t, DecryptRequest{PEMKey: testPEMKey, EncryptedData: "Y2lwaGVy"})
			handler.Decrypt(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), "error decrypting data")
		})
	}
}

func TestRSAHandler_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"missing key", EncryptRequest{Data: "aGVsbG8="}},
		{"blank key", EncryptRequest{PEMKey: "   ", Data: "aGVsbG8="}},
		{"invalid base64", EncryptRequest{PEMKey: testPEMKey, Data: "not base64!"}},
		{"malformed json", "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRSAService)
			handler := NewRSAHandler(mockService)

			c, w := newJSONContext(t, tt.body)
			handler.Encrypt(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockService.AssertNotCalled(t, "Encrypt")
		})
	}
}
