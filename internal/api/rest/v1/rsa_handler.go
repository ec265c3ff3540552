package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// RSAHandler defines the interface for handling RSA operations
type RSAHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	PublicKey(ctx *gin.Context)
}

// rsaHandler struct holds the services
type rsaHandler struct {
	rsaService cryptoalg.RSAService
}

// NewRSAHandler creates a new RSAHandler
func NewRSAHandler(rsaService cryptoalg.RSAService) RSAHandler {
	return &rsaHandler{
		rsaService: rsaService,
	}
}

// Encrypt handles the POST request to encrypt a Base64 payload
// @Summary Encrypt data with RSA/ECB/PKCS1Padding
// @Description Encrypt Base64 data with a PEM public key, or with the public key derived from a PEM private key.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Key and data"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *rsaHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	encrypted, err := handler.rsaService.Encrypt(request.PEMKey, request.Data)
	if err != nil {
		respondWithError(ctx, "error encrypting data", err)
		return
	}

	ctx.JSON(http.StatusOK, DataResponse{Data: encrypted})
}

// Decrypt handles the POST request to decrypt a Base64 ciphertext
// @Summary Decrypt data with RSA/ECB/PKCS1Padding
// @Description Decrypt Base64 ciphertext with a PEM private key.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Key and ciphertext"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *rsaHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	decrypted, err := handler.rsaService.Decrypt(request.PEMKey, request.EncryptedData)
	if err != nil {
		respondWithError(ctx, "error decrypting data", err)
		return
	}

	ctx.JSON(http.StatusOK, DataResponse{Data: decrypted})
}

// Sign handles the POST request to sign a Base64 payload
// @Summary Create a raw RSA signature
// @Description Sign Base64 data with a PEM private key. The data is not hashed, so callers send a digest.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Key and data"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sign [post]
func (handler *rsaHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	signature, err := handler.rsaService.Sign(request.PEMKey, request.Data)
	if err != nil {
		respondWithError(ctx, "error signing data", err)
		return
	}

	ctx.JSON(http.StatusOK, DataResponse{Data: signature})
}

// Verify handles the POST request to verify a raw RSA signature
// @Summary Verify a raw RSA signature
// @Description Verify a Base64 signature over Base64 data with a PEM public key, or the public key derived from a private key.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Key, data and signature"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /verify [post]
func (handler *rsaHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	valid, err := handler.rsaService.VerifySignature(request.PEMKey, request.Data, request.Signature)
	if err != nil {
		respondWithError(ctx, "error verifying signature", err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

// PublicKey handles the POST request to export the public key of a PEM key
// @Summary Export a public key
// @Description Return the public key of a PEM key as a PKIX PEM block, deriving it from a private key if needed.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body PublicKeyRequest true "Key"
// @Success 200 {object} PublicKeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /public-key [post]
func (handler *rsaHandler) PublicKey(ctx *gin.Context) {
	var request PublicKeyRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	publicKeyPEM, err := handler.rsaService.PublicKeyPEM(request.PEMKey)
	if err != nil {
		respondWithError(ctx, "error exporting public key", err)
		return
	}

	ctx.JSON(http.StatusOK, PublicKeyResponse{PublicKey: publicKeyPEM})
}

// bindAndValidate decodes the JSON body into request and runs validate, writing a 400 response on failure.
func bindAndValidate(ctx *gin.Context, request any, validate func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(ctx, fmt.Sprintf("invalid request body: %v", err.Error())))
		return false
	}

	if err := validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse(ctx, err.Error()))
		return false
	}

	return true
}

func respondWithError(ctx *gin.Context, message string, err error) {
	ctx.JSON(statusForError(err), newErrorResponse(ctx, fmt.Sprintf("%s: %v", message, err.Error())))
}

// statusForError maps the error kinds of the RSA service to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, cryptoalg.ErrKeyParse),
		errors.Is(err, cryptoalg.ErrKeyDerivation),
		errors.Is(err, cryptoalg.ErrUnsupportedKeyType),
		errors.Is(err, cryptoalg.ErrInvalidEncoding):
		return http.StatusUnprocessableEntity
	case errors.Is(err, cryptoalg.ErrPadding),
		errors.Is(err, cryptoalg.ErrCryptoBackend):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newErrorResponse(ctx *gin.Context, message string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		RequestID: ctx.GetString(RequestIDKey),
	}
}
