package v1

import (
	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, rsaService cryptoalg.RSAService) {
	v1 := r.Group(BasePath) // lookup in version file
	v1.Use(RequestID())

	rsaHandler := NewRSAHandler(rsaService)
	v1.POST("/encrypt", rsaHandler.Encrypt)
	v1.POST("/decrypt", rsaHandler.Decrypt)
	v1.POST("/sign", rsaHandler.Sign)
	v1.POST("/verify", rsaHandler.Verify)
	v1.POST("/public-key", rsaHandler.PublicKey)
}
