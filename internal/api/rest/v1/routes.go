package v1

import (
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyService payloads.KeyService,
	numberService payloads.NumberService,
	textService payloads.TextService,
	fileService payloads.FileService,
	imageEncryptionService sessions.ImageEncryptionService,
	imageDecryptionService sessions.ImageDecryptionService,
	imageSessionMetadataService sessions.ImageSessionMetadataService,
	settings *config.RSASettings) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(keyService)
	v1.POST("/keys", keyHandler.DeriveKeys)

	// Payload Routes
	payloadHandler := NewPayloadHandler(numberService, textService, fileService)
	v1.POST("/numbers/encrypt", payloadHandler.EncryptNumber)
	v1.POST("/numbers/decrypt", payloadHandler.DecryptNumber)
	v1.POST("/texts/encrypt", payloadHandler.EncryptText)
	v1.POST("/texts/decrypt", payloadHandler.DecryptText)
	v1.POST("/files/encrypt", payloadHandler.EncryptFile)
	v1.POST("/files/decrypt", payloadHandler.DecryptFile)

	// Images Routes
	imageHandler := NewImageHandler(imageEncryptionService, imageDecryptionService, imageSessionMetadataService, settings)
	v1.POST("/images", imageHandler.Encrypt)
	v1.GET("/images", imageHandler.ListMetadata)
	v1.GET("/images/:id", imageHandler.GetMetadataByID)
	v1.GET("/images/:id/file", imageHandler.DownloadByID)
	v1.POST("/images/:id/decrypt", imageHandler.Decrypt)
	v1.DELETE("/images/:id", imageHandler.DeleteByID)
}
