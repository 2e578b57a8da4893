//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockKeyService := new(MockKeyService)
	mockNumberService := new(MockNumberService)
	mockTextService := new(MockTextService)
	mockFileService := new(MockFileService)
	mockImageEncryptionService := new(MockImageEncryptionService)
	mockImageDecryptionService := new(MockImageDecryptionService)
	mockImageSessionMetadataService := new(MockImageSessionMetadataService)

	mockImageSessionMetadataService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockImageSessionMetadataService.On("GetByID", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockImageSessionMetadataService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

	settings := config.DefaultRSASettings()

	r := gin.New()
	SetupRoutes(r, mockKeyService, mockNumberService, mockTextService, mockFileService,
		mockImageEncryptionService, mockImageDecryptionService, mockImageSessionMetadataService, &settings)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/rsa/keys"},
		{"POST", "/api/v1/rsa/numbers/encrypt"},
		{"POST", "/api/v1/rsa/numbers/decrypt"},
		{"POST", "/api/v1/rsa/texts/encrypt"},
		{"POST", "/api/v1/rsa/texts/decrypt"},
		{"POST", "/api/v1/rsa/files/encrypt"},
		{"POST", "/api/v1/rsa/files/decrypt"},
		{"POST", "/api/v1/rsa/images"},
		{"GET", "/api/v1/rsa/images"},
		{"POST", "/api/v1/rsa/images/abc/decrypt"},
		{"DELETE", "/api/v1/rsa/images/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
