package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImageHandler defines the interface for handling image sessions
type ImageHandler interface {
	Encrypt(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// imageHandler struct holds the services
type imageHandler struct {
	imageEncryptionService      sessions.ImageEncryptionService
	imageDecryptionService      sessions.ImageDecryptionService
	imageSessionMetadataService sessions.ImageSessionMetadataService
	settings                    *config.RSASettings
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(
	imageEncryptionService sessions.ImageEncryptionService,
	imageDecryptionService sessions.ImageDecryptionService,
	imageSessionMetadataService sessions.ImageSessionMetadataService,
	settings *config.RSASettings,
) ImageHandler {
	return &imageHandler{
		imageEncryptionService:      imageEncryptionService,
		imageDecryptionService:      imageDecryptionService,
		imageSessionMetadataService: imageSessionMetadataService,
		settings:                    settings,
	}
}

// Encrypt handles the POST request to encrypt an uploaded image into a new session
// @Summary Encrypt an image
// @Description Encrypt every pixel intensity, store the raw ciphertext as a session and return the private exponent once.
// @Tags Image
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to encrypt"
// @Param p formData string true "First prime"
// @Param q formData string true "Second prime"
// @Success 201 {object} ImageEncryptionResponse
// @Failure 400 {object} ErrorResponse
// @Router /images [post]
func (handler *imageHandler) Encrypt(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form data: missing file"})
		return
	}

	values, ok := parseDecimals(ctx, json.Number(ctx.PostForm("p")), json.Number(ctx.PostForm("q")))
	if !ok {
		return
	}

	uploadPath := filepath.Join(handler.settings.UploadDir, uuid.NewString(), filepath.Base(header.Filename))
	if err := os.MkdirAll(filepath.Dir(uploadPath), 0750); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("could not store upload: %v", err)})
		return
	}
	if err := ctx.SaveUploadedFile(header, uploadPath); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("could not store upload: %v", err)})
		return
	}

	session, bundle, err := handler.imageEncryptionService.Encrypt(ctx, uploadPath, values[0], values[1])
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error encrypting image: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, ImageEncryptionResponse{
		Session: NewImageSessionResponse(session),
		D:       bundle.PrivateKey.D.String(),
		Summary: fmt.Sprintf("Public Key (n, e): (%s, %s), Private Key (d): %s", bundle.PublicKey.N, bundle.PublicKey.E, bundle.PrivateKey.D),
	})
}

// ListMetadata handles the GET request to list image sessions with optional query parameters
// @Summary List image sessions
// @Tags Image
// @Produce json
// @Param name query string false "Original image name"
// @Param dateTimeCreated query string false "Creation date lower bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "id, name or date_time_created"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ImageSessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /images [get]
func (handler *imageHandler) ListMetadata(ctx *gin.Context) {
	query := sessions.NewImageSessionQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	for param, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(param); len(raw) > 0 {
			v, err := strconv.Atoi(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %s must be an integer", param)})
				return
			}
			*target = v
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	sessionList, err := handler.imageSessionMetadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := []ImageSessionResponse{}
	for _, session := range sessionList {
		listResponse = append(listResponse, NewImageSessionResponse(session))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve an image session by ID
// @Summary Retrieve an image session by ID
// @Tags Image
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ImageSessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /images/{id} [get]
func (handler *imageHandler) GetMetadataByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	session, err := handler.imageSessionMetadataService.GetByID(ctx, sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("image session with id %s not found", sessionID)})
		return
	}

	ctx.JSON(http.StatusOK, NewImageSessionResponse(session))
}

// DownloadByID handles the GET request to download the encrypted display image of a session
// @Summary Download the normalized encrypted image
// @Tags Image
// @Produce application/octet-stream
// @Param id path string true "Session ID"
// @Success 200 {file} file "Encrypted display image"
// @Failure 404 {object} ErrorResponse
// @Router /images/{id}/file [get]
func (handler *imageHandler) DownloadByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	session, err := handler.imageSessionMetadataService.GetByID(ctx, sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("image session with id %s not found", sessionID)})
		return
	}

	if _, err := os.Stat(session.EncryptedImagePath); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("encrypted image of session %s is gone", sessionID)})
		return
	}

	ctx.FileAttachment(session.EncryptedImagePath, filepath.Base(session.EncryptedImagePath))
}

// Decrypt handles the POST request to decrypt a stored session into an image
// @Summary Decrypt an image session
// @Description Decrypt the raw ciphertext of a session. Without n the stored modulus is used.
// @Tags Image
// @Accept json
// @Produce application/octet-stream
// @Param id path string true "Session ID"
// @Param requestBody body DecryptImageRequest true "Private key"
// @Success 200 {file} file "Decrypted image"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /images/{id}/decrypt [post]
func (handler *imageHandler) Decrypt(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var request DecryptImageRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	d, ok := parseDecimals(ctx, request.D)
	if !ok {
		return
	}
	key := crypto.PrivateKey{D: d[0]}

	if request.N != "" {
		n, ok := parseDecimals(ctx, request.N)
		if !ok {
			return
		}
		key.N = n[0]
	}

	written, err := handler.imageDecryptionService.Decrypt(ctx, sessionID, key)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error decrypting image session %s: %v", sessionID, err.Error())})
		return
	}

	ctx.FileAttachment(written, filepath.Base(written))
}

// DeleteByID handles the DELETE request to delete an image session by ID
// @Summary Delete an image session
// @Tags Image
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /images/{id} [delete]
func (handler *imageHandler) DeleteByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	if err := handler.imageSessionMetadataService.DeleteByID(ctx, sessionID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting image session with id %s", sessionID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted image session with id %s", sessionID)})
}
