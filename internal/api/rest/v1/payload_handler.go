package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"path/filepath"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"

	"github.com/gin-gonic/gin"
)

// maxFileUploadSize bounds the content read from a file upload
const maxFileUploadSize = 8 << 20

// PayloadHandler defines the interface for handling number, text and file payloads
type PayloadHandler interface {
	EncryptNumber(ctx *gin.Context)
	DecryptNumber(ctx *gin.Context)
	EncryptText(ctx *gin.Context)
	DecryptText(ctx *gin.Context)
	EncryptFile(ctx *gin.Context)
	DecryptFile(ctx *gin.Context)
}

// payloadHandler struct holds the services
type payloadHandler struct {
	numberService payloads.NumberService
	textService   payloads.TextService
	fileService   payloads.FileService
}

// NewPayloadHandler creates a new PayloadHandler
func NewPayloadHandler(numberService payloads.NumberService, textService payloads.TextService, fileService payloads.FileService) PayloadHandler {
	return &payloadHandler{
		numberService: numberService,
		textService:   textService,
		fileService:   fileService,
	}
}

// EncryptNumber handles the POST request to encrypt a single integer
// @Summary Encrypt an integer
// @Tags Number
// @Accept json
// @Produce json
// @Param requestBody body EncryptNumberRequest true "Primes and value"
// @Success 200 {object} NumberEncryptionResponse
// @Failure 400 {object} ErrorResponse
// @Router /numbers/encrypt [post]
func (handler *payloadHandler) EncryptNumber(ctx *gin.Context) {
	var request EncryptNumberRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	values, ok := parseDecimals(ctx, request.P, request.Q, request.Value)
	if !ok {
		return
	}

	result, err := handler.numberService.Encrypt(ctx, values[0], values[1], values[2])
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error encrypting number: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, NumberEncryptionResponse{
		Ciphertext: result.Ciphertext.String(),
		Keypair:    NewKeypairResponse(result.Keypair),
	})
}

// DecryptNumber handles the POST request to decrypt a single integer
// @Summary Decrypt an integer
// @Tags Number
// @Accept json
// @Produce json
// @Param requestBody body DecryptNumberRequest true "Private key and ciphertext"
// @Success 200 {object} PlaintextResponse
// @Failure 400 {object} ErrorResponse
// @Router /numbers/decrypt [post]
func (handler *payloadHandler) DecryptNumber(ctx *gin.Context) {
	var request DecryptNumberRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	values, ok := parseDecimals(ctx, request.D, request.N, request.Ciphertext)
	if !ok {
		return
	}

	plain, err := handler.numberService.Decrypt(ctx, values[2], crypto.PrivateKey{N: values[1], D: values[0]})
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error decrypting number: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, PlaintextResponse{Plaintext: plain.String()})
}

// EncryptText handles the POST request to encrypt a character string
// @Summary Encrypt text code point by code point
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body EncryptTextRequest true "Primes and text"
// @Success 200 {object} SequenceEncryptionResponse
// @Failure 400 {object} ErrorResponse
// @Router /texts/encrypt [post]
func (handler *payloadHandler) EncryptText(ctx *gin.Context) {
	var request EncryptTextRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	values, ok := parseDecimals(ctx, request.P, request.Q)
	if !ok {
		return
	}

	result, err := handler.textService.Encrypt(ctx, values[0], values[1], request.Text)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error encrypting text: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, SequenceEncryptionResponse{
		Ciphertext: cryptography.FormatCiphertext(result.Ciphertext),
		Keypair:    NewKeypairResponse(result.Keypair),
	})
}

// DecryptText handles the POST request to decrypt comma-separated ciphertext into text
// @Summary Decrypt text
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body DecryptTextRequest true "Private key and ciphertext"
// @Success 200 {object} PlaintextResponse
// @Failure 400 {object} ErrorResponse
// @Router /texts/decrypt [post]
func (handler *payloadHandler) DecryptText(ctx *gin.Context) {
	var request DecryptTextRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	values, ok := parseDecimals(ctx, request.D, request.N)
	if !ok {
		return
	}

	text, err := handler.textService.Decrypt(ctx, request.Ciphertext, crypto.PrivateKey{N: values[1], D: values[0]})
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error decrypting text: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, PlaintextResponse{Plaintext: text})
}

// EncryptFile handles the POST request to encrypt an uploaded file
// @Summary Encrypt an uploaded file into comma-separated ciphertext
// @Tags File
// @Accept multipart/form-data
// @Produce text/plain
// @Param file formData file true "File to encrypt"
// @Param p formData string true "First prime"
// @Param q formData string true "Second prime"
// @Param mode formData string false "text (default) or binary"
// @Success 200 {file} file "encrypted_text.txt"
// @Failure 400 {object} ErrorResponse
// @Router /files/encrypt [post]
func (handler *payloadHandler) EncryptFile(ctx *gin.Context) {
	content, _, ok := readUploadedFile(ctx)
	if !ok {
		return
	}

	values, ok := parseDecimals(ctx, json.Number(ctx.PostForm("p")), json.Number(ctx.PostForm("q")))
	if !ok {
		return
	}

	result, err := handler.fileService.Encrypt(ctx, values[0], values[1], content, ctx.PostForm("mode"))
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error encrypting file: %v", err.Error())})
		return
	}

	ctx.Header(HeaderModulus, result.Keypair.N.String())
	ctx.Header(HeaderPublicExponent, result.Keypair.E.String())
	ctx.Header(HeaderPrivateExponent, result.Keypair.D.String())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", crypto.EncryptedTextFileName))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(cryptography.FormatCiphertext(result.Ciphertext)))
}

// DecryptFile handles the POST request to decrypt an uploaded ciphertext file
// @Summary Decrypt an uploaded comma-separated ciphertext file
// @Tags File
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Ciphertext file"
// @Param d formData string true "Private exponent"
// @Param n formData string true "Modulus"
// @Param mode formData string false "text (default) or binary"
// @Success 200 {file} file "decrypted content"
// @Failure 400 {object} ErrorResponse
// @Router /files/decrypt [post]
func (handler *payloadHandler) DecryptFile(ctx *gin.Context) {
	content, fileName, ok := readUploadedFile(ctx)
	if !ok {
		return
	}

	values, ok := parseDecimals(ctx, json.Number(ctx.PostForm("d")), json.Number(ctx.PostForm("n")))
	if !ok {
		return
	}

	mode := ctx.PostForm("mode")
	plain, err := handler.fileService.Decrypt(ctx, content, crypto.PrivateKey{N: values[1], D: values[0]}, mode)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error decrypting file: %v", err.Error())})
		return
	}

	downloadName, contentType := crypto.DecryptedTextFileName, "text/plain; charset=utf-8"
	if mode == crypto.FileModeBinary {
		downloadName, contentType = crypto.DecryptedPrefix+fileName, "application/octet-stream"
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", downloadName))
	ctx.Data(http.StatusOK, contentType, plain)
}

// bindAndValidate binds a JSON body into request and validates it, writing a 400 on failure
func bindAndValidate(ctx *gin.Context, request interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return false
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return false
	}

	return true
}

// parseDecimals converts every field or writes a 400 naming the first bad one
func parseDecimals(ctx *gin.Context, fields ...json.Number) ([]*big.Int, bool) {
	values := make([]*big.Int, len(fields))
	for i, field := range fields {
		v, err := parseDecimal(field)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// readUploadedFile reads the "file" form field, writing a 400 on failure
func readUploadedFile(ctx *gin.Context) ([]byte, string, bool) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form data: missing file"})
		return nil, "", false
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not open uploaded file: %v", err)})
		return nil, "", false
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(io.LimitReader(file, maxFileUploadSize+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not read uploaded file: %v", err)})
		return nil, "", false
	}
	if len(content) > maxFileUploadSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Message: "uploaded file is too large"})
		return nil, "", false
	}

	return content, filepath.Base(header.Filename), true
}
