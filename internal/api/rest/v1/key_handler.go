package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key derivation
type KeyHandler interface {
	DeriveKeys(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyService payloads.KeyService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyService payloads.KeyService) KeyHandler {
	return &keyHandler{
		keyService: keyService,
	}
}

// DeriveKeys handles the POST request to derive a keypair from two primes
// @Summary Derive a textbook RSA keypair
// @Description Combine p, q and the auxiliary prime 31 into n, phi, e and d.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body DeriveKeysRequest true "Prime inputs"
// @Success 200 {object} KeypairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) DeriveKeys(ctx *gin.Context) {
	var request DeriveKeysRequest
	if !bindAndValidate(ctx, &request) {
		return
	}

	values, ok := parseDecimals(ctx, request.P, request.Q)
	if !ok {
		return
	}

	keypair, err := handler.keyService.Derive(ctx, values[0], values[1])
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deriving keys: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, NewKeypairResponse(keypair))
}
