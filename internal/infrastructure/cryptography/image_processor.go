package cryptography

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"
)

// imageProcessor struct that implements the ImageProcessor interface
type imageProcessor struct {
	rsaProcessor cryptoalg.TextbookRSAProcessor
	codec        cryptoalg.ImageCodec
	logger       logger.Logger
}

// NewImageProcessor creates and returns a new instance of imageProcessor
func NewImageProcessor(rsaProcessor cryptoalg.TextbookRSAProcessor, codec cryptoalg.ImageCodec, logger logger.Logger) (cryptoalg.ImageProcessor, error) {
	if rsaProcessor == nil || codec == nil {
		return nil, errors.New("rsa processor and image codec are required")
	}
	return &imageProcessor{
		rsaProcessor: rsaProcessor,
		codec:        codec,
		logger:       logger,
	}, nil
}

// EncryptImage derives a keypair from p and q, encrypts every intensity of the
// b|g|r planes and stores a normalized rendering of the ciphertext at outputPath.
// The rendering is lossy; only the returned raw ciphertext can be decrypted.
func (p *imageProcessor) EncryptImage(ctx context.Context, imagePath string, prime1, prime2 *big.Int, outputPath string) (*crypto.CiphertextBundle, error) {
	keypair, err := p.rsaProcessor.DeriveKeys(prime1, prime2)
	if err != nil {
		return nil, err
	}

	img, err := p.codec.LoadImage(imagePath)
	if err != nil {
		return nil, err
	}

	b, g, r, dims := p.codec.Decompose(img)
	plain := make([]*big.Int, 0, dims.FlatLength())
	for _, plane := range []crypto.PlaneArray{b, g, r} {
		for _, v := range plane {
			plain = append(plain, big.NewInt(int64(v)))
		}
	}

	ciphertext, err := p.rsaProcessor.EncryptElements(ctx, plain, keypair.PublicKey())
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt image %s: %w", imagePath, err)
	}

	rendering, err := p.codec.Recompose(p.codec.NormalizeToBytes(ciphertext), dims)
	if err != nil {
		return nil, err
	}

	written, err := p.codec.SaveImage(rendering, outputPath)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Encrypted ", dims.Width, "x", dims.Height, " image ", imagePath)

	return &crypto.CiphertextBundle{
		Ciphertext:         ciphertext,
		PublicKey:          keypair.PublicKey(),
		PrivateKey:         keypair.PrivateKey(),
		Dimensions:         dims,
		EncryptedImagePath: written,
	}, nil
}

// DecryptImage decrypts the raw ciphertext of bundle, clamps the result into
// bytes and writes the image to outputPath.
func (p *imageProcessor) DecryptImage(ctx context.Context, bundle *crypto.CiphertextBundle, key crypto.PrivateKey, outputPath string) (string, error) {
	if err := bundle.Validate(); err != nil {
		return "", err
	}

	plain, err := p.rsaProcessor.DecryptElements(ctx, bundle.Ciphertext, key)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt image: %w", err)
	}

	img, err := p.codec.Recompose(p.codec.ClampToBytes(plain), bundle.Dimensions)
	if err != nil {
		return "", err
	}

	written, err := p.codec.SaveImage(img, outputPath)
	if err != nil {
		return "", err
	}

	p.logger.Info("Decrypted ", bundle.Dimensions.Width, "x", bundle.Dimensions.Height, " image to ", written)
	return written, nil
}
