package cryptoalg

import (
	"context"
	"image"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
)

// ImageCodec maps images into flat plane arrays and back.
type ImageCodec interface {
	// LoadImage decodes the image at path.
	LoadImage(path string) (image.Image, error)

	// SaveImage encodes img by the extension of path and returns the path actually written.
	SaveImage(img image.Image, path string) (string, error)

	// Decompose splits img into blue, green and red planes in row-major order.
	Decompose(img image.Image) (b, g, r crypto.PlaneArray, dims crypto.Dimensions)

	// Recompose merges a flat b|g|r array of length 3 x width x height into an image.
	Recompose(flat crypto.PlaneArray, dims crypto.Dimensions) (*image.NRGBA, error)

	// NormalizeToBytes linearly rescales values into [0, 255] for display only.
	NormalizeToBytes(values []*big.Int) crypto.PlaneArray

	// ClampToBytes clamps values into [0, 255].
	ClampToBytes(values []*big.Int) crypto.PlaneArray
}

// ImageProcessor runs the encrypt and decrypt pipelines over image files.
type ImageProcessor interface {
	// EncryptImage encrypts every pixel intensity of the image at imagePath, writes a
	// normalized display image to outputPath and returns the raw ciphertext bundle.
	EncryptImage(ctx context.Context, imagePath string, p, q *big.Int, outputPath string) (*crypto.CiphertextBundle, error)

	// DecryptImage decrypts the raw ciphertext of bundle with key and writes the image to outputPath.
	DecryptImage(ctx context.Context, bundle *crypto.CiphertextBundle, key crypto.PrivateKey, outputPath string) (string, error)
}
