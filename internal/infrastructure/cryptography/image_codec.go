package cryptography

import (
	"fmt"
	"image"
	"image/color"
	"math/big"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"
)

// imageCodec struct that implements the ImageCodec interface
type imageCodec struct {
	logger logger.Logger
}

// NewImageCodec creates and returns a new instance of imageCodec
func NewImageCodec(logger logger.Logger) (cryptoalg.ImageCodec, error) {
	return &imageCodec{
		logger: logger,
	}, nil
}

// Decompose splits img into blue, green and red planes. Alpha is dropped.
func (c *imageCodec) Decompose(img image.Image) (b, g, r crypto.PlaneArray, dims crypto.Dimensions) {
	bounds := img.Bounds()
	dims = crypto.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}

	b = make(crypto.PlaneArray, dims.Pixels())
	g = make(crypto.PlaneArray, dims.Pixels())
	r = make(crypto.PlaneArray, dims.Pixels())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px, _ := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			b[i], g[i], r[i] = px.B, px.G, px.R
			i++
		}
	}

	return b, g, r, dims
}

// Recompose lays a flat b|g|r array back out as an opaque image.
func (c *imageCodec) Recompose(flat crypto.PlaneArray, dims crypto.Dimensions) (*image.NRGBA, error) {
	if dims.Width <= 0 || dims.Height <= 0 || len(flat) != dims.FlatLength() {
		return nil, fmt.Errorf("%w: %d values for %dx%d", crypto.ErrDimensionMismatch, len(flat), dims.Width, dims.Height)
	}

	plane := dims.Pixels()
	b, g, r := flat[:plane], flat[plane:2*plane], flat[2*plane:]

	img := image.NewNRGBA(image.Rect(0, 0, dims.Width, dims.Height))
	for i := 0; i < plane; i++ {
		o := i * 4
		img.Pix[o] = r[i]
		img.Pix[o+1] = g[i]
		img.Pix[o+2] = b[i]
		img.Pix[o+3] = 0xff
	}

	return img, nil
}

// NormalizeToBytes maps values to floor(255 * (v - min) / (max - min)).
// A constant sequence maps to all zeros.
func (c *imageCodec) NormalizeToBytes(values []*big.Int) crypto.PlaneArray {
	out := make(crypto.PlaneArray, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v.Cmp(lo) < 0 {
			lo = v
		}
		if v.Cmp(hi) > 0 {
			hi = v
		}
	}

	span := new(big.Int).Sub(hi, lo)
	if span.Sign() == 0 {
		return out
	}

	scaled := new(big.Int)
	for i, v := range values {
		scaled.Sub(v, lo)
		scaled.Mul(scaled, maxByte)
		scaled.Quo(scaled, span)
		out[i] = byte(scaled.Uint64())
	}

	return out
}

// ClampToBytes clamps every value into [0, 255].
func (c *imageCodec) ClampToBytes(values []*big.Int) crypto.PlaneArray {
	out := make(crypto.PlaneArray, len(values))
	for i, v := range values {
		switch {
		case v.Sign() <= 0:
			out[i] = 0
		case v.Cmp(maxByte) >= 0:
			out[i] = 0xff
		default:
			out[i] = byte(v.Uint64())
		}
	}
	return out
}
