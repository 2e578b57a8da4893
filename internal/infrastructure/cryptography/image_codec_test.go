//go:build unit
// +build unit

package cryptography

import (
	"image"
	"image/color"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupImageCodec(t *testing.T) cryptoalg.ImageCodec {
	t.Helper()
	codec, err := NewImageCodec(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return codec
}

func TestImageCodec_DecomposeRecompose(t *testing.T) {
	codec := setupImageCodec(t)

	t.Run("PlaneOrderAndRowMajor", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		img.SetNRGBA(1, 0, color.NRGBA{R: 11, G: 21, B: 31, A: 255})

		b, g, r, dims := codec.Decompose(img)
		assert.Equal(t, crypto.Dimensions{Width: 2, Height: 1}, dims)
		assert.Equal(t, crypto.PlaneArray{30, 31}, b)
		assert.Equal(t, crypto.PlaneArray{20, 21}, g)
		assert.Equal(t, crypto.PlaneArray{10, 11}, r)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		img := testutil.NewTestImage(5, 3)
		b, g, r, dims := codec.Decompose(img)

		flat := append(append(append(crypto.PlaneArray{}, b...), g...), r...)
		out, err := codec.Recompose(flat, dims)
		require.NoError(t, err)
		assert.Equal(t, img.Pix, out.Pix)
	})

	t.Run("OffsetBounds", func(t *testing.T) {
		img := testutil.NewTestImage(4, 4).SubImage(image.Rect(1, 1, 3, 4))
		_, _, _, dims := codec.Decompose(img)
		assert.Equal(t, crypto.Dimensions{Width: 2, Height: 3}, dims)
	})

	t.Run("AlphaDropped", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 7})

		b, g, r, dims := codec.Decompose(img)
		out, err := codec.Recompose(crypto.PlaneArray{b[0], g[0], r[0]}, dims)
		require.NoError(t, err)
		assert.Equal(t, []uint8{1, 2, 3, 255}, out.Pix)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := codec.Recompose(make(crypto.PlaneArray, 10), crypto.Dimensions{Width: 2, Height: 2})
		assert.ErrorIs(t, err, crypto.ErrDimensionMismatch)

		_, err = codec.Recompose(crypto.PlaneArray{}, crypto.Dimensions{})
		assert.ErrorIs(t, err, crypto.ErrDimensionMismatch)
	})
}

func TestImageCodec_NormalizeToBytes(t *testing.T) {
	codec := setupImageCodec(t)

	assert.Equal(t, crypto.PlaneArray{0, 127, 255}, codec.NormalizeToBytes(bigInts(0, 5, 10)))
	assert.Equal(t, crypto.PlaneArray{0, 0, 0}, codec.NormalizeToBytes(bigInts(5, 5, 5)))
	assert.Equal(t, crypto.PlaneArray{}, codec.NormalizeToBytes(nil))
	assert.Equal(t, crypto.PlaneArray{255, 0, 85}, codec.NormalizeToBytes(bigInts(9, 3, 5)))

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	out := codec.NormalizeToBytes([]*big.Int{big.NewInt(0), huge, new(big.Int).Rsh(huge, 1)})
	assert.Equal(t, crypto.PlaneArray{0, 255, 127}, out)
}

func TestImageCodec_ClampToBytes(t *testing.T) {
	codec := setupImageCodec(t)

	assert.Equal(t, crypto.PlaneArray{0, 0, 42, 255, 255}, codec.ClampToBytes(bigInts(-3, 0, 42, 255, 10012)))
	assert.Equal(t, crypto.PlaneArray{}, codec.ClampToBytes(nil))
}

func TestImageCodec_LoadSave(t *testing.T) {
	codec := setupImageCodec(t)
	dir := t.TempDir()
	img := testutil.NewTestImage(6, 4)

	t.Run("LosslessFormats", func(t *testing.T) {
		for _, name := range []string{"out.png", "out.bmp", "out.tiff", "nested/dir/OUT.PNG"} {
			written, err := codec.SaveImage(img, filepath.Join(dir, name))
			require.NoError(t, err, name)
			assert.Equal(t, filepath.Join(dir, name), written)

			loaded, err := codec.LoadImage(written)
			require.NoError(t, err, name)

			lb, lg, lr, dims := codec.Decompose(loaded)
			b, g, r, _ := codec.Decompose(img)
			assert.Equal(t, crypto.Dimensions{Width: 6, Height: 4}, dims)
			assert.Equal(t, b, lb, name)
			assert.Equal(t, g, lg, name)
			assert.Equal(t, r, lr, name)
		}
	})

	t.Run("LossyFormats", func(t *testing.T) {
		for _, name := range []string{"out.jpg", "out.gif"} {
			written, err := codec.SaveImage(img, filepath.Join(dir, name))
			require.NoError(t, err, name)

			loaded, err := codec.LoadImage(written)
			require.NoError(t, err, name)
			assert.Equal(t, img.Bounds().Size(), loaded.Bounds().Size())
		}
	})

	t.Run("UnknownExtensionFallsBackToPNG", func(t *testing.T) {
		written, err := codec.SaveImage(img, filepath.Join(dir, "out.webp"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "out.png"), written)

		written, err = codec.SaveImage(img, filepath.Join(dir, "noext"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "noext.png"), written)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := codec.LoadImage(filepath.Join(dir, "missing.png"))
		assert.ErrorIs(t, err, crypto.ErrImageNotFound)
	})

	t.Run("NotAnImage", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.png")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0600))

		_, err := codec.LoadImage(path)
		assert.ErrorIs(t, err, crypto.ErrImageDecode)
	})
}
