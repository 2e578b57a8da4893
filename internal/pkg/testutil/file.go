package testutil

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// NewTestImage builds an opaque width x height image whose pixels vary with position
func NewTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 40) % 256),
				G: uint8((y * 70) % 256),
				B: uint8((x*y*13 + 5) % 256),
				A: 0xff,
			})
		}
	}
	return img
}

// CreateTestImageFile writes NewTestImage(width, height) as a PNG into a temp dir and returns its path
func CreateTestImageFile(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	require.NoError(t, png.Encode(f, NewTestImage(width, height)))
	return path
}
