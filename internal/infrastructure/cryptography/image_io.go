package cryptography

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type imageEncoder func(w io.Writer, img image.Image) error

// encoders by lower-case file extension; anything else is written as PNG
var encoders = map[string]imageEncoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, nil)
}

// LoadImage decodes a png, jpeg, gif, bmp, tiff or webp file
func (c *imageCodec) LoadImage(path string) (image.Image, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at path: %s", crypto.ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.Warn("Failed to close image file ", path, ": ", err)
		}
	}()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", crypto.ErrImageDecode, path, err)
	}

	c.logger.Debug("Loaded ", format, " image ", path)
	return img, nil
}

// SaveImage writes img encoded by the extension of path. Unknown extensions
// (webp has no encoder) are swapped for .png. The written path is returned.
func (c *imageCodec) SaveImage(img image.Image, path string) (string, error) {
	ext := filepath.Ext(path)
	encode, ok := encoders[strings.ToLower(ext)]
	if !ok {
		path = strings.TrimSuffix(path, ext) + ".png"
		encode = png.Encode
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to create image file %s: %w", path, err)
	}

	if err := encode(file, img); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("failed to encode image %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close image file %s: %w", path, err)
	}

	c.logger.Info("Saved image to ", path)
	return path, nil
}
