package imaging

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// jpegQuality matches the quality used for JPEG output across the toolkit.
const jpegQuality = 95

// Codec decodes and encodes raster images. It is injected into the
// components that need image I/O so that format support is a construction
// time capability rather than something probed at runtime.
type Codec interface {
	Decode(r io.Reader) (image.Image, error)
	DecodeFile(path string) (image.Image, error)
	Encode(w io.Writer, img image.Image, format string) error
	Supports(filename string) bool
}

// StandardCodec handles JPEG, PNG, GIF, BMP and TIFF, plus WebP decoding.
type StandardCodec struct{}

func NewCodec() *StandardCodec {
	return &StandardCodec{}
}

var decodableExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func (c *StandardCodec) Supports(filename string) bool {
	return decodableExts[strings.ToLower(filepath.Ext(filename))]
}

func (c *StandardCodec) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func (c *StandardCodec) DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return c.Decode(f)
}

func (c *StandardCodec) Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		// JPEG has no alpha channel; flatten first.
		return jpeg.Encode(w, ToRGBA(img), &jpeg.Options{Quality: jpegQuality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

// EncodeFile encodes img to path, deriving the format from the extension
// unless format is non-empty.
func EncodeFile(c Codec, path string, img image.Image, format string) error {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return c.Encode(f, img, format)
}
