package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
)

// ErrUnsupportedFormat reports a save path whose extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// pxPerMM places one pixel on one point of a vector page.
const pxPerMM = 72 / 25.4

// Encode writes img in the format named by ext: raster ".png", ".jpg",
// ".jpeg", ".gif", or a ".svg"/".pdf" page with img placed at 72 dpi.
func Encode(img image.Image, ext string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95})
	case ".gif":
		err = gif.Encode(&buf, img, nil)
	case ".svg":
		err = svg.Writer(&buf, page(img))
	case ".pdf":
		err = pdf.Writer(&buf, page(img))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// page lays img out on a vector canvas of the same size in points.
func page(img image.Image) *canvas.Canvas {
	b := img.Bounds()
	c := canvas.New(float64(b.Dx())/pxPerMM, float64(b.Dy())/pxPerMM)
	ctx := canvas.NewContext(c)
	ctx.DrawImage(0, 0, img, canvas.DPMM(pxPerMM))
	return c
}

// SaveAs writes the canvas to path, creating parent directories as needed.
func (s *Surface) SaveAs(path string) error {
	data, err := Encode(s.img, filepath.Ext(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
