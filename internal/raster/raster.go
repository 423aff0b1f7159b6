// Package raster renders square icon bitmaps from a single source image.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const dirPerm = 0o755

var (
	// ErrInvalidSize is returned when a non-positive edge length is requested
	ErrInvalidSize = errors.New("icon size must be a positive number of pixels")

	// White is the default background transparent sources are flattened onto
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Rasterizer resizes a source image into square icons and writes them as PNG files.
type Rasterizer struct {
	Background  color.NRGBA
	Filter      imaging.ResampleFilter
	Compression png.CompressionLevel
}

// New returns a Rasterizer that flattens onto bg and resamples with Lanczos.
func New(bg color.NRGBA) *Rasterizer {
	return &Rasterizer{
		Background:  bg,
		Filter:      imaging.Lanczos,
		Compression: png.BestCompression,
	}
}

// Open decodes the image at path, applying any EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding source image %s: %w", path, err)
	}
	return img, nil
}

// HasAlpha reports whether img has any pixel that is not fully opaque.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

// Flatten composites img over an opaque canvas of the same size filled with bg.
// Opaque images are returned unchanged.
func Flatten(img image.Image, bg color.Color) image.Image {
	if !HasAlpha(img) {
		return img
	}

	bounds := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Over)

	log.WithFields(log.Fields{
		"height": bounds.Dy(),
		"width":  bounds.Dx(),
	}).Debug("flattened transparent source onto background")
	return canvas
}

// Render returns src flattened and resampled to a size x size square.
func (r *Rasterizer) Render(src image.Image, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	flat := Flatten(src, r.Background)
	return imaging.Resize(flat, size, size, r.Filter), nil
}

// Rasterize renders src at size and saves it to dest, creating parent directories
// and overwriting any existing file.
func (r *Rasterizer) Rasterize(src image.Image, size int, dest string) error {
	icon, err := r.Render(src, size)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}

	log.WithFields(log.Fields{
		"dst.path":  dest,
		"icon.size": size,
	}).Info("saving PNG file")
	if err := imaging.Save(icon, dest, imaging.PNGCompressionLevel(r.Compression)); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

// RasterizeFile decodes srcPath and writes a single icon of the given size to dest.
func (r *Rasterizer) RasterizeFile(srcPath string, size int, dest string) error {
	src, err := Open(srcPath)
	if err != nil {
		return err
	}
	return r.Rasterize(src, size, dest)
}
