// Package imaging normalizes uploaded pictures into bounded-width JPEGs.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const ContentType = "image/jpeg"

var (
	ErrEmpty    = errors.New("image is empty")
	ErrTooLarge = errors.New("image exceeds the upload size limit")
	// ErrTooManyPixels is an ErrTooLarge raised from the header dimensions, before decoding.
	ErrTooManyPixels = fmt.Errorf("%w: too many pixels", ErrTooLarge)
	ErrDecode   = errors.New("unable to decode uploaded image")
)

const DefaultMaxPixels = 40_000_000

type Options struct {
	MaxWidth  int
	Quality   int
	MaxBytes  int64
	MaxPixels int64
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = 1200
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 80
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = DefaultMaxPixels
	}
	return o
}

// Process decodes r, shrinks it to at most MaxWidth keeping the aspect ratio and re-encodes it as JPEG.
func Process(r io.Reader, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	src := r
	if opts.MaxBytes > 0 {
		src = io.LimitReader(r, opts.MaxBytes+1)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	if opts.MaxBytes > 0 && int64(len(raw)) > opts.MaxBytes {
		return nil, ErrTooLarge
	}

	if err := checkPixels(raw, opts.MaxPixels); err != nil {
		return nil, err
	}

	img, err := decode(raw)
	if err != nil {
		return nil, err
	}

	out := flatten(resize(img, opts.MaxWidth))

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// checkPixels reads only the header so a small file declaring a huge canvas is refused
// before anything is allocated for it.
func checkPixels(raw []byte, maxPixels int64) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		if cfg, err = webp.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return ErrDecode
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrDecode
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return ErrTooManyPixels
	}
	return nil
}

func decode(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := webp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}
	return nil, ErrDecode
}

func resize(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxWidth {
		return img
	}
	newH := h * maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// flatten paints img over white so transparent regions don't turn black in JPEG.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, stddraw.Src)
	stddraw.Draw(dst, dst.Bounds(), img, b.Min, stddraw.Over)
	return dst
}
