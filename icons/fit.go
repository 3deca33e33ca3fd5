package icons

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iconforge/images"
)

// epsilon absorbs float error so that e.g. 180*(1-2*0.1) floors to 144.
const epsilon = 1e-9

func floor(v float64) int {
	return int(math.Floor(v + epsilon))
}

// InnerSize returns floor(size * (1 - 2*padding)).
func InnerSize(size int, padding float64) int {
	return floor(float64(size) * (1 - 2*padding))
}

// Dimensions returns the size of a srcW x srcH image scaled, aspect
// preserved, to fit an inner x inner square. The longer side becomes inner;
// the shorter side is floored and never drops below one pixel.
func Dimensions(srcW, srcH, inner int) (int, int) {
	ratio := float64(srcW) / float64(srcH)

	var newW, newH int
	if ratio > 1 {
		newW = inner
		newH = floor(float64(inner) / ratio)
	} else {
		newH = inner
		newW = floor(float64(inner) * ratio)
	}

	return max(newW, 1), max(newH, 1)
}

// Fit scales src, aspect preserved, into the inner square of a size x size
// transparent canvas and centers it. Leftover pixels are split with floor
// division, so content sits up to one pixel toward the top-left.
//
// Arguments:
// - src: The (usually trimmed) logo.
// - size: The canvas side in pixels.
// - padding: The fraction of the side left empty on each edge, in [0, 0.5).
// - scale: The resampler; nil selects DefaultScaler.
//
// Returns:
// - The size x size canvas.
// - ErrInvalidSpec (wrapped) for bad arguments or an empty source.
//
// @example
// icon, err := Fit(logo, 512, 0.2, nil)
func Fit(src image.Image, size int, padding float64, scale Scaler) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSpec, "size %d must be positive", size)
	}
	if padding < 0 || padding >= 0.5 {
		return nil, errors.Wrapf(ErrInvalidSpec, "padding %.3f outside [0, 0.5)", padding)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, errors.Wrap(ErrInvalidSpec, "empty source image")
	}
	if scale == nil {
		scale = DefaultScaler
	}

	inner := max(InnerSize(size, padding), 1)
	newW, newH := Dimensions(b.Dx(), b.Dy(), inner)

	resized := scale(src, newW, newH)
	canvas := imaging.New(size, size, color.Transparent)
	offset := images.Center(image.Pt(size, size), image.Pt(newW, newH))

	return imaging.Paste(canvas, resized, offset), nil
}

// Stretch resizes src straight to size x size, ignoring its aspect ratio.
func Stretch(src image.Image, size int, scale Scaler) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSpec, "size %d must be positive", size)
	}
	if src.Bounds().Empty() {
		return nil, errors.Wrap(ErrInvalidSpec, "empty source image")
	}
	if scale == nil {
		scale = DefaultScaler
	}

	return imaging.Clone(scale(src, size, size)), nil
}
