// Package cutout removes the flat background around a logo, knocks out one
// enclosed near-white hole near the top center, and trims the result to its
// visible content.
package cutout

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"

	"github.com/nvr-ai/go-iconforge/images"
)

const (
	// DefaultFuzz is the default color tolerance.
	DefaultFuzz uint8 = 30
	// DefaultHoleScan is the fraction of the image height searched for a hole.
	DefaultHoleScan = 0.40
)

// transparent is the fill color written by every flood.
var transparent = color.NRGBA{}

// Options configures Remove.
type Options struct {
	// Fuzz is the per-channel color tolerance used by the floods and by the
	// near-white test.
	Fuzz uint8
	// HoleScan is the fraction of the height, from the top, that the
	// centerline hole search covers. Zero selects DefaultHoleScan.
	HoleScan float64
	// Logger receives debug output. Nil discards it.
	Logger hclog.Logger
}

// DefaultOptions returns the tolerances used by the icon pipeline.
func DefaultOptions() Options {
	return Options{Fuzz: DefaultFuzz, HoleScan: DefaultHoleScan}
}

// Result describes what Remove changed.
type Result struct {
	// Background is the number of pixels cleared by the corner floods.
	Background int
	// Hole is the seed of the hole flood, if one was found.
	Hole *image.Point
	// HolePixels is the number of pixels cleared by the hole flood.
	HolePixels int
	// Bounds is the crop applied, in source coordinates. It equals the source
	// bounds when nothing was trimmed.
	Bounds image.Rectangle
}

// Remove makes the corner-connected background of img transparent, clears at
// most one near-white hole on the vertical centerline, and crops to the
// visible content plus a one pixel margin. img itself is not modified.
//
// A fully transparent result is returned uncropped.
func Remove(img image.Image, opts Options) (*image.NRGBA, Result) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.HoleScan <= 0 {
		opts.HoleScan = DefaultHoleScan
	}

	work := imaging.Clone(img)
	res := Result{Bounds: work.Rect}
	if work.Rect.Empty() {
		return work, res
	}

	w, h := work.Rect.Dx(), work.Rect.Dy()
	corners := []image.Point{
		{0, 0},
		{w - 1, 0},
		{0, h - 1},
		{w - 1, h - 1},
	}
	for _, c := range corners {
		res.Background += FloodFill(work, c, opts.Fuzz)
	}
	logger.Debug("background cleared", "pixels", res.Background)

	if seed, ok := FindHole(work, opts.Fuzz, opts.HoleScan); ok {
		res.Hole = &seed
		res.HolePixels = FloodFill(work, seed, opts.Fuzz)
		logger.Debug("hole cleared", "seed", seed, "pixels", res.HolePixels)
	} else {
		logger.Debug("no hole found on centerline")
	}

	trimmed, bounds := Trim(work)
	res.Bounds = bounds
	logger.Debug("trimmed", "bounds", bounds)

	return trimmed, res
}

// FindHole scans the vertical centerline from the top, stopping before
// int(height*scan), and returns the first pixel that is still visible and
// near-white.
func FindHole(img *image.NRGBA, fuzz uint8, scan float64) (image.Point, bool) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	x := w / 2
	limit := int(float64(h) * scan)

	for y := 0; y < limit && y < h; y++ {
		c := img.NRGBAAt(img.Rect.Min.X+x, img.Rect.Min.Y+y)
		if c.A != 0 && NearWhite(c, fuzz) {
			return image.Pt(x, y), true
		}
	}

	return image.Point{}, false
}

// Trim crops img to the bounding box of its visible pixels grown by one pixel
// per side and clamped to the image. The applied crop is returned in img's
// coordinates. An image with no visible pixels is returned unchanged.
func Trim(img *image.NRGBA) (*image.NRGBA, image.Rectangle) {
	box, ok := OpaqueBounds(img)
	if !ok {
		return img, img.Rect
	}

	crop := images.Inflate(box, 1, img.Rect)
	if crop == img.Rect {
		return img, crop
	}

	return imaging.Crop(img, crop), crop
}

// OpaqueBounds returns the smallest rectangle containing every pixel with
// non-zero alpha. ok is false when there is none.
func OpaqueBounds(img *image.NRGBA) (box image.Rectangle, ok bool) {
	r := img.Rect
	minX, minY := r.Max.X, r.Max.Y
	maxX, maxY := r.Min.X-1, r.Min.Y-1

	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.Pix[i+3] != 0 {
				minX = min(minX, x)
				maxX = max(maxX, x)
				minY = min(minY, y)
				maxY = max(maxY, y)
			}
			i += 4
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
