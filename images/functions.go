// Package images provides the raster primitives shared by the icon and
// quadrant pipelines: decoding, encoding, resampling and rectangle helpers.
package images

import (
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"
)

// ResampleFilter defines the resampling algorithm used for image scaling.
type ResampleFilter int

const (
	// NearestNeighborFilter copies the closest source pixel (fastest, blocky).
	NearestNeighborFilter ResampleFilter = iota
	// BilinearFilter uses a triangle kernel.
	BilinearFilter
	// BicubicFilter uses the Catmull-Rom cubic (B=0, C=0.5).
	BicubicFilter
	// LanczosFilter uses a windowed sinc with a=3 (best quality for icons).
	LanczosFilter
	// MitchellNetravaliFilter uses the Mitchell-Netravali cubic (B=C=1/3).
	MitchellNetravaliFilter
)

// kernel represents a resampling kernel function.
type kernel struct {
	// Support is the radius of the kernel in source pixels at scale 1.
	Support float64
	// At evaluates the kernel weight at distance x.
	At func(x float64) float64
}

// kernels maps each filter type to its kernel function.
var kernels = map[ResampleFilter]kernel{
	NearestNeighborFilter: {
		Support: 0.5,
		At: func(x float64) float64 {
			if math.Abs(x) < 0.5 {
				return 1.0
			}
			return 0.0
		},
	},
	BilinearFilter: {
		Support: 1.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return 1.0 - x
			}
			return 0.0
		},
	},
	BicubicFilter: {
		Support: 2.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return (1.5*x-2.5)*x*x + 1.0
			}
			if x < 2.0 {
				return ((-0.5*x+2.5)*x-4.0)*x + 2.0
			}
			return 0.0
		},
	},
	LanczosFilter: {
		Support: 3.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x == 0.0 {
				return 1.0
			}
			if x >= 3.0 {
				return 0.0
			}
			// sinc(x) * sinc(x/3)
			pix := math.Pi * x
			return (math.Sin(pix) / pix) * (math.Sin(pix/3.0) / (pix / 3.0))
		},
	},
	MitchellNetravaliFilter: {
		Support: 2.0,
		At: func(x float64) float64 {
			x = math.Abs(x)
			if x < 1.0 {
				return ((1.16666666666667*x-2.0)*x)*x + 0.888888888888889
			}
			if x < 2.0 {
				return ((-0.388888888888889*x+2.0)*x-3.333333333333333)*x + 1.777777777777778
			}
			return 0.0
		},
	},
}

// Contribution is one source pixel's normalized weight for an output pixel.
type Contribution struct {
	// pixel is the source pixel index along the resampled axis.
	pixel int
	// weight is the normalized contribution weight.
	weight float64
}

// Resize resamples img to width x height using separable filtering: one
// horizontal pass, then one vertical pass.
//
// Colors are accumulated premultiplied by alpha, so fully transparent pixels
// never bleed their (meaningless) color into the visible edge of a logo.
// The result always has its origin at (0, 0).
//
// Arguments:
// - img: The source image.
// - width: The target width in pixels.
// - height: The target height in pixels.
// - filter: The resampling filter.
//
// Returns:
// - The resampled image. A non-positive target yields an empty image.
//
// @example
// icon := Resize(logo, 192, 192, LanczosFilter)
func Resize(img image.Image, width, height int, filter ResampleFilter) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	src := imaging.Clone(img)
	srcWidth, srcHeight := src.Rect.Dx(), src.Rect.Dy()
	if srcWidth == 0 || srcHeight == 0 {
		return image.NewNRGBA(image.Rect(0, 0, width, height))
	}
	if srcWidth == width && srcHeight == height {
		return src
	}

	if filter == NearestNeighborFilter {
		return ResizeNearestNeighbor(src, width, height)
	}

	k, ok := kernels[filter]
	if !ok {
		k = kernels[LanczosFilter]
	}

	pre := premultiply(src)
	horizontal := resizeHorizontal(pre, srcWidth, srcHeight, width, k)
	vertical := resizeVertical(horizontal, width, srcHeight, height, k)

	return unpremultiply(vertical, width, height)
}

// ResizeNearestNeighbor performs nearest-neighbor resizing.
func ResizeNearestNeighbor(src *image.NRGBA, width, height int) *image.NRGBA {
	srcWidth, srcHeight := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	xRatio := float64(srcWidth) / float64(width)
	yRatio := float64(srcHeight) / float64(height)

	Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			srcY := min(int((float64(y)+0.5)*yRatio), srcHeight-1)
			for x := 0; x < width; x++ {
				srcX := min(int((float64(x)+0.5)*xRatio), srcWidth-1)
				si := src.PixOffset(src.Rect.Min.X+srcX, src.Rect.Min.Y+srcY)
				di := dst.PixOffset(x, y)
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			}
		}
	})

	return dst
}

// contributions precomputes the weights of every output index along one axis.
// When downsampling the kernel is stretched by the scale factor, which turns
// every filter into an area-averaging one.
func contributions(srcSize, dstSize int, k kernel) [][]Contribution {
	scale := float64(srcSize) / float64(dstSize)
	filterScale := math.Max(scale, 1.0)
	support := k.Support * filterScale

	out := make([][]Contribution, dstSize)
	for i := range out {
		center := (float64(i) + 0.5) * scale

		lo := max(int(math.Floor(center-support)), 0)
		hi := min(int(math.Ceil(center+support)), srcSize-1)

		var weights []Contribution
		var sum float64
		for j := lo; j <= hi; j++ {
			w := k.At((float64(j) + 0.5 - center) / filterScale)
			if w == 0 {
				continue
			}
			weights = append(weights, Contribution{pixel: j, weight: w})
			sum += w
		}

		if sum == 0 {
			nearest := min(max(int(center), 0), srcSize-1)
			weights = []Contribution{{pixel: nearest, weight: 1}}
			sum = 1
		}
		for c := range weights {
			weights[c].weight /= sum
		}

		out[i] = weights
	}

	return out
}

// resizeHorizontal resamples a premultiplied float buffer of srcWidth x height
// pixels to dstWidth x height. This is the first separable pass.
func resizeHorizontal(src []float64, srcWidth, height, dstWidth int, k kernel) []float64 {
	weights := contributions(srcWidth, dstWidth, k)
	dst := make([]float64, dstWidth*height*4)

	Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			row := src[y*srcWidth*4 : (y+1)*srcWidth*4]
			for x := 0; x < dstWidth; x++ {
				var r, g, b, a float64
				for _, c := range weights[x] {
					i := c.pixel * 4
					r += row[i+0] * c.weight
					g += row[i+1] * c.weight
					b += row[i+2] * c.weight
					a += row[i+3] * c.weight
				}
				d := (y*dstWidth + x) * 4
				dst[d+0], dst[d+1], dst[d+2], dst[d+3] = r, g, b, a
			}
		}
	})

	return dst
}

// resizeVertical resamples a premultiplied float buffer of width x srcHeight
// pixels to width x dstHeight. This is the second separable pass.
func resizeVertical(src []float64, width, srcHeight, dstHeight int, k kernel) []float64 {
	weights := contributions(srcHeight, dstHeight, k)
	dst := make([]float64, width*dstHeight*4)

	Parallel(dstHeight, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < width; x++ {
				var r, g, b, a float64
				for _, c := range weights[y] {
					i := (c.pixel*width + x) * 4
					r += src[i+0] * c.weight
					g += src[i+1] * c.weight
					b += src[i+2] * c.weight
					a += src[i+3] * c.weight
				}
				d := (y*width + x) * 4
				dst[d+0], dst[d+1], dst[d+2], dst[d+3] = r, g, b, a
			}
		}
	})

	return dst
}

// premultiply flattens an NRGBA image into alpha-premultiplied float channels.
func premultiply(src *image.NRGBA) []float64 {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := make([]float64, w*h*4)
	for y := 0; y < h; y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		for x := 0; x < w; x++ {
			p := src.Pix[si+x*4 : si+x*4+4]
			a := float64(p[3])
			d := (y*w + x) * 4
			out[d+0] = float64(p[0]) * a / 255
			out[d+1] = float64(p[1]) * a / 255
			out[d+2] = float64(p[2]) * a / 255
			out[d+3] = a
		}
	}
	return out
}

// unpremultiply converts premultiplied float channels back to an NRGBA image,
// clamping the overshoot that negative kernel lobes can produce.
func unpremultiply(buf []float64, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		d := i * 4
		a := Clamp(buf[d+3], 0, 255)
		if a < 0.5 {
			continue
		}
		dst.Pix[d+0] = uint8(Clamp(buf[d+0]*255/a, 0, 255) + 0.5)
		dst.Pix[d+1] = uint8(Clamp(buf[d+1]*255/a, 0, 255) + 0.5)
		dst.Pix[d+2] = uint8(Clamp(buf[d+2]*255/a, 0, 255) + 0.5)
		dst.Pix[d+3] = uint8(a + 0.5)
	}
	return dst
}

// Clamp restricts a value to the range [min, max].
//
// @example
// clamped := Clamp(300.5, 0, 255) // Returns 255
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Parallel splits [0, dataSize) into one contiguous partition per CPU and
// runs fn on each partition concurrently, returning once all have finished.
// Small inputs run inline on the calling goroutine.
//
// Partitions never overlap, so fn may write to disjoint rows of a shared
// buffer without locking.
//
// @example
//
//	Parallel(height, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        // Process row y
//	    }
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()

	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}

	wg.Wait()
}
