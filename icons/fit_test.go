package icons

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestLogo(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	return img
}

// contentBounds is the bounding box of pixels with non-zero alpha.
func contentBounds(img *image.NRGBA) image.Rectangle {
	var box image.Rectangle
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}

func TestInnerSize(t *testing.T) {
	tests := []struct {
		size     int
		padding  float64
		expected int
	}{
		{64, 0, 64},
		{180, 0.10, 144},
		{192, 0.05, 172},
		{512, 0.05, 460},
		{512, 0.20, 307},
		{100, 0.49, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, InnerSize(tt.size, tt.padding), "size=%d padding=%.2f", tt.size, tt.padding)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		inner      int
		expW, expH int
	}{
		{"Square", 300, 300, 144, 144, 144},
		{"Wide", 200, 100, 64, 64, 32},
		{"Tall", 100, 200, 64, 32, 64},
		{"Wide floors", 7, 3, 144, 144, 61},
		{"Tall floors", 3, 7, 144, 61, 144},
		{"Extreme wide never zero", 1000, 1, 64, 64, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Dimensions(tt.srcW, tt.srcH, tt.inner)
			assert.Equal(t, tt.expW, w)
			assert.Equal(t, tt.expH, h)
		})
	}
}

// TestFit_LargerDimensionMatchesInner checks, for every default spec and a
// range of aspect ratios, that the pasted content's larger side equals the
// inner size and that it is centered with floor division.
func TestFit_LargerDimensionMatchesInner(t *testing.T) {
	sources := []image.Point{{300, 300}, {400, 250}, {250, 400}, {91, 37}, {37, 91}}

	for _, spec := range DefaultSpecs() {
		for _, s := range sources {
			src := getTestLogo(s.X, s.Y)
			canvas, err := Fit(src, spec.Size, spec.Padding, nil)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, spec.Size, spec.Size), canvas.Bounds())

			inner := spec.Inner()
			expW, expH := Dimensions(s.X, s.Y, inner)
			box := contentBounds(canvas)

			assert.Equal(t, max(expW, expH), inner, "%s from %v", spec.Name, s)
			assert.Equal(t, expW, box.Dx(), "%s from %v width", spec.Name, s)
			assert.Equal(t, expH, box.Dy(), "%s from %v height", spec.Name, s)
			assert.Equal(t, (spec.Size-expW)/2, box.Min.X, "%s from %v x offset", spec.Name, s)
			assert.Equal(t, (spec.Size-expH)/2, box.Min.Y, "%s from %v y offset", spec.Name, s)

			// Aspect ratio within one pixel of rounding.
			ratio := float64(s.X) / float64(s.Y)
			assert.InDelta(t, float64(box.Dx()), float64(box.Dy())*ratio, ratio+1)
		}
	}
}

// TestFit_OddLeftoverBiasesTopLeft reproduces the floor-division offset.
func TestFit_OddLeftoverBiasesTopLeft(t *testing.T) {
	// inner 64 on a 64 canvas; 64x21 content leaves 43 rows, split 21 / 22.
	src := getTestLogo(300, 100)
	canvas, err := Fit(src, 64, 0, nil)
	require.NoError(t, err)

	box := contentBounds(canvas)
	assert.Equal(t, image.Rect(0, 21, 64, 42), box)
	assert.Equal(t, 21, box.Min.Y, "top margin")
	assert.Equal(t, 64-box.Max.Y, 22, "bottom margin is the larger one")
}

func TestFit_AllScalers(t *testing.T) {
	src := getTestLogo(120, 80)
	for _, name := range ScalerNames() {
		t.Run(name, func(t *testing.T) {
			scale, err := ScalerByName(name)
			require.NoError(t, err)

			canvas, err := Fit(src, 192, 0.05, scale)
			require.NoError(t, err)
			assert.Equal(t, 192, canvas.Bounds().Dx())

			box := contentBounds(canvas)
			assert.Equal(t, 172, box.Dx())
			assert.Equal(t, 114, box.Dy())
			assert.Equal(t, color.NRGBA{}, canvas.NRGBAAt(0, 0), "corner stays transparent")
		})
	}
}

func TestFit_InvalidArguments(t *testing.T) {
	src := getTestLogo(10, 10)

	_, err := Fit(src, 0, 0, nil)
	assert.Equal(t, ErrInvalidSpec, errors.Cause(err))

	_, err = Fit(src, 64, 0.5, nil)
	assert.Equal(t, ErrInvalidSpec, errors.Cause(err))

	_, err = Fit(src, 64, -0.1, nil)
	assert.Equal(t, ErrInvalidSpec, errors.Cause(err))

	_, err = Fit(image.NewNRGBA(image.Rectangle{}), 64, 0, nil)
	assert.Equal(t, ErrInvalidSpec, errors.Cause(err))
}

func TestStretch(t *testing.T) {
	canvas, err := Stretch(getTestLogo(300, 100), 64, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), canvas.Bounds())
	assert.Equal(t, image.Rect(0, 0, 64, 64), contentBounds(canvas), "stretched content fills the canvas")

	_, err = Stretch(getTestLogo(3, 3), -1, nil)
	assert.Equal(t, ErrInvalidSpec, errors.Cause(err))
}

func TestScalerByName(t *testing.T) {
	s, err := ScalerByName("")
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = ScalerByName("bogus")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lanczos")

	assert.Equal(t, []string{"catmullrom", "imaging", "lanczos", "nfnt"}, ScalerNames())
}
