package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInflate validates growth, clamping and shrinking of rectangles.
func TestInflate(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 50)

	tests := []struct {
		name     string
		r        image.Rectangle
		n        int
		expected image.Rectangle
	}{
		{
			name:     "Interior box grows by one",
			r:        image.Rect(10, 10, 20, 20),
			n:        1,
			expected: image.Rect(9, 9, 21, 21),
		},
		{
			name:     "Box touching top-left is clamped",
			r:        image.Rect(0, 0, 20, 20),
			n:        1,
			expected: image.Rect(0, 0, 21, 21),
		},
		{
			name:     "Box touching bottom-right is clamped",
			r:        image.Rect(80, 30, 100, 50),
			n:        1,
			expected: image.Rect(79, 29, 100, 50),
		},
		{
			name:     "Full image stays full",
			r:        bounds,
			n:        1,
			expected: bounds,
		},
		{
			name:     "Negative inflation shrinks",
			r:        image.Rect(10, 10, 20, 20),
			n:        -2,
			expected: image.Rect(12, 12, 18, 18),
		},
		{
			name:     "Outside bounds is empty",
			r:        image.Rect(200, 200, 210, 210),
			n:        1,
			expected: image.Rectangle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inflate(tt.r, tt.n, bounds)
			if tt.expected.Empty() {
				assert.True(t, got.Empty(), "Inflate() should be empty, got %v", got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestCenter checks that leftovers are floor divided toward the top-left.
func TestCenter(t *testing.T) {
	tests := []struct {
		name     string
		outer    image.Point
		inner    image.Point
		expected image.Point
	}{
		{"Even leftovers", image.Pt(64, 64), image.Pt(60, 32), image.Pt(2, 16)},
		{"Odd leftovers", image.Pt(64, 64), image.Pt(51, 30), image.Pt(6, 17)},
		{"Exact fit", image.Pt(192, 192), image.Pt(192, 192), image.Pt(0, 0)},
		{"One pixel leftover", image.Pt(5, 5), image.Pt(4, 4), image.Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Center(tt.outer, tt.inner))
		})
	}
}
