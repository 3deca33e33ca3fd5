// Package images - rectangle helpers.
package images

import "image"

// Inflate grows r by n pixels on every side and clamps the result to within.
// A negative n shrinks r. The result is empty if nothing of it lies inside
// within.
//
// @example
// Inflate(image.Rect(0, 5, 10, 10), 1, image.Rect(0, 0, 10, 10)) // (0,4)-(10,10)
func Inflate(r image.Rectangle, n int, within image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X-n, r.Min.Y-n, r.Max.X+n, r.Max.Y+n).Intersect(within)
}

// Center returns the offset that places an inner box inside an outer box,
// using floor division so odd leftovers bias the inner box toward the
// top-left by up to one pixel.
//
// @example
// Center(image.Pt(64, 64), image.Pt(51, 30)) // (6, 17)
func Center(outer, inner image.Point) image.Point {
	return image.Pt((outer.X-inner.X)/2, (outer.Y-inner.Y)/2)
}
