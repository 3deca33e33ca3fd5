package cutout

import (
	"image"
	"image/color"
)

// Distance is the largest absolute difference between two colors over the
// R, G, B and A channels.
func Distance(a, b color.NRGBA) uint8 {
	d := absDiff(a.R, b.R)
	d = max(d, absDiff(a.G, b.G))
	d = max(d, absDiff(a.B, b.B))
	return max(d, absDiff(a.A, b.A))
}

// NearWhite reports whether each of R, G and B exceeds 255-fuzz.
func NearWhite(c color.NRGBA, fuzz uint8) bool {
	floor := 255 - fuzz
	return c.R > floor && c.G > floor && c.B > floor
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// FloodFill clears to fully transparent every pixel 4-connected to seed whose
// color is within fuzz of the seed's color, and returns how many pixels it
// cleared. seed is relative to the image origin.
//
// The fill is iterative, so large regions cannot exhaust the stack. A seed
// outside the image, or one already within fuzz of the transparent fill
// color, is a no-op.
func FloodFill(img *image.NRGBA, seed image.Point, fuzz uint8) int {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if seed.X < 0 || seed.Y < 0 || seed.X >= w || seed.Y >= h {
		return 0
	}

	at := func(x, y int) int {
		return img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
	}
	colorAt := func(i int) color.NRGBA {
		p := img.Pix[i : i+4 : i+4]
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}

	target := colorAt(at(seed.X, seed.Y))
	if Distance(target, transparent) <= fuzz {
		return 0
	}

	visited := make([]bool, w*h)
	queue := []image.Point{seed}
	visited[seed.Y*w+seed.X] = true
	filled := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		i := at(p.X, p.Y)
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 0
		filled++

		for _, n := range [4]image.Point{
			{p.X - 1, p.Y},
			{p.X + 1, p.Y},
			{p.X, p.Y - 1},
			{p.X, p.Y + 1},
		} {
			if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h {
				continue
			}
			v := n.Y*w + n.X
			if visited[v] {
				continue
			}
			visited[v] = true
			if Distance(colorAt(at(n.X, n.Y)), target) <= fuzz {
				queue = append(queue, n)
			}
		}
	}

	return filled
}
