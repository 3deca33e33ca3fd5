// Package quadrant cuts a composite image into its four quadrants and saves
// each one under a fixed name.
package quadrant

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iconforge/images"
	"github.com/nvr-ai/go-iconforge/profiler"
)

// Defaults used when Options leaves a field empty.
const (
	DefaultSource    = "1000004496.jpg"
	DefaultOutputDir = "."
	DefaultQuality   = images.DefaultJPEGQuality
)

// Tile names, in top-left, top-right, bottom-left, bottom-right order.
const (
	NameTopLeft     = "Ned_The_Pink_Cloud.jpg"
	NameTopRight    = "Lisa_The_Service_Pro.jpg"
	NameBottomLeft  = "Walt_The_Zen_Master.jpg"
	NameBottomRight = "David_The_Fresh_Start.jpg"
)

// Box is one named crop rectangle, relative to the image origin.
type Box struct {
	Name string
	Rect image.Rectangle
}

// Boxes splits a w x h image at (w/2, h/2). With odd dimensions the right
// column and bottom row get the extra pixel.
func Boxes(w, h int) []Box {
	midX, midY := w/2, h/2
	return []Box{
		{Name: NameTopLeft, Rect: image.Rect(0, 0, midX, midY)},
		{Name: NameTopRight, Rect: image.Rect(midX, 0, w, midY)},
		{Name: NameBottomLeft, Rect: image.Rect(0, midY, midX, h)},
		{Name: NameBottomRight, Rect: image.Rect(midX, midY, w, h)},
	}
}

// Tile is a cropped quadrant.
type Tile struct {
	Box   Box
	Image *image.NRGBA
}

// Slice crops img into the four quadrant tiles. Boxes are offset by the
// bounds origin, so sub-images slice correctly.
func Slice(img image.Image) []Tile {
	b := img.Bounds()
	boxes := Boxes(b.Dx(), b.Dy())

	tiles := make([]Tile, 0, len(boxes))
	for _, box := range boxes {
		tiles = append(tiles, Tile{
			Box:   box,
			Image: imaging.Crop(img, box.Rect.Add(b.Min)),
		})
	}
	return tiles
}

// Options configures Run.
type Options struct {
	// Source is the composite image; empty selects DefaultSource.
	Source string
	// OutputDir receives the tiles; empty selects DefaultOutputDir.
	OutputDir string
	// Quality is the JPEG quality; zero selects DefaultQuality.
	Quality int
	// Logger receives progress; nil discards it.
	Logger hclog.Logger
	// Profiler times each stage when non-nil.
	Profiler *profiler.Profiler
	// OnWrite, if set, is called after each tile is written.
	OnWrite func(Output)
}

// Output describes one written tile.
type Output struct {
	Box  Box
	Path string
}

// Report summarizes a Run.
type Report struct {
	Source     string
	SourceSize image.Point
	Outputs    []Output
}

// Run loads the source, slices it and writes the four tiles.
//
// A missing source returns images.ErrSourceNotFound and an undecodable one
// images.ErrDecode; nothing is written in either case. A write failure stops
// the run and leaves earlier tiles on disk.
func Run(opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.Quality == 0 {
		opts.Quality = DefaultQuality
	}
	if opts.Quality < 1 || opts.Quality > 100 {
		return nil, errors.Errorf("jpeg quality %d outside [1, 100]", opts.Quality)
	}

	stop := opts.Profiler.StartOperation("load")
	src, err := images.Load(opts.Source)
	stop()
	if err != nil {
		return nil, err
	}
	logger.Info("loaded source", "path", opts.Source, "width", src.Rect.Dx(), "height", src.Rect.Dy())

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", opts.OutputDir)
	}

	stop = opts.Profiler.StartOperation("slice")
	tiles := Slice(src)
	stop()

	report := &Report{Source: opts.Source, SourceSize: src.Rect.Size()}
	for _, tile := range tiles {
		path := filepath.Join(opts.OutputDir, tile.Box.Name)

		stop := opts.Profiler.StartOperation("encode")
		err := images.Save(path, tile.Image, images.EncodeOptions{Quality: opts.Quality})
		stop()
		if err != nil {
			return report, err
		}

		out := Output{Box: tile.Box, Path: path}
		report.Outputs = append(report.Outputs, out)
		logger.Debug("wrote tile", "path", path, "rect", tile.Box.Rect)
		if opts.OnWrite != nil {
			opts.OnWrite(out)
		}
	}

	return report, nil
}
