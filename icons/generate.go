package icons

import (
	"image"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iconforge/cutout"
	"github.com/nvr-ai/go-iconforge/images"
	"github.com/nvr-ai/go-iconforge/profiler"
)

// Default paths of the icons command, relative to the working directory.
const (
	DefaultSource    = "Logo.png"
	DefaultOutputDir = "pwa-assets"
)

// Options configures Generate.
type Options struct {
	// Source is the logo image to read.
	Source string
	// OutputDir receives the icons; it is created if absent.
	OutputDir string
	// Specs is the icon table; nil selects DefaultSpecs.
	Specs []Spec
	// Cutout enables background and hole removal before resizing.
	Cutout bool
	// CutoutOptions tunes the removal when Cutout is set. The zero value
	// selects cutout.DefaultOptions.
	CutoutOptions cutout.Options
	// Stretch resizes straight to each size, ignoring aspect and padding.
	Stretch bool
	// Scaler is the resampler; nil selects DefaultScaler.
	Scaler Scaler
	// Logger receives progress; nil discards it.
	Logger hclog.Logger
	// Profiler times each stage when non-nil.
	Profiler *profiler.Profiler
	// OnWrite, if set, is called after each icon is written.
	OnWrite func(Output)
}

// Output describes one written icon.
type Output struct {
	Spec Spec
	// Path is where the icon was written.
	Path string
	// Checksum is images.Checksum of the rendered canvas.
	Checksum string
}

// Report summarizes a Generate run.
type Report struct {
	Source string
	// SourceSize is the decoded size of the source image.
	SourceSize image.Point
	// Cutout is set when background removal ran.
	Cutout *cutout.Result
	// Outputs lists the icons in the order they were written.
	Outputs []Output
}

// Generate renders every spec from the source logo into OutputDir.
//
// Nothing is written when the source is missing (images.ErrSourceNotFound)
// or cannot be decoded (images.ErrDecode): both are checked before the output
// directory is created. Later failures return immediately; icons already
// written stay on disk.
func Generate(opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	specs := opts.Specs
	if specs == nil {
		specs = DefaultSpecs()
	}
	if err := ValidateSpecs(specs); err != nil {
		return nil, err
	}
	scale := opts.Scaler
	if scale == nil {
		scale = DefaultScaler
	}

	stop := opts.Profiler.StartOperation("load")
	src, err := images.Load(opts.Source)
	stop()
	if err != nil {
		return nil, err
	}
	logger.Info("loaded source", "path", opts.Source, "width", src.Rect.Dx(), "height", src.Rect.Dy())

	report := &Report{
		Source:     opts.Source,
		SourceSize: src.Rect.Size(),
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", opts.OutputDir)
	}

	work := src
	if opts.Cutout {
		stop := opts.Profiler.StartOperation("cutout")
		cutOpts := opts.CutoutOptions
		if cutOpts.Fuzz == 0 && cutOpts.HoleScan == 0 {
			cutOpts = cutout.DefaultOptions()
		}
		if cutOpts.Logger == nil {
			cutOpts.Logger = logger.Named("cutout")
		}
		trimmed, res := cutout.Remove(src, cutOpts)
		stop()

		work = trimmed
		report.Cutout = &res
		logger.Info("removed background",
			"background_pixels", res.Background,
			"hole", res.Hole != nil,
			"trimmed_to", res.Bounds)
	}

	for _, spec := range specs {
		out, err := render(work, spec, opts, scale)
		if err != nil {
			return report, err
		}
		report.Outputs = append(report.Outputs, out)
		logger.Debug("wrote icon", "path", out.Path, "size", spec.Size, "checksum", out.Checksum)
		if opts.OnWrite != nil {
			opts.OnWrite(out)
		}
	}

	return report, nil
}

// render fits one spec and writes it.
func render(work *image.NRGBA, spec Spec, opts Options, scale Scaler) (Output, error) {
	stop := opts.Profiler.StartOperation("fit")
	var (
		canvas *image.NRGBA
		err    error
	)
	if opts.Stretch {
		canvas, err = Stretch(work, spec.Size, scale)
	} else {
		canvas, err = Fit(work, spec.Size, spec.Padding, scale)
	}
	stop()
	if err != nil {
		return Output{}, errors.Wrap(err, spec.Name)
	}

	path := filepath.Join(opts.OutputDir, spec.Name)

	stop = opts.Profiler.StartOperation("encode")
	err = images.Save(path, canvas, images.EncodeOptions{})
	stop()
	if err != nil {
		return Output{}, err
	}

	return Output{Spec: spec, Path: path, Checksum: images.Checksum(canvas)}, nil
}
