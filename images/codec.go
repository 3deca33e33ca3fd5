package images

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"

	// Extra decoders beyond the ones imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var (
	// ErrSourceNotFound is returned when the input file does not exist.
	ErrSourceNotFound = errors.New("source image not found")
	// ErrDecode is returned when the input exists but cannot be decoded.
	ErrDecode = errors.New("failed to decode image")
)

// DefaultJPEGQuality is used when EncodeOptions.Quality is zero.
const DefaultJPEGQuality = 95

// EncodeOptions tunes the encoders used by Encode and Save.
type EncodeOptions struct {
	// Quality is the JPEG quality in [1, 100]. Zero selects DefaultJPEGQuality.
	Quality int
}

func init() {
	// Register the WebP decoder so Load accepts .webp sources.
	image.RegisterFormat("webp", "RIFF????WEBPVP8", webp.Decode, webp.DecodeConfig)
}

// Exists reports whether path names an existing file. Any stat error other
// than "not exist" is returned so that callers surface permission problems.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "failed to stat %s", path)
}

// Load opens and decodes the image at path and returns it as a
// non-premultiplied RGBA copy with its origin at (0, 0).
//
// Arguments:
// - path: The image file to read.
//
// Returns:
// - The decoded image.
// - ErrSourceNotFound (wrapped) if the file is missing, ErrDecode (wrapped)
// if it cannot be opened or decoded.
//
// @example
// img, err := Load("Logo.png")
//
//	if errors.Cause(err) == ErrSourceNotFound {
//	    // report and stop
//	}
func Load(path string) (*image.NRGBA, error) {
	ok, err := Exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrSourceNotFound, path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%s: %v", path, err)
	}

	return imaging.Clone(img), nil
}

// Encode writes img to w in the given format.
//
// ICO output holds exactly one image the size of img. PNG output uses the
// best compression level. JPEG output uses opts.Quality. WebP output is
// lossless.
func Encode(w io.Writer, img image.Image, format ImageFormat, opts EncodeOptions) error {
	switch format {
	case FormatICO:
		return ico.Encode(w, img)
	case FormatPNG:
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case FormatJPEG:
		quality := opts.Quality
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case FormatWebP:
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	case FormatGIF:
		return imaging.Encode(w, img, imaging.GIF)
	case FormatBMP:
		return imaging.Encode(w, img, imaging.BMP)
	case FormatTIFF:
		return imaging.Encode(w, img, imaging.TIFF)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// Save encodes img into the file at path, truncating any existing file. The
// format is chosen from the file extension.
func Save(path string, img image.Image, opts EncodeOptions) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	if err := Encode(f, img, format, opts); err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}

	return nil
}
