package icons

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/nvr-ai/go-iconforge/images"
)

// Scaler resamples src to exactly width x height.
type Scaler func(src image.Image, width, height int) image.Image

// Scaler names accepted by ScalerByName.
const (
	ScalerLanczos    = "lanczos"
	ScalerNfnt       = "nfnt"
	ScalerImaging    = "imaging"
	ScalerCatmullRom = "catmullrom"
)

// DefaultScaler is the in-tree Lanczos (a=3) resampler.
var DefaultScaler Scaler = LanczosScaler

var scalers = map[string]Scaler{
	ScalerLanczos:    LanczosScaler,
	ScalerNfnt:       NfntScaler,
	ScalerImaging:    ImagingScaler,
	ScalerCatmullRom: CatmullRomScaler,
}

// LanczosScaler uses images.Resize with the Lanczos filter.
func LanczosScaler(src image.Image, width, height int) image.Image {
	return images.Resize(src, width, height, images.LanczosFilter)
}

// NfntScaler uses github.com/nfnt/resize with Lanczos3.
func NfntScaler(src image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), src, resize.Lanczos3)
}

// ImagingScaler uses github.com/disintegration/imaging with Lanczos.
func ImagingScaler(src image.Image, width, height int) image.Image {
	return imaging.Resize(src, width, height, imaging.Lanczos)
}

// CatmullRomScaler uses golang.org/x/image/draw with the Catmull-Rom kernel.
func CatmullRomScaler(src image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ScalerByName returns the named scaler. An empty name selects DefaultScaler.
func ScalerByName(name string) (Scaler, error) {
	if name == "" {
		return DefaultScaler, nil
	}
	s, ok := scalers[name]
	if !ok {
		return nil, errors.Errorf("unknown resampler %q (want one of %v)", name, ScalerNames())
	}
	return s, nil
}

// ScalerNames lists the accepted scaler names in sorted order.
func ScalerNames() []string {
	names := make([]string, 0, len(scalers))
	for name := range scalers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
