// Package icons turns one logo into the fixed set of web app icons: a
// favicon, an Apple touch icon, two PWA icons and a maskable icon.
package icons

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-iconforge/images"
)

// ErrInvalidSpec is returned for a spec that cannot be rendered.
var ErrInvalidSpec = errors.New("invalid icon spec")

// Spec describes one generated icon.
type Spec struct {
	// Name is the output filename; its extension picks the encoder.
	Name string `json:"name" yaml:"name"`
	// Size is the side of the square canvas in pixels.
	Size int `json:"size" yaml:"size"`
	// Padding is the fraction of the side left empty on each edge, in [0, 0.5).
	Padding float64 `json:"padding" yaml:"padding"`
}

// Icon names of the default table.
const (
	NameFavicon        = "favicon.ico"
	NameAppleTouchIcon = "apple-touch-icon-180x180.png"
	NamePWA192         = "pwa-192x192.png"
	NamePWA512         = "pwa-512x512.png"
	NameMaskable512    = "maskable-icon-512x512.png"
)

// DefaultSpecs returns the icon table expected by a Vite PWA config. A new
// slice is returned on every call so callers cannot alter the table.
//
//   - favicon.ico: browser tab
//   - apple-touch-icon-180x180.png: iPhone home screen
//   - pwa-192x192.png: Android / Windows taskbar
//   - pwa-512x512.png: splash screen
//   - maskable-icon-512x512.png: Android adaptive icon; the wide padding keeps
//     the logo inside the safe zone
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: NameFavicon, Size: 64, Padding: 0},
		{Name: NameAppleTouchIcon, Size: 180, Padding: 0.10},
		{Name: NamePWA192, Size: 192, Padding: 0.05},
		{Name: NamePWA512, Size: 512, Padding: 0.05},
		{Name: NameMaskable512, Size: 512, Padding: 0.20},
	}
}

// Validate checks the size, padding and output format of s.
func (s Spec) Validate() error {
	if s.Name == "" {
		return errors.Wrap(ErrInvalidSpec, "empty name")
	}
	if s.Size <= 0 {
		return errors.Wrapf(ErrInvalidSpec, "%s: size %d must be positive", s.Name, s.Size)
	}
	if s.Padding < 0 || s.Padding >= 0.5 {
		return errors.Wrapf(ErrInvalidSpec, "%s: padding %.3f outside [0, 0.5)", s.Name, s.Padding)
	}
	if _, err := images.FormatFromPath(s.Name); err != nil {
		return errors.Wrapf(ErrInvalidSpec, "%s: %v", s.Name, err)
	}
	return nil
}

// Inner returns the side of the square the content is fitted into.
func (s Spec) Inner() int {
	return InnerSize(s.Size, s.Padding)
}

// String returns a human-readable summary of the spec.
func (s Spec) String() string {
	return fmt.Sprintf("%s (%dx%d, padding %.0f%%)", s.Name, s.Size, s.Size, s.Padding*100)
}

// ValidateSpecs validates every spec and rejects duplicate names, which would
// silently overwrite each other in the output directory.
func ValidateSpecs(specs []Spec) error {
	if len(specs) == 0 {
		return errors.Wrap(ErrInvalidSpec, "no icons configured")
	}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return errors.Wrapf(ErrInvalidSpec, "duplicate name %s", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
