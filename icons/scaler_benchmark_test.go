package icons

import (
	"testing"

	"github.com/nvr-ai/go-iconforge/cutout"
)

// Benchmark each resampler on the largest default icon.
func BenchmarkScalers(b *testing.B) {
	src := getTestLogo(1024, 768)

	for _, name := range ScalerNames() {
		b.Run(name, func(b *testing.B) {
			scale, err := ScalerByName(name)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Fit(src, 512, 0.05, scale); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFitDefaultSpecs(b *testing.B) {
	src, _ := cutout.Remove(getTestLogo(800, 800), cutout.DefaultOptions())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, spec := range DefaultSpecs() {
			if _, err := Fit(src, spec.Size, spec.Padding, nil); err != nil {
				b.Fatal(err)
			}
		}
	}
}
