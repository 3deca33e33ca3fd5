package icons

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-iconforge/images"
)

func TestDefaultSpecs(t *testing.T) {
	specs := DefaultSpecs()
	require.Len(t, specs, 5)
	require.NoError(t, ValidateSpecs(specs))

	expected := []struct {
		name string
		size int
	}{
		{NameFavicon, 64},
		{NameAppleTouchIcon, 180},
		{NamePWA192, 192},
		{NamePWA512, 512},
		{NameMaskable512, 512},
	}
	for i, e := range expected {
		assert.Equal(t, e.name, specs[i].Name)
		assert.Equal(t, e.size, specs[i].Size)
	}

	format, err := images.FormatFromPath(specs[0].Name)
	require.NoError(t, err)
	assert.Equal(t, images.FormatICO, format, "only the favicon is an icon container")
	for _, s := range specs[1:] {
		format, err := images.FormatFromPath(s.Name)
		require.NoError(t, err)
		assert.Equal(t, images.FormatPNG, format)
	}
}

func TestDefaultSpecs_ReturnsCopy(t *testing.T) {
	a := DefaultSpecs()
	a[0].Size = 1
	assert.Equal(t, 64, DefaultSpecs()[0].Size)
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"Valid", Spec{Name: "a.png", Size: 32, Padding: 0.1}, false},
		{"Empty name", Spec{Size: 32}, true},
		{"Zero size", Spec{Name: "a.png"}, true},
		{"Half padding", Spec{Name: "a.png", Size: 32, Padding: 0.5}, true},
		{"Negative padding", Spec{Name: "a.png", Size: 32, Padding: -0.01}, true},
		{"Unknown extension", Spec{Name: "a.svg", Size: 32}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.Equal(t, ErrInvalidSpec, errors.Cause(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSpecs(t *testing.T) {
	assert.Equal(t, ErrInvalidSpec, errors.Cause(ValidateSpecs(nil)))

	dup := []Spec{{Name: "a.png", Size: 8}, {Name: "a.png", Size: 16}}
	err := ValidateSpecs(dup)
	assert.Equal(t, ErrInvalidSpec, errors.Cause(err))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestSpec_String(t *testing.T) {
	s := Spec{Name: NameMaskable512, Size: 512, Padding: 0.2}
	assert.Equal(t, "maskable-icon-512x512.png (512x512, padding 20%)", s.String())
	assert.Equal(t, 307, s.Inner())
}
