package images

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"image"
)

// Checksum generates a deterministic checksum of an image's dimensions and
// pixels, used to verify that repeated runs produce identical output.
//
// Arguments:
// - img: The image to hash.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for a zero-size image.
//
// Example:
//
// ```go
//
//	checksum := Checksum(icon)
//	fmt.Printf("Icon checksum: %s\n", checksum)
//
// ```
func Checksum(img *image.NRGBA) string {
	if img == nil || img.Rect.Empty() {
		return "empty"
	}

	hash := md5.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(img.Rect.Dx()))
	binary.BigEndian.PutUint32(dims[4:8], uint32(img.Rect.Dy()))
	hash.Write(dims[:])

	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		i := img.PixOffset(img.Rect.Min.X, y)
		hash.Write(img.Pix[i : i+img.Rect.Dx()*4])
	}

	return fmt.Sprintf("%x", hash.Sum(nil))
}
