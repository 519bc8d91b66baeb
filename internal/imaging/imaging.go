// Package imaging decodes uploaded raster images into image.Image values for
// the QR scanner. Face processing never decodes pixels in-process; the raw
// upload bytes are forwarded to the embedding service untouched.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode parses raw upload bytes as a raster image in any registered format.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse file as an image: %w", err)
	}
	return img, nil
}
