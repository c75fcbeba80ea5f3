package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat means the bytes are not a decodable image.
var ErrUnsupportedFormat = errors.New("preview: unsupported image format")

// Decode decodes gif, jpeg, png or webp data. Animated gifs yield their
// first frame.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty body", ErrUnsupportedFormat)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("preview: decode %s: %w", format, err)
	}
	return img, format, nil
}
