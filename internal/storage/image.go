package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1280
	webpQuality   = 85
)

var ErrUnsupportedImage = errors.New("unsupported or corrupt image data")

// NormalizeImage decodes an uploaded product image (jpeg, png or webp),
// caps its width at maxImageWidth and re-encodes it as webp. Every stored
// asset ends up in one format regardless of what the client sent.
func NormalizeImage(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		img, err = webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, ErrUnsupportedImage
		}
	}

	img = capWidth(img, maxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func capWidth(img image.Image, max int) image.Image {
	b := img.Bounds()
	if b.Dx() <= max {
		return img
	}

	h := b.Dy() * max / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, max, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
