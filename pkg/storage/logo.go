package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// Logos are scaled down to fit this box.
const (
	MaxLogoWidth  = 600
	MaxLogoHeight = 600
)

// NormalizeLogo decodes an uploaded image of at most maxBytes, scales it to fit
// the logo box and re-encodes it as PNG.
func NormalizeLogo(r io.Reader, maxBytes int64) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading logo: %w", err)
	}
	if int64(len(raw)) > maxBytes {
		return nil, ErrTooLarge
	}

	src, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrNotImage
	}

	img := src
	if b := src.Bounds(); b.Dx() > MaxLogoWidth || b.Dy() > MaxLogoHeight {
		img = imaging.Fit(src, MaxLogoWidth, MaxLogoHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding logo: %w", err)
	}
	return buf.Bytes(), nil
}
