// Package label renders item codes as Code 128 barcode labels.
package label

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"golang.org/x/image/draw"
)

// Fixed module geometry for printed labels.
const (
	// ModuleWidth is the width of a single barcode module in pixels.
	ModuleWidth = 3
	// BarHeight is the bar height in pixels.
	BarHeight = 60
	// QuietZone is the blank margin on each side, in modules.
	QuietZone = 10
)

// Render encodes content as a Code 128 barcode and returns it as PNG bytes.
// It is a pure function of its input and fails deterministically if content
// contains characters outside the Code 128 character set.
func Render(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("barcode content is empty")
	}

	bc, err := code128.Encode(content)
	if err != nil {
		return nil, fmt.Errorf("encoding %q as code 128: %w", content, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rasterize(bc)); err != nil {
		return nil, fmt.Errorf("encoding barcode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBase64 renders content as a barcode PNG and base64-encodes it for
// embedding in an HTML data URI.
func RenderBase64(content string) (string, error) {
	data, err := Render(content)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// rasterize scales the one-pixel-module barcode strip to the fixed label
// geometry. Nearest-neighbor keeps module edges binary-crisp; interpolation
// would produce gray fringes that confuse scanners.
func rasterize(bc barcode.Barcode) image.Image {
	modules := bc.Bounds().Dx()
	width := (modules + 2*QuietZone) * ModuleWidth

	dst := image.NewGray(image.Rect(0, 0, width, BarHeight))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	bars := image.Rect(QuietZone*ModuleWidth, 0, (QuietZone+modules)*ModuleWidth, BarHeight)
	draw.NearestNeighbor.Scale(dst, bars, bc, bc.Bounds(), draw.Src, nil)

	return dst
}
