package label

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"testing"
)

func TestRenderProducesPNG(t *testing.T) {
	data, err := Render("260828-1542-kX7Qp2mRa9Lw")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding rendered PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dy() != BarHeight {
		t.Errorf("expected height %d, got %d", BarHeight, bounds.Dy())
	}
	if bounds.Dx()%ModuleWidth != 0 {
		t.Errorf("width %d is not a multiple of module width %d", bounds.Dx(), ModuleWidth)
	}

	// Quiet zones must be blank.
	for x := 0; x < QuietZone*ModuleWidth; x++ {
		if !isWhite(img.At(x, BarHeight/2)) {
			t.Fatalf("expected white quiet zone at x=%d", x)
		}
		if !isWhite(img.At(bounds.Dx()-1-x, BarHeight/2)) {
			t.Fatalf("expected white quiet zone at x=%d", bounds.Dx()-1-x)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render("260828-1542-kX7Qp2mRa9Lw")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := Render("260828-1542-kX7Qp2mRa9Lw")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("expected identical output for identical input")
	}
}

func TestRenderInvalidInput(t *testing.T) {
	if _, err := Render(""); err == nil {
		t.Error("expected error for empty content")
	}
	// Characters outside the Code 128 set must fail, not render garbage.
	if _, err := Render("čšž-1542"); err == nil {
		t.Error("expected error for non-encodable characters")
	}
}

func TestRenderBase64(t *testing.T) {
	encoded, err := RenderBase64("260828-1542-kX7Qp2mRa9Lw")
	if err != nil {
		t.Fatalf("RenderBase64: %v", err)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decoding base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("decoded base64 is not a PNG: %v", err)
	}
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}
