package qrscan

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	qrgen "github.com/skip2/go-qrcode"

	"github.com/example/entrypass/internal/imaging"
)

func qrImage(t *testing.T, content string) image.Image {
	t.Helper()
	code, err := qrgen.New(content, qrgen.Medium)
	if err != nil {
		t.Fatalf("failed to build QR code: %v", err)
	}
	return code.Image(256)
}

// whiteCanvas returns a blank frame with the given codes drawn side by side.
func whiteCanvas(codes ...image.Image) image.Image {
	const margin = 64
	width := margin
	height := 0
	for _, code := range codes {
		width += code.Bounds().Dx() + margin
		if h := code.Bounds().Dy(); h > height {
			height = h
		}
	}
	if height == 0 {
		height = 256
		width = 256
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height+2*margin))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	x := margin
	for _, code := range codes {
		target := image.Rect(x, margin, x+code.Bounds().Dx(), margin+code.Bounds().Dy())
		draw.Draw(canvas, target, code, code.Bounds().Min, draw.Src)
		x += code.Bounds().Dx() + margin
	}
	return canvas
}

func TestScanSingleCode(t *testing.T) {
	const payload = "gAAAAABotest-secret-payload"
	img := whiteCanvas(qrImage(t, payload))

	got, err := Scan(img)
	if err != nil {
		t.Fatalf("expected payload, got error: %v", err)
	}
	if got != payload {
		t.Fatalf("expected %q, got %q", payload, got)
	}
}

func TestScanEmptyFrame(t *testing.T) {
	_, err := Scan(whiteCanvas())

	var noCode *NoCodeFoundError
	if !errors.As(err, &noCode) {
		t.Fatalf("expected NoCodeFoundError, got %v", err)
	}
}

func TestScanTwoCodes(t *testing.T) {
	img := whiteCanvas(qrImage(t, "first-secret"), qrImage(t, "second-secret"))

	_, err := Scan(img)

	var multiple *MultipleCodesError
	if !errors.As(err, &multiple) {
		t.Fatalf("expected MultipleCodesError, got %v", err)
	}
	if multiple.Count != 2 {
		t.Fatalf("expected count 2, got %d", multiple.Count)
	}
}

func TestGenerateEntryPassRoundTrip(t *testing.T) {
	const secret = "entry-pass-round-trip-secret"

	png, err := GenerateEntryPass(secret)
	if err != nil {
		t.Fatalf("failed to generate entry pass: %v", err)
	}

	img, err := imaging.Decode(png)
	if err != nil {
		t.Fatalf("entry pass is not a decodable image: %v", err)
	}

	got, err := Scan(img)
	if err != nil {
		t.Fatalf("entry pass did not scan: %v", err)
	}
	if got != secret {
		t.Fatalf("expected %q, got %q", secret, got)
	}
}
