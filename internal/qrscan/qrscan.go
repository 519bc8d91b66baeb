// Package qrscan detects and decodes QR codes in camera frames and renders
// the printable entry-pass QR for a credential secret.
package qrscan

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	qrmulti "github.com/makiuchi-d/gozxing/multi/qrcode"
	qrgen "github.com/skip2/go-qrcode"
)

// EntryPassSize is the pixel size of generated entry-pass images. The
// rendered code keeps the standard quiet zone so terminal cameras lock on
// quickly even when the pass is printed small.
const EntryPassSize = 512

// Scan runs multi-code detection over a decoded frame and returns the single
// QR payload it contains.
//
// Detection is heuristic: the underlying detector can miss a perfectly valid
// code in an otherwise identical frame. Callers treat NoCodeFoundError as
// retryable by submitting another frame.
func Scan(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", &Error{Msg: "failed to prepare image for QR detection", Err: err}
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	results, err := qrmulti.NewQRCodeMultiReader().DecodeMultiple(bmp, hints)
	if err != nil {
		// The reader reports NotFound both for "no pattern" and "pattern
		// present but unreadable"; the two are one outcome for callers.
		return "", &NoCodeFoundError{Msg: "no QR code detected"}
	}

	var codes []string
	for _, result := range results {
		if text := result.GetText(); text != "" {
			codes = append(codes, text)
		}
	}

	switch len(codes) {
	case 1:
		return codes[0], nil
	case 0:
		return "", &NoCodeFoundError{Msg: "QR pattern detected but could not be read"}
	default:
		return "", &MultipleCodesError{Count: len(codes)}
	}
}

// GenerateEntryPass renders the secret as a PNG QR code for printing.
func GenerateEntryPass(secret string) ([]byte, error) {
	png, err := qrgen.Encode(secret, qrgen.Medium, EntryPassSize)
	if err != nil {
		return nil, &Error{Msg: "failed to render entry pass", Err: err}
	}
	return png, nil
}
