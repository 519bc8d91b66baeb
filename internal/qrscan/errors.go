package qrscan

import "fmt"

// Error is the generic QR failure, raised when the detector breaks in an
// unexpected way. Specific failure kinds below have their own types so the
// response classifier can map each to its own code.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NoCodeFoundError reports an image with no readable QR code.
type NoCodeFoundError struct {
	Msg string
}

func (e *NoCodeFoundError) Error() string { return e.Msg }

// MultipleCodesError reports an image carrying more than one QR code.
type MultipleCodesError struct {
	Count int
}

func (e *MultipleCodesError) Error() string {
	return fmt.Sprintf("detected %d QR codes, exactly one is required", e.Count)
}

// InvalidCodeError reports a scanned secret that matches no stored worker.
type InvalidCodeError struct {
	Msg string
}

func (e *InvalidCodeError) Error() string { return e.Msg }

// ExpiredCodeError reports a valid secret whose entry permit has lapsed.
type ExpiredCodeError struct {
	Msg string
}

func (e *ExpiredCodeError) Error() string { return e.Msg }
