package faceid

import "fmt"

// Error is the generic face verification failure, wrapping errors from the
// embedding service with their original message.
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

// NoFacesFoundError reports a probe image with no detectable face.
type NoFacesFoundError struct {
	Msg string
}

func (e *NoFacesFoundError) Error() string { return e.Msg }

// MultipleFacesDetectedError reports a probe carrying more than one face.
type MultipleFacesDetectedError struct {
	Count int
}

func (e *MultipleFacesDetectedError) Error() string {
	return fmt.Sprintf("detected %d faces, exactly one is required", e.Count)
}

// FaceNotMatchingError reports a face that does not belong to the worker
// whose code was presented.
type FaceNotMatchingError struct {
	Msg string
}

func (e *FaceNotMatchingError) Error() string { return e.Msg }
