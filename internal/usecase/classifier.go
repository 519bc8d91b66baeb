package usecase

import (
	"fmt"
	"net/http"

	"github.com/example/entrypass/internal/faceid"
	"github.com/example/entrypass/internal/qrscan"
)

// Response codes produced by Classify. The set is closed: 0 is success,
// 1-9 are malformed-input failures that are not audit events, 10-19 are
// QR security failures, 20-29 are face security failures, and -1 is the
// explicit fallback for anything unrecognized.
const (
	CodeUnknown         = -1
	CodeSuccess         = 0
	CodeNoCodeFound     = 1
	CodeNoFacesFound    = 2
	CodeQRError         = 10
	CodeInvalidCode     = 11
	CodeMultipleCodes   = 12
	CodeExpiredCode     = 13
	CodeFaceError       = 20
	CodeFaceNotMatching = 21
	CodeMultipleFaces   = 22
)

const unknownMessage = "Unknown error, contact the vendor. "

// Outcome is the transient classification of one verification decision.
// Logged decides whether an audit entry is written; Outcome itself is never
// persisted, only its fields feed an entry.
type Outcome struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Logged  bool   `json:"logged"`
}

// Classify maps a verification error (or nil for success) to its outcome.
// It never fails: unmapped error types fall back to CodeUnknown with the
// original message appended, so no information is lost while the
// caller-facing code set stays closed.
func Classify(err error) Outcome {
	if err == nil {
		return Outcome{Code: CodeSuccess, Message: "Verification successful.", Logged: true}
	}

	switch e := err.(type) {
	case *qrscan.NoCodeFoundError:
		return Outcome{Code: CodeNoCodeFound, Message: "Empty frame. No QR code detected.", Logged: false}
	case *faceid.NoFacesFoundError:
		return Outcome{Code: CodeNoFacesFound, Message: "Empty frame. No face detected.", Logged: false}
	case *qrscan.InvalidCodeError:
		return Outcome{Code: CodeInvalidCode, Message: "The presented QR code is not valid.", Logged: true}
	case *qrscan.MultipleCodesError:
		return Outcome{Code: CodeMultipleCodes, Message: fmt.Sprintf("More than one QR code presented (%d detected).", e.Count), Logged: true}
	case *qrscan.ExpiredCodeError:
		return Outcome{Code: CodeExpiredCode, Message: "The entry permit has expired.", Logged: true}
	case *qrscan.Error:
		return Outcome{Code: CodeQRError, Message: "General QR code failure.", Logged: true}
	case *faceid.FaceNotMatchingError:
		return Outcome{Code: CodeFaceNotMatching, Message: "The detected face does not match the presented QR code.", Logged: true}
	case *faceid.MultipleFacesDetectedError:
		return Outcome{Code: CodeMultipleFaces, Message: fmt.Sprintf("More than one person detected (%d faces).", e.Count), Logged: true}
	case *faceid.Error:
		return Outcome{Code: CodeFaceError, Message: "General face verification failure.", Logged: true}
	default:
		return Outcome{Code: CodeUnknown, Message: unknownMessage + err.Error(), Logged: true}
	}
}

// HTTPStatus derives the transport status from a response code: codes below
// ten are malformed requests, multiples of ten are known server-side
// failures, and the remaining security-class codes are permission denials.
func HTTPStatus(code int) int {
	switch {
	case code == CodeSuccess:
		return http.StatusOK
	case code < 0:
		return http.StatusInternalServerError
	case code < 10:
		return http.StatusBadRequest
	case code%10 == 0:
		return http.StatusInternalServerError
	default:
		return http.StatusForbidden
	}
}
