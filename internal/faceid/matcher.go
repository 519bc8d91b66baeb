package faceid

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Extractor produces facial embeddings for every face found in an image.
// The production implementation lives in internal/grpcclient.
type Extractor interface {
	Extract(ctx context.Context, imageBytes []byte) ([]Embedding, error)
}

// Matcher verifies a probe image against a worker's enrolled embeddings.
type Matcher struct {
	extractor Extractor
	logger    *zap.Logger
}

func NewMatcher(extractor Extractor, logger *zap.Logger) *Matcher {
	return &Matcher{extractor: extractor, logger: logger.Named("face_matcher")}
}

// Match extracts embeddings from the probe and compares the single detected
// face against each reference vector. A nil return means the face belongs to
// the worker; every failure path returns a typed error.
//
// A worker may have several enrolled references (re-enrollment keeps the old
// ones). The probe matches if it is within threshold of at least one of them.
func (m *Matcher) Match(ctx context.Context, references []Embedding, probe []byte) error {
	extracted, err := m.extractor.Extract(ctx, probe)
	if err != nil {
		return &Error{Msg: "face embedding extraction failed", Err: err}
	}

	if len(extracted) > 1 {
		return &MultipleFacesDetectedError{Count: len(extracted)}
	}
	if len(extracted) == 0 {
		return &NoFacesFoundError{Msg: "no faces detected"}
	}
	// Stored references are dimension-checked on unmarshal; the probe vector
	// comes straight from the service and must be checked here.
	if len(extracted[0]) != EmbeddingDim {
		return &Error{Msg: fmt.Sprintf("embedding service returned a %d-dim vector, want %d", len(extracted[0]), EmbeddingDim)}
	}

	for _, ref := range references {
		if d := Distance(ref, extracted[0]); d < MatchThreshold {
			m.logger.Debug("face matched", zap.Float64("distance", d))
			return nil
		}
	}
	return &FaceNotMatchingError{Msg: "detected face does not match the presented code"}
}
