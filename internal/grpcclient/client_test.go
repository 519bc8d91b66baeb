package grpcclient

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/example/entrypass/internal/faceid"
	proto "github.com/example/entrypass/proto"
)

type stubFaceNetClient struct {
	resp *proto.ExtractResponse
	err  error
}

func (s *stubFaceNetClient) ExtractEmbeddings(ctx context.Context, in *proto.ExtractRequest, opts ...grpc.CallOption) (*proto.ExtractResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func fullVector() []float64 {
	return make([]float64, faceid.EmbeddingDim)
}

func TestExtractConvertsFaces(t *testing.T) {
	client := &stubFaceNetClient{resp: &proto.ExtractResponse{
		Faces: []*proto.FaceEmbedding{{Values: fullVector()}, {Values: fullVector()}},
	}}
	extractor := &faceNetExtractor{client: client, logger: zap.NewNop()}

	embeddings, err := extractor.Extract(context.Background(), []byte("frame"))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(embeddings) != 2 {
		t.Fatalf("expected two embeddings, got %d", len(embeddings))
	}
	for i, emb := range embeddings {
		if len(emb) != faceid.EmbeddingDim {
			t.Fatalf("embedding %d has dimension %d", i, len(emb))
		}
	}
}

func TestExtractRejectsMalformedVector(t *testing.T) {
	client := &stubFaceNetClient{resp: &proto.ExtractResponse{
		Faces: []*proto.FaceEmbedding{{Values: make([]float64, faceid.EmbeddingDim/2)}},
	}}
	extractor := &faceNetExtractor{client: client, logger: zap.NewNop()}

	_, err := extractor.Extract(context.Background(), []byte("frame"))

	var faceErr *faceid.Error
	if !errors.As(err, &faceErr) {
		t.Fatalf("expected a face error for a malformed vector, got %v", err)
	}
}

func TestExtractWrapsTransportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	extractor := &faceNetExtractor{client: &stubFaceNetClient{err: cause}, logger: zap.NewNop()}

	_, err := extractor.Extract(context.Background(), []byte("frame"))
	if !errors.Is(err, cause) {
		t.Fatalf("expected the transport cause to be preserved, got %v", err)
	}
}
