package grpcclient

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/entrypass/internal/faceid"
	"github.com/example/entrypass/internal/logging"
	proto "github.com/example/entrypass/proto"
)

// DialFaceNet returns a ready-to-use client for the external face embedding
// service. Face detection is CPU-bound model inference, so it runs
// out-of-process and the API talks to it over gRPC.
func DialFaceNet(ctx context.Context, addr string, logger *zap.Logger) (faceid.Extractor, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_facenet", "", err)
		logger.Error("failed to dial face service", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewFaceNetClient(conn)
	return &faceNetExtractor{client: client, logger: logger.Named("facenet_client")}, conn, nil
}

type faceNetExtractor struct {
	client proto.FaceNetClient
	logger *zap.Logger
}

func (f *faceNetExtractor) Extract(ctx context.Context, imageBytes []byte) ([]faceid.Embedding, error) {
	resp, err := f.client.ExtractEmbeddings(ctx, &proto.ExtractRequest{ImageData: imageBytes})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.extract_embeddings", "", err)
		f.logger.Error("face service call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	embeddings := make([]faceid.Embedding, 0, len(resp.GetFaces()))
	for i, face := range resp.GetFaces() {
		values := face.GetValues()
		if len(values) != faceid.EmbeddingDim {
			malformed := &faceid.Error{Msg: fmt.Sprintf("face service returned a %d-dim embedding for face %d, want %d", len(values), i, faceid.EmbeddingDim)}
			f.logger.Error("malformed embedding from face service", zap.Error(malformed))
			return nil, malformed
		}
		embeddings = append(embeddings, faceid.Embedding(values))
	}
	return embeddings, nil
}
