package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/entrypass/internal/faceid"
	"github.com/example/entrypass/internal/imaging"
	"github.com/example/entrypass/internal/logging"
	"github.com/example/entrypass/internal/qrscan"
	"github.com/example/entrypass/internal/repository"
)

const workerCacheTTL = time.Minute

// WorkerStore defines the worker lookups needed by the verification flow.
type WorkerStore interface {
	GetBySecret(ctx context.Context, secret string) (*repository.Worker, error)
}

// EntryStore defines the append-only audit persistence needed by the
// verification flow.
type EntryStore interface {
	Create(ctx context.Context, requestID string, entry *repository.Entry) error
}

// FaceMatcher verifies a probe image against enrolled reference embeddings.
type FaceMatcher interface {
	Match(ctx context.Context, references []faceid.Embedding, probe []byte) error
}

// VerificationUseCase chains QR resolution, face matching, outcome
// classification and audit logging into one stateless decision per request.
type VerificationUseCase struct {
	workers WorkerStore
	entries EntryStore
	cache   Cache
	matcher FaceMatcher
	logger  *zap.Logger

	// seams for tests
	scan func(img image.Image) (string, error)
	now  func() time.Time
}

// VerificationResult is the caller-facing decision for one request.
type VerificationResult struct {
	RequestID string
	Outcome   Outcome
	Status    int
	Worker    *repository.Worker
}

// NewVerificationUseCase constructs the verification orchestrator.
func NewVerificationUseCase(workers WorkerStore, entries EntryStore, cache Cache, matcher FaceMatcher, logger *zap.Logger) *VerificationUseCase {
	return &VerificationUseCase{
		workers: workers,
		entries: entries,
		cache:   cache,
		matcher: matcher,
		logger:  logger.Named("verification_usecase"),
		scan:    qrscan.Scan,
		now:     time.Now,
	}
}

// Verify runs the full two-factor check over one camera frame and records
// the decision. The pipeline errors feed the classifier untransformed; only
// an audit write failure is returned as an error, because completing a
// flagged decision without its audit record is not acceptable.
//
// Each call is independent; nothing is retried here. Detector flakiness on
// a valid frame surfaces as a quiet failure the terminal can retry by
// submitting another frame.
func (uc *VerificationUseCase) Verify(ctx context.Context, imageBytes []byte) (*VerificationResult, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.verify", requestID)

	worker, pipelineErr := uc.runPipeline(ctx, requestID, imageBytes)
	outcome := Classify(pipelineErr)

	if pipelineErr != nil {
		opLogger.Info("verification failed",
			zap.Int("code", outcome.Code),
			zap.Bool("logged", outcome.Logged),
			zap.String("reason", pipelineErr.Error()))
	} else {
		opLogger.Info("verification successful", zap.Uint("worker_id", worker.ID))
	}

	if outcome.Logged {
		if err := uc.recordEntry(ctx, requestID, outcome, worker, imageBytes); err != nil {
			opLogger.Error("failed to persist audit entry", zap.Error(err))
			return nil, err
		}
	}

	return &VerificationResult{
		RequestID: requestID,
		Outcome:   outcome,
		Status:    HTTPStatus(outcome.Code),
		Worker:    worker,
	}, nil
}

// runPipeline walks scan -> resolve -> match. It returns the resolved worker
// even when a later stage fails, so the audit entry can reference the
// identity the failed attempt claimed.
func (uc *VerificationUseCase) runPipeline(ctx context.Context, requestID string, imageBytes []byte) (*repository.Worker, error) {
	img, err := imaging.Decode(imageBytes)
	if err != nil {
		// Not part of the verification taxonomy; classified as unknown.
		return nil, err
	}

	worker, err := uc.resolveWorker(ctx, requestID, img)
	if err != nil {
		return nil, err
	}

	references, err := faceid.UnmarshalEmbeddings(worker.FaceEmbedding)
	if err != nil {
		return worker, &faceid.Error{Msg: "stored reference embedding is unreadable", Err: err}
	}

	if err := uc.matcher.Match(ctx, references, imageBytes); err != nil {
		return worker, err
	}
	return worker, nil
}

// resolveWorker scans the frame for a credential secret and resolves it to a
// stored worker, enforcing expiration. Scanner failures propagate unchanged;
// unexpected store errors are logged and re-raised rather than swallowed.
func (uc *VerificationUseCase) resolveWorker(ctx context.Context, requestID string, img image.Image) (*repository.Worker, error) {
	secret, err := uc.scan(img)
	if err != nil {
		return nil, err
	}

	worker, err := uc.lookupWorker(ctx, requestID, secret)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, &qrscan.InvalidCodeError{Msg: "no worker matches the presented code"}
		}
		logging.WithOperation(uc.logger, "usecase.resolve_worker", requestID).Error("worker lookup failed", zap.Error(err))
		return nil, err
	}

	if worker.ExpirationDate.Before(uc.now()) {
		return nil, &qrscan.ExpiredCodeError{Msg: "entry permit expired"}
	}
	return worker, nil
}

// lookupWorker consults the read cache before the store. Cache trouble is
// advisory only: a failed read or write falls through to the database and
// never fails the request.
func (uc *VerificationUseCase) lookupWorker(ctx context.Context, requestID, secret string) (*repository.Worker, error) {
	opLogger := logging.WithOperation(uc.logger, "usecase.lookup_worker", requestID)
	key := workerCacheKey(secret)

	if cached, err := uc.cache.Get(ctx, key); err == nil {
		var worker repository.Worker
		if err := json.Unmarshal([]byte(cached), &worker); err != nil {
			opLogger.Warn("failed to decode cached worker", zap.Error(err))
		} else {
			return &worker, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		opLogger.Warn("failed to read worker cache", zap.Error(err))
	}

	worker, err := uc.workers.GetBySecret(ctx, secret)
	if err != nil {
		return nil, err
	}

	if serialized, err := json.Marshal(worker); err == nil {
		if err := uc.cache.Set(ctx, key, string(serialized), workerCacheTTL); err != nil {
			opLogger.Warn("failed to cache worker", zap.Error(err))
		}
	}
	return worker, nil
}

// recordEntry persists the audit record for a logged outcome. Evidentiary
// image bytes are retained for every logged failure; a clean success never
// keeps biometric evidence, whatever the caller supplied.
func (uc *VerificationUseCase) recordEntry(ctx context.Context, requestID string, outcome Outcome, worker *repository.Worker, image []byte) error {
	if outcome.Code == CodeSuccess {
		image = nil
	}

	var workerID *uint
	if worker != nil {
		id := worker.ID
		workerID = &id
	}

	entry := &repository.Entry{
		Date:      uc.now().UTC(),
		WorkerID:  workerID,
		Code:      outcome.Code,
		Message:   outcome.Message,
		FaceImage: image,
	}
	return uc.entries.Create(ctx, requestID, entry)
}
