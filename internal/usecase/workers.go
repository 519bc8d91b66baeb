package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/entrypass/internal/credential"
	"github.com/example/entrypass/internal/faceid"
	"github.com/example/entrypass/internal/logging"
	"github.com/example/entrypass/internal/qrscan"
	"github.com/example/entrypass/internal/repository"
)

// WorkerAdminStore defines the worker persistence needed by the admin flow.
type WorkerAdminStore interface {
	Create(ctx context.Context, worker *repository.Worker) error
	GetByID(ctx context.Context, id uint) (*repository.Worker, error)
	UpdateIdentity(ctx context.Context, id uint, name, secret string) error
	UpdateExpiration(ctx context.Context, id uint, expiration time.Time) error
	UpdateEmbedding(ctx context.Context, id uint, embedding []byte) error
	List(ctx context.Context) ([]repository.Worker, error)
	Delete(ctx context.Context, id uint) error
}

// WorkerUseCase mints and maintains worker credentials: enrollment,
// expiration management, secret regeneration and entry-pass rendering.
type WorkerUseCase struct {
	repo      WorkerAdminStore
	codec     *credential.Codec
	extractor faceid.Extractor
	cache     Cache
	logger    *zap.Logger
}

func NewWorkerUseCase(repo WorkerAdminStore, codec *credential.Codec, extractor faceid.Extractor, cache Cache, logger *zap.Logger) *WorkerUseCase {
	return &WorkerUseCase{
		repo:      repo,
		codec:     codec,
		extractor: extractor,
		cache:     cache,
		logger:    logger.Named("worker_usecase"),
	}
}

// Create enrolls a new worker. The secret depends on the worker id, which
// only exists after the insert, so the row is created with a unique
// placeholder and the real secret is written right after.
func (uc *WorkerUseCase) Create(ctx context.Context, name string, expiration time.Time, faceImage []byte) (*repository.Worker, error) {
	blob, err := uc.enrollEmbedding(ctx, faceImage)
	if err != nil {
		return nil, err
	}

	worker := &repository.Worker{
		Name:           name,
		FaceEmbedding:  blob,
		ExpirationDate: expiration,
		Secret:         "pending:" + uuid.NewString(),
	}
	if err := uc.repo.Create(ctx, worker); err != nil {
		return nil, logging.NewOperationError("worker_usecase.create", "", err)
	}

	secret, err := uc.codec.Encode(worker.ID, name)
	if err != nil {
		return nil, logging.NewOperationError("worker_usecase.encode_secret", "", err)
	}
	if err := uc.repo.UpdateIdentity(ctx, worker.ID, name, secret); err != nil {
		return nil, logging.NewOperationError("worker_usecase.store_secret", "", err)
	}
	worker.Secret = secret

	uc.logger.Info("worker enrolled", zap.Uint("worker_id", worker.ID))
	return worker, nil
}

// Rename updates the display name. The name is baked into the encrypted
// secret, so a rename regenerates the secret and retires the old pass.
func (uc *WorkerUseCase) Rename(ctx context.Context, id uint, name string) (*repository.Worker, error) {
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	secret, err := uc.codec.Encode(id, name)
	if err != nil {
		return nil, logging.NewOperationError("worker_usecase.encode_secret", "", err)
	}
	if err := uc.repo.UpdateIdentity(ctx, id, name, secret); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, worker.Secret)

	worker.Name = name
	worker.Secret = secret
	return worker, nil
}

// ExtendExpiration moves the permit validity boundary.
func (uc *WorkerUseCase) ExtendExpiration(ctx context.Context, id uint, expiration time.Time) (*repository.Worker, error) {
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateExpiration(ctx, id, expiration); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, worker.Secret)

	worker.ExpirationDate = expiration
	return worker, nil
}

// UpdateFaceImage re-enrolls the worker's reference embedding from a new
// photo.
func (uc *WorkerUseCase) UpdateFaceImage(ctx context.Context, id uint, faceImage []byte) (*repository.Worker, error) {
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	blob, err := uc.enrollEmbedding(ctx, faceImage)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateEmbedding(ctx, id, blob); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, worker.Secret)

	worker.FaceEmbedding = blob
	return worker, nil
}

// Get retrieves one worker.
func (uc *WorkerUseCase) Get(ctx context.Context, id uint) (*repository.Worker, error) {
	return uc.repo.GetByID(ctx, id)
}

// List retrieves all workers.
func (uc *WorkerUseCase) List(ctx context.Context) ([]repository.Worker, error) {
	return uc.repo.List(ctx)
}

// Delete removes a worker. Historical audit entries keep their weak
// reference to the deleted id.
func (uc *WorkerUseCase) Delete(ctx context.Context, id uint) error {
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx, worker.Secret)
	return nil
}

// EntryPass renders the worker's printable QR pass.
func (uc *WorkerUseCase) EntryPass(ctx context.Context, id uint) ([]byte, error) {
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return qrscan.GenerateEntryPass(worker.Secret)
}

// enrollEmbedding extracts reference embeddings from an enrollment photo.
// Every detected face is kept as a reference; at least one is required.
func (uc *WorkerUseCase) enrollEmbedding(ctx context.Context, faceImage []byte) ([]byte, error) {
	embeddings, err := uc.extractor.Extract(ctx, faceImage)
	if err != nil {
		return nil, &faceid.Error{Msg: "face embedding extraction failed", Err: err}
	}
	if len(embeddings) == 0 {
		return nil, &faceid.NoFacesFoundError{Msg: "no faces detected in enrollment photo"}
	}

	blob, err := faceid.MarshalEmbeddings(embeddings)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize embeddings: %w", err)
	}
	return blob, nil
}

// invalidate drops the cached secret lookup after a credential change.
// Best effort: the cache TTL bounds staleness either way.
func (uc *WorkerUseCase) invalidate(ctx context.Context, secret string) {
	if err := uc.cache.Del(ctx, workerCacheKey(secret)); err != nil {
		uc.logger.Warn("failed to invalidate worker cache", zap.Error(err))
	}
}
