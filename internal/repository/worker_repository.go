package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrWorkerNotFound is returned when a lookup matches no stored worker.
var ErrWorkerNotFound = errors.New("worker not found")

// WorkerRepository provides persistence for worker credentials.
type WorkerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewWorkerRepository(db *gorm.DB, logger *zap.Logger) *WorkerRepository {
	return &WorkerRepository{db: db, logger: logger.Named("worker_repository")}
}

// AutoMigrate ensures the workers schema is available.
func (r *WorkerRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Worker{})
}

// Create inserts a new worker row. The unique index on secret is the
// store-level uniqueness guarantee the codec relies on.
func (r *WorkerRepository) Create(ctx context.Context, worker *Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

// GetByID retrieves a worker by primary key.
func (r *WorkerRepository) GetByID(ctx context.Context, id uint) (*Worker, error) {
	var worker Worker
	if err := r.db.WithContext(ctx).First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// GetBySecret retrieves the worker whose stored secret exactly equals the
// scanned value. Secret equality is the credential binding check; no
// decryption happens at lookup time.
func (r *WorkerRepository) GetBySecret(ctx context.Context, secret string) (*Worker, error) {
	var worker Worker
	if err := r.db.WithContext(ctx).First(&worker, "secret = ?", secret).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// UpdateIdentity updates the display name together with the regenerated
// secret in a single statement, so a rename never leaves a stale secret.
func (r *WorkerRepository) UpdateIdentity(ctx context.Context, id uint, name, secret string) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"name": name, "secret": secret})
}

// UpdateExpiration moves the worker's credential validity boundary.
func (r *WorkerRepository) UpdateExpiration(ctx context.Context, id uint, expiration time.Time) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"expiration_date": expiration})
}

// UpdateEmbedding replaces the worker's enrolled face embedding blob.
func (r *WorkerRepository) UpdateEmbedding(ctx context.Context, id uint, embedding []byte) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"face_embedding": embedding})
}

func (r *WorkerRepository) updateColumns(ctx context.Context, id uint, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Worker{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

// List returns all workers ordered by id.
func (r *WorkerRepository) List(ctx context.Context) ([]Worker, error) {
	var workers []Worker
	if err := r.db.WithContext(ctx).Order("id").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

// Delete removes a worker. Historical entries keep their worker_id value;
// the reference simply stops resolving.
func (r *WorkerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Worker{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}
