package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/entrypass/internal/repository"
	"github.com/example/entrypass/internal/usecase"
)

// MaxUploadSize caps camera frame and enrollment photo uploads.
const MaxUploadSize = 10 << 20

// RegisterRoutes wires the HTTP handlers to the Gin router. The scan
// endpoint is the unauthenticated terminal surface; everything under the
// admin group requires a valid bearer token.
func RegisterRoutes(router *gin.Engine, verifyUC *usecase.VerificationUseCase, workerUC *usecase.WorkerUseCase, reportUC *usecase.ReportUseCase, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/scan", handleScan(verifyUC))

	admin := router.Group("/api", authMiddleware)
	{
		admin.GET("/workers", handleListWorkers(workerUC))
		admin.POST("/workers", handleCreateWorker(workerUC))
		admin.GET("/workers/:id", handleGetWorker(workerUC))
		admin.DELETE("/workers/:id", handleDeleteWorker(workerUC))
		admin.PUT("/workers/:id/name", handleRenameWorker(workerUC))
		admin.PUT("/workers/:id/expiration", handleExtendExpiration(workerUC))
		admin.PUT("/workers/:id/face", handleUpdateFace(workerUC))
		admin.GET("/workers/:id/entrypass", handleEntryPass(workerUC))
		admin.GET("/entries", handleListEntries(reportUC))
		admin.GET("/entries/summary", handleEntrySummary(reportUC))
	}
}

func handleScan(uc *usecase.VerificationUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := readImageUpload(c, "file")
		if !ok {
			return
		}

		result, err := uc.Verify(c.Request.Context(), data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification could not be recorded"})
			return
		}

		c.JSON(result.Status, result.Outcome)
	}
}

func handleCreateWorker(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		expiration, ok := parseExpiration(c)
		if !ok {
			return
		}

		data, ok := readImageUpload(c, "file")
		if !ok {
			return
		}

		worker, err := uc.Create(c.Request.Context(), name, expiration, data)
		if err != nil {
			respondWorkerError(c, err)
			return
		}
		c.JSON(http.StatusCreated, workerResponse(worker))
	}
}

func handleListWorkers(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		workers, err := uc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workers"})
			return
		}

		out := make([]gin.H, 0, len(workers))
		for i := range workers {
			out = append(out, workerResponse(&workers[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleGetWorker(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseWorkerID(c)
		if !ok {
			return
		}
		worker, err := uc.Get(c.Request.Context(), id)
		if err != nil {
			respondWorkerError(c, err)
			return
		}
		c.JSON(http.StatusOK, workerResponse(worker))
	}
}

func handleDeleteWorker(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseWorkerID(c)
		if !ok {
			return
		}
		if err := uc.Delete(c.Request.Context(), id); err != nil {
			respondWorkerError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleRenameWorker(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseWorkerID(c)
		if !ok {
			return
		}
		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		worker, err := uc.Rename(c.Request.Context(), id, name)
		if err != nil {
			respondWorkerError(c, err)
			return
		}
		c.JSON(http.StatusOK, workerResponse(worker))
	}
}

func handleExtendExpiration(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseWorkerID(c)
		if !ok {
			return
		}
		expiration, ok := parseExpiration(c)
		if !ok {
			return
		}

		worker, err := uc.ExtendExpiration(c.Request.Context(), id, expiration)
		if err != nil {
			respondWorkerError(c, err)
			return
		}
		c.JSON(http.StatusOK, workerResponse(worker))
	}
}

func handleUpdateFace(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseWorkerID(c)
		if !ok {
			return
		}
		data, ok := readImageUpload(c, "file")
		if !ok {
			return
		}

		worker, err := uc.UpdateFaceImage(c.Request.Context(), id, data)
		if err != nil {
			respondWorkerError(c, err)
			return
		}
		c.JSON(http.StatusOK, workerResponse(worker))
	}
}

func handleEntryPass(uc *usecase.WorkerUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseWorkerID(c)
		if !ok {
			return
		}
		png, err := uc.EntryPass(c.Request.Context(), id)
		if err != nil {
			respondWorkerError(c, err)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

func handleListEntries(uc *usecase.ReportUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := parseEntryFilter(c)
		if !ok {
			return
		}
		rows, err := uc.ListEntries(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query entries"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func handleEntrySummary(uc *usecase.ReportUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := parseEntryFilter(c)
		if !ok {
			return
		}
		summary, err := uc.Summarize(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize entries"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// readImageUpload pulls a bounded image file out of the multipart form and
// writes the error response itself when the upload is unacceptable.
func readImageUpload(c *gin.Context, field string) ([]byte, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required (multipart key \"" + field + "\")"})
		return nil, false
	}

	if file.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return nil, false
	}
	if !acceptableImageType(file) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "file must be an image"})
		return nil, false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open file"})
		return nil, false
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return nil, false
	}
	if len(data) > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return nil, false
	}
	return data, true
}

func acceptableImageType(file *multipart.FileHeader) bool {
	contentType := file.Header.Get("Content-Type")
	// Browsers always set this; the body is sniffed again at decode time.
	return contentType == "" || strings.HasPrefix(contentType, "image/")
}

func parseWorkerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid worker id"})
		return 0, false
	}
	return uint(id), true
}

func parseExpiration(c *gin.Context) (time.Time, bool) {
	raw := strings.TrimSpace(c.PostForm("expiration_date"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date is required"})
		return time.Time{}, false
	}
	expiration, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date must be RFC 3339"})
		return time.Time{}, false
	}
	return expiration, true
}

func parseEntryFilter(c *gin.Context) (repository.EntryFilter, bool) {
	var filter repository.EntryFilter

	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must be RFC 3339"})
			return filter, false
		}
		filter.From = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_to must be RFC 3339"})
			return filter, false
		}
		filter.To = &t
	}
	if raw := c.Query("worker_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid worker_id"})
			return filter, false
		}
		workerID := uint(id)
		filter.WorkerID = &workerID
	}
	filter.OnlyValid = c.Query("valid") == "true"
	filter.OnlyInvalid = c.Query("invalid") == "true"

	return filter, true
}

func workerResponse(worker *repository.Worker) gin.H {
	return gin.H{
		"id":              worker.ID,
		"name":            worker.Name,
		"expiration_date": worker.ExpirationDate,
		"secret":          worker.Secret,
	}
}

func respondWorkerError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrWorkerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "worker not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
