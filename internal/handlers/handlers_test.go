package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/example/entrypass/internal/auth"
	"github.com/example/entrypass/internal/credential"
	"github.com/example/entrypass/internal/faceid"
	"github.com/example/entrypass/internal/repository"
	"github.com/example/entrypass/internal/usecase"
)

const testJWTSecret = "test-secret"

type stubWorkerStore struct{}

func (stubWorkerStore) GetBySecret(ctx context.Context, secret string) (*repository.Worker, error) {
	return nil, repository.ErrWorkerNotFound
}

type stubEntryStore struct {
	entries []*repository.Entry
}

func (s *stubEntryStore) Create(ctx context.Context, requestID string, entry *repository.Entry) error {
	s.entries = append(s.entries, entry)
	return nil
}

type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string) (string, error) { return "", redis.Nil }
func (stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}
func (stubCache) Del(ctx context.Context, key string) error { return nil }

type stubMatcher struct{}

func (stubMatcher) Match(ctx context.Context, references []faceid.Embedding, probe []byte) error {
	return nil
}

type stubAdminStore struct {
	workers map[uint]*repository.Worker
	nextID  uint
}

func newStubAdminStore() *stubAdminStore {
	return &stubAdminStore{workers: make(map[uint]*repository.Worker), nextID: 1}
}

func (s *stubAdminStore) Create(ctx context.Context, worker *repository.Worker) error {
	worker.ID = s.nextID
	s.nextID++
	copied := *worker
	s.workers[worker.ID] = &copied
	return nil
}

func (s *stubAdminStore) GetByID(ctx context.Context, id uint) (*repository.Worker, error) {
	worker, ok := s.workers[id]
	if !ok {
		return nil, repository.ErrWorkerNotFound
	}
	copied := *worker
	return &copied, nil
}

func (s *stubAdminStore) UpdateIdentity(ctx context.Context, id uint, name, secret string) error {
	worker, ok := s.workers[id]
	if !ok {
		return repository.ErrWorkerNotFound
	}
	worker.Name = name
	worker.Secret = secret
	return nil
}

func (s *stubAdminStore) UpdateExpiration(ctx context.Context, id uint, expiration time.Time) error {
	worker, ok := s.workers[id]
	if !ok {
		return repository.ErrWorkerNotFound
	}
	worker.ExpirationDate = expiration
	return nil
}

func (s *stubAdminStore) UpdateEmbedding(ctx context.Context, id uint, embedding []byte) error {
	worker, ok := s.workers[id]
	if !ok {
		return repository.ErrWorkerNotFound
	}
	worker.FaceEmbedding = embedding
	return nil
}

func (s *stubAdminStore) List(ctx context.Context) ([]repository.Worker, error) {
	out := make([]repository.Worker, 0, len(s.workers))
	for _, worker := range s.workers {
		out = append(out, *worker)
	}
	return out, nil
}

func (s *stubAdminStore) Delete(ctx context.Context, id uint) error {
	if _, ok := s.workers[id]; !ok {
		return repository.ErrWorkerNotFound
	}
	delete(s.workers, id)
	return nil
}

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, imageBytes []byte) ([]faceid.Embedding, error) {
	return []faceid.Embedding{make(faceid.Embedding, faceid.EmbeddingDim)}, nil
}

type stubReportStore struct {
	rows []repository.EntryReportRow
}

func (s *stubReportStore) List(ctx context.Context, filter repository.EntryFilter) ([]repository.EntryReportRow, error) {
	return s.rows, nil
}

type testFixture struct {
	router  *gin.Engine
	entries *stubEntryStore
	admin   *stubAdminStore
	reports *stubReportStore
}

func newTestRouter(t *testing.T) *testFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	codec, err := credential.NewCodec(make([]byte, 32), logger)
	if err != nil {
		t.Fatalf("failed to build codec: %v", err)
	}

	entries := &stubEntryStore{}
	admin := newStubAdminStore()
	reports := &stubReportStore{}

	verifyUC := usecase.NewVerificationUseCase(stubWorkerStore{}, entries, stubCache{}, stubMatcher{}, logger)
	workerUC := usecase.NewWorkerUseCase(admin, codec, stubExtractor{}, stubCache{}, logger)
	reportUC := usecase.NewReportUseCase(reports, logger)

	router := gin.New()
	RegisterRoutes(router, verifyUC, workerUC, reportUC, auth.JWTMiddleware(testJWTSecret, ""))

	return &testFixture{router: router, entries: entries, admin: admin, reports: reports}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// multipartBody builds a multipart form with the given fields and one file
// part carrying an image content type.
func multipartBody(t *testing.T, fields map[string]string, fileField string, fileData []byte, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	if fileField != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="upload.png"`, fileField))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func doRequest(fx *testFixture, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	fx.router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthEndpoint(t *testing.T) {
	fx := newTestRouter(t)
	resp := doRequest(fx, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestScanRequiresFile(t *testing.T) {
	fx := newTestRouter(t)
	body, contentType := multipartBody(t, nil, "", nil, "")
	req := httptest.NewRequest(http.MethodPost, "/api/scan", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(fx, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestScanRejectsOversizedUpload(t *testing.T) {
	fx := newTestRouter(t)
	oversized := bytes.Repeat([]byte{0xff}, MaxUploadSize+1)
	body, contentType := multipartBody(t, nil, "file", oversized, "image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/scan", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(fx, req)
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

func TestScanRejectsNonImageUpload(t *testing.T) {
	fx := newTestRouter(t)
	body, contentType := multipartBody(t, nil, "file", []byte("plain text"), "text/plain")
	req := httptest.NewRequest(http.MethodPost, "/api/scan", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(fx, req)
	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", resp.Code)
	}
}

func TestScanUndecodableImageIsUnknown(t *testing.T) {
	fx := newTestRouter(t)
	body, contentType := multipartBody(t, nil, "file", []byte("not really an image"), "image/png")
	req := httptest.NewRequest(http.MethodPost, "/api/scan", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(fx, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var outcome usecase.Outcome
	if err := json.Unmarshal(resp.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("response is not an outcome: %v", err)
	}
	if outcome.Code != usecase.CodeUnknown {
		t.Fatalf("expected code -1, got %d", outcome.Code)
	}
	if len(fx.entries.entries) != 1 {
		t.Fatalf("expected the failure to be audited, got %d entries", len(fx.entries.entries))
	}
}

func TestScanBlankFrameIsNoCodeFound(t *testing.T) {
	fx := newTestRouter(t)
	body, contentType := multipartBody(t, nil, "file", tinyPNG(t), "image/png")
	req := httptest.NewRequest(http.MethodPost, "/api/scan", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(fx, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var outcome usecase.Outcome
	if err := json.Unmarshal(resp.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("response is not an outcome: %v", err)
	}
	if outcome.Code != usecase.CodeNoCodeFound {
		t.Fatalf("expected code 1, got %d", outcome.Code)
	}
	if len(fx.entries.entries) != 0 {
		t.Fatalf("blank frames must not be audited, got %d entries", len(fx.entries.entries))
	}
}

func TestAdminRequiresToken(t *testing.T) {
	fx := newTestRouter(t)

	resp := doRequest(fx, httptest.NewRequest(http.MethodGet, "/api/workers", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/workers", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp = doRequest(fx, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a bad token, got %d", resp.Code)
	}
}

func TestCreateWorkerValidation(t *testing.T) {
	fx := newTestRouter(t)
	body, contentType := multipartBody(t, map[string]string{
		"expiration_date": time.Now().Add(time.Hour).Format(time.RFC3339),
	}, "file", tinyPNG(t), "image/png")
	req := httptest.NewRequest(http.MethodPost, "/api/workers", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))

	resp := doRequest(fx, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing name, got %d", resp.Code)
	}
}

func TestCreateWorker(t *testing.T) {
	fx := newTestRouter(t)
	body, contentType := multipartBody(t, map[string]string{
		"name":            "Maria Wozniak",
		"expiration_date": "2027-01-01T00:00:00Z",
	}, "file", tinyPNG(t), "image/png")
	req := httptest.NewRequest(http.MethodPost, "/api/workers", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))

	resp := doRequest(fx, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID     uint   `json:"id"`
		Name   string `json:"name"`
		Secret string `json:"secret"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created.ID == 0 || created.Name != "Maria Wozniak" || created.Secret == "" {
		t.Fatalf("unexpected worker response: %+v", created)
	}
}

func TestGetUnknownWorker(t *testing.T) {
	fx := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/workers/999", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))

	resp := doRequest(fx, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestEntryPassReturnsPNG(t *testing.T) {
	fx := newTestRouter(t)
	fx.admin.workers[7] = &repository.Worker{ID: 7, Name: "Maria Wozniak", Secret: "printable-secret"}
	fx.admin.nextID = 8

	req := httptest.NewRequest(http.MethodGet, "/api/workers/7/entrypass", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))

	resp := doRequest(fx, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("expected image/png, got %s", got)
	}
}

func TestEntrySummary(t *testing.T) {
	fx := newTestRouter(t)
	fx.reports.rows = []repository.EntryReportRow{
		{Code: usecase.CodeSuccess},
		{Code: usecase.CodeSuccess},
		{Code: usecase.CodeFaceNotMatching},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/entries/summary", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))

	resp := doRequest(fx, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var summary usecase.EntrySummary
	if err := json.Unmarshal(resp.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid summary body: %v", err)
	}
	if summary.Total != 3 || summary.Admitted != 2 || summary.Denied != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestListEntriesRejectsBadDate(t *testing.T) {
	fx := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/entries?date_from=yesterday", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))

	resp := doRequest(fx, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
