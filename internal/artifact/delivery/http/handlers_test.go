package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/middleware"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/log"
	"vendor-report-srv/pkg/paginator"
	"vendor-report-srv/pkg/scope"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Persist(ctx context.Context, input artifact.PersistInput) (model.ReportArtifact, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.ReportArtifact), args.Error(1)
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input artifact.ListInput) (artifact.ListOutput, error) {
	args := m.Called(ctx, sc, input)
	return args.Get(0).(artifact.ListOutput), args.Error(1)
}

func (m *mockUseCase) Download(ctx context.Context, sc model.Scope, input artifact.DownloadInput) (artifact.DownloadOutput, error) {
	args := m.Called(ctx, sc, input)
	return args.Get(0).(artifact.DownloadOutput), args.Error(1)
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, input artifact.DeleteInput) error {
	return m.Called(ctx, sc, input).Error(0)
}

func (m *mockUseCase) ReclaimExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockUseCase) StartReclaimer(ctx context.Context) {
	m.Called(ctx)
}

type stubManager struct{}

func (stubManager) Verify(string) (scope.Payload, error) {
	return scope.Payload{Subject: "vendor-1"}, nil
}

var vendor = model.Scope{UserID: "vendor-1"}

func setupRouter(uc artifact.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(log.NewNop(), nil))
	New(log.NewNop(), uc, nil).RegisterRoutes(&r.RouterGroup, middleware.New(log.NewNop(), stubManager{}, nil))
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDownload(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Download", mock.Anything, vendor, artifact.DownloadInput{ArtifactID: "a1"}).
		Return(artifact.DownloadOutput{FileName: "Sales.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("x"), DownloadCount: 3}, nil)

	w := do(setupRouter(uc), http.MethodGet, "/api/v1/reports/a1/download")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Sales.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "3", w.Header().Get("X-Download-Count"))
	assert.Equal(t, "x", w.Body.String())
}

func TestDownload_NotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Download", mock.Anything, vendor, mock.Anything).Return(artifact.DownloadOutput{}, artifact.ErrNotFound)

	w := do(setupRouter(uc), http.MethodGet, "/api/v1/reports/a1/download")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Delete", mock.Anything, vendor, artifact.DeleteInput{ArtifactID: "a1"}).Return(nil)

	w := do(setupRouter(uc), http.MethodDelete, "/api/v1/reports/a1")
	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestList(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("List", mock.Anything, vendor, artifact.ListInput{
		Format:   "pdf",
		Status:   artifact.StatusReady,
		Search:   "jan",
		Paginate: paginator.PaginateQuery{Page: 2, Limit: 10},
	}).Return(artifact.ListOutput{
		Items:     []artifact.ListItem{{JobID: "j1", Status: artifact.StatusReady}},
		Paginator: paginator.New(paginator.PaginateQuery{Page: 2, Limit: 10}, 11, 1),
	}, nil)

	w := do(setupRouter(uc), http.MethodGet, "/api/v1/reports?format=pdf&status=ready&search=jan&page=2&limit=10")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"job_id":"j1"`)
	assert.Contains(t, w.Body.String(), `"total_pages":2`)
}

func TestList_InvalidFilter(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("List", mock.Anything, vendor, mock.Anything).Return(artifact.ListOutput{}, artifact.ErrInvalidInput)

	w := do(setupRouter(uc), http.MethodGet, "/api/v1/reports?status=archived")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
