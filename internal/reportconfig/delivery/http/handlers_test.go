package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vendor-report-srv/internal/middleware"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/pkg/log"
	"vendor-report-srv/pkg/scope"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Save(ctx context.Context, sc model.Scope, input reportconfig.SaveInput) (model.ReportConfiguration, error) {
	args := m.Called(ctx, sc, input)
	return args.Get(0).(model.ReportConfiguration), args.Error(1)
}

func (m *mockUseCase) Load(ctx context.Context, sc model.Scope, input reportconfig.LoadInput) (model.ReportConfiguration, error) {
	args := m.Called(ctx, sc, input)
	return args.Get(0).(model.ReportConfiguration), args.Error(1)
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input reportconfig.ListInput) (reportconfig.ListOutput, error) {
	args := m.Called(ctx, sc, input)
	return args.Get(0).(reportconfig.ListOutput), args.Error(1)
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, input reportconfig.DeleteInput) error {
	return m.Called(ctx, sc, input).Error(0)
}

func (m *mockUseCase) ListQuickTemplates(ctx context.Context) []model.ReportConfiguration {
	return m.Called(ctx).Get(0).([]model.ReportConfiguration)
}

func (m *mockUseCase) ResolveQuick(ctx context.Context, input reportconfig.QuickInput) (model.ReportConfiguration, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.ReportConfiguration), args.Error(1)
}

func (m *mockUseCase) Validate(cfg *model.ReportConfiguration) error {
	return m.Called(cfg).Error(0)
}

type stubManager struct{}

func (stubManager) Verify(string) (scope.Payload, error) {
	return scope.Payload{Subject: "vendor-1"}, nil
}

func setupRouter(uc reportconfig.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(log.NewNop(), nil))
	New(log.NewNop(), uc, nil).RegisterRoutes(&r.RouterGroup, middleware.New(log.NewNop(), stubManager{}, nil))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSave(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Save", mock.Anything, model.Scope{UserID: "vendor-1"}, mock.MatchedBy(func(in reportconfig.SaveInput) bool {
		c := in.Configuration
		return c.Name == "Jan" && c.GroupBy == model.GranularityWeek && c.Filters.MinAmount != nil &&
			c.Filters.MinAmount.String() == "10.5"
	})).Return(model.ReportConfiguration{ID: "c1", Name: "Jan", Format: "pdf"}, nil)

	body := `{"name":"Jan","date_range":{"start":"2024-01-01","end":"2024-01-31"},"metrics":["revenue"],
		"group_by":"week","filters":{"min_amount":"10.5"}}`
	w := do(setupRouter(uc), http.MethodPost, "/api/v1/reports/configs", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c1"`)
}

func TestSave_Invalid(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(model.ReportConfiguration{}, reportconfig.ErrInvalidRange)

	body := `{"name":"Jan","date_range":{"start":"2024-02-01","end":"2024-01-01"},"metrics":["revenue"]}`
	w := do(setupRouter(uc), http.MethodPost, "/api/v1/reports/configs", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(setupRouter(uc), http.MethodPost, "/api/v1/reports/configs", `{"metrics":["revenue"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoad_NotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Load", mock.Anything, mock.Anything, reportconfig.LoadInput{ID: "c9"}).Return(model.ReportConfiguration{}, reportconfig.ErrNotFound)

	w := do(setupRouter(uc), http.MethodGet, "/api/v1/reports/configs/c9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTemplates(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("ListQuickTemplates", mock.Anything).Return([]model.ReportConfiguration{{Name: "Product Performance"}})

	w := do(setupRouter(uc), http.MethodGet, "/api/v1/reports/templates", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Product Performance")
}
