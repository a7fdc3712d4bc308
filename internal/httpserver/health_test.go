package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-report-srv/pkg/log"
	"vendor-report-srv/pkg/minio"
	pkgRedis "vendor-report-srv/pkg/redis"
)

type stubStorage struct {
	minio.MinIO
	err error
}

func (s stubStorage) HealthCheck(ctx context.Context) error { return s.err }

func newHealthServer(t *testing.T, storageErr error) (*HTTPServer, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           log.NewNop(),
		postgresDB:  db,
		redisClient: pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()})),
		minioClient: stubStorage{err: storageErr},
	}
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	return srv, mock, mr
}

func getJSON(srv *HTTPServer, path string) (int, map[string]any) {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestReadyCheck(t *testing.T) {
	t.Run("all backends up", func(t *testing.T) {
		srv, mock, _ := newHealthServer(t, nil)
		mock.ExpectPing()

		code, _ := getJSON(srv, "/ready")
		assert.Equal(t, http.StatusOK, code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		srv, mock, _ := newHealthServer(t, nil)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		code, body := getJSON(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "Database connection failed", body["message"])
	})

	t.Run("redis down", func(t *testing.T) {
		srv, mock, mr := newHealthServer(t, nil)
		mock.ExpectPing()
		mr.Close()

		code, body := getJSON(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "Redis connection failed", body["message"])
	})

	t.Run("storage down", func(t *testing.T) {
		srv, mock, _ := newHealthServer(t, errors.New("bucket missing"))
		mock.ExpectPing()

		code, body := getJSON(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "Object storage connection failed", body["message"])
	})
}

func TestLiveCheck(t *testing.T) {
	srv, _, _ := newHealthServer(t, nil)

	code, _ := getJSON(srv, "/live")
	assert.Equal(t, http.StatusOK, code)
}
