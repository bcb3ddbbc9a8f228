package handler

import (
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

	"brandflow-ai-api/internal/infrastructure/persistence/postgres"
	"brandflow-ai-api/internal/infrastructure/persistence/redis"
)

type healthFixture struct {
	handler *HealthHandler
	pgMock  sqlmock.Sqlmock
	mr      *miniredis.Miniredis
}

func newHealthFixture(t *testing.T) *healthFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, pgMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &healthFixture{
		handler: NewHealthHandler(postgres.NewClientFromDB(db), redis.NewClientFromRedis(rdb)),
		pgMock:  pgMock,
		mr:      mr,
	}
}

func (f *healthFixture) ready(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET("/ready", f.handler.Ready)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	return w
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("依赖全部健康", func(t *testing.T) {
		f := newHealthFixture(t)
		f.pgMock.ExpectQuery("SELECT 1").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		w := f.ready(t)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])

		checks := body["checks"].(map[string]any)
		assert.Equal(t, "ok", checks["postgres"].(map[string]any)["status"])
		assert.Equal(t, "ok", checks["redis"].(map[string]any)["status"])
	})

	t.Run("postgres 不可用时 not_ready", func(t *testing.T) {
		f := newHealthFixture(t)
		f.pgMock.ExpectQuery("SELECT 1").
			WillReturnError(errors.New("connection refused"))

		w := f.ready(t)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "not_ready", body["status"])

		checks := body["checks"].(map[string]any)
		pg := checks["postgres"].(map[string]any)
		assert.Equal(t, "error", pg["status"])
		assert.Contains(t, pg["error"], "connection refused")
		// 另一个依赖的检查结果照常给出
		assert.Equal(t, "ok", checks["redis"].(map[string]any)["status"])
	})

	t.Run("redis 不可用时 not_ready", func(t *testing.T) {
		f := newHealthFixture(t)
		f.pgMock.ExpectQuery("SELECT 1").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		f.mr.Close()

		w := f.ready(t)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "not_ready", body["status"])

		checks := body["checks"].(map[string]any)
		assert.Equal(t, "ok", checks["postgres"].(map[string]any)["status"])
		assert.Equal(t, "error", checks["redis"].(map[string]any)["status"])
	})
}

func TestHealthHandler_HealthAndLive(t *testing.T) {
	f := newHealthFixture(t)
	r := gin.New()
	r.GET("/health", f.handler.Health)
	r.GET("/live", f.handler.Live)

	for _, path := range []string{"/health", "/live"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "ok", decodeBody(t, w)["status"])
	}
}
