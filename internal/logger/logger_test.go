package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantLevel zapcore.Level
	}{
		{name: "development", config: Config{Level: "debug", Environment: "development", ServiceName: "vglist"}, wantLevel: zapcore.DebugLevel},
		{name: "production", config: Config{Level: "info", Environment: "production", ServiceName: "vglist"}, wantLevel: zapcore.InfoLevel},
		{name: "invalid level defaults to info", config: Config{Level: "loud", ServiceName: "vglist"}, wantLevel: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			require.NoError(t, err)
			assert.True(t, l.zap.Core().Enabled(tt.wantLevel))
			assert.False(t, l.zap.Core().Enabled(tt.wantLevel-1))
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	l := NewFromZap(zap.New(core))

	l.Info("seed page stored", zap.Int("page", 3))
	l.Error("seed aborted", errors.New("boom"))
	l.Debug("ignored")

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[0].ContextMap()["page"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestGinMiddlewareAssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, observed := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(NewFromZap(zap.New(core))))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "abc", entries[1].ContextMap()["request_id"])
	assert.Equal(t, "/fail", entries[1].ContextMap()["path"])
}
