package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	utils "github.com/phillip/topup-intake-go/utils"
)

func TestRequestLoggerOneEntryPerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		status int
		err    error
		level  zapcore.Level
	}{
		{"ok", http.StatusOK, nil, zapcore.InfoLevel},
		{"client error", http.StatusBadRequest, errors.New("bad id"), zapcore.WarnLevel},
		{"server error", http.StatusInternalServerError, errors.New("store down"), zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			r := gin.New()
			r.Use(RequestLogger(zap.New(core)))
			r.GET("/x", func(c *gin.Context) {
				if tt.err != nil {
					_ = c.Error(tt.err)
				}
				c.Status(tt.status)
			})

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.EqualValues(t, tt.status, fields["status"])
			if tt.err != nil {
				assert.Contains(t, fields["errors"], tt.err.Error())
			} else {
				assert.NotContains(t, fields, "errors")
			}
		})
	}
}

func TestAuthFailureLoggedOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/private", AuthMiddleware(utils.NewSessionSigner("secret", time.Hour)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["errors"], "invalid session token")
}
