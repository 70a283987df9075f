package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utils "github.com/phillip/topup-intake-go/utils"
)

func newProtectedRouter(signer *utils.SessionSigner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AuthMiddleware(signer), func(c *gin.Context) {
		claims, ok := Admin(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.Username)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	signer := utils.NewSessionSigner("secret", time.Hour)
	token, _, err := signer.Issue("root")
	require.NoError(t, err)
	r := newProtectedRouter(signer)

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"no credentials", func(*http.Request) {}, http.StatusForbidden},
		{"cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		}, http.StatusOK},
		{"bearer header", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}, http.StatusOK},
		{"wrong scheme", func(req *http.Request) {
			req.Header.Set("Authorization", "Basic "+token)
		}, http.StatusForbidden},
		{"garbage cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
		}, http.StatusForbidden},
		{"stale cookie with valid bearer header", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
			req.Header.Set("Authorization", "Bearer "+token)
		}, http.StatusOK},
		{"stale cookie with garbage bearer header", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
			req.Header.Set("Authorization", "Bearer garbage")
		}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "root", w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), utils.MsgUnauthorized)
			}
		})
	}
}

func TestAuthMiddlewareRejectsOtherSigner(t *testing.T) {
	other := utils.NewSessionSigner("another-secret", time.Hour)
	token, _, err := other.Issue("root")
	require.NoError(t, err)

	r := newProtectedRouter(utils.NewSessionSigner("secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
