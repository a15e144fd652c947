package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbls/standconsole/internal/pkg/jwthelper"
)

const signingKey = "middleware-test-key"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuthenticator(signingKey)

	r := gin.New()
	r.GET("/admin", auth.VerifyJWT(), auth.RequireRole(jwthelper.RoleAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, key, role string) string {
	t.Helper()
	tok, err := jwthelper.GenerateToken([]byte(key), "ops", role, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthenticator(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"admin token", "Bearer " + token(t, signingKey, jwthelper.RoleAdmin), http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"bad signature", "Bearer " + token(t, "other-key", jwthelper.RoleAdmin), http.StatusUnauthorized},
		{"non admin", "Bearer " + token(t, signingKey, "VIEWER"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, tt.header)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRequireRoleWithoutVerify(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", NewAuthenticator(signingKey).RequireRole(jwthelper.RoleAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConfigCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ConfigCORS([]string{"http://localhost:3000"}))
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
