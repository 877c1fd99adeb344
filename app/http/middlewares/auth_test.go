package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arcana/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(), Cors())
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "user=%s", CurrentUserID(c))
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, method, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthJWT(t *testing.T) {
	j := jwt.New("secret", time.Hour, "test")
	token, err := j.IssueToken("user-1")
	require.NoError(t, err)

	r := newEngine(AuthJWT(j))

	w := do(r, http.MethodGet, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user=user-1", w.Body.String())

	w = do(r, http.MethodGet, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "access token required")

	w = do(r, http.MethodGet, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other, err := jwt.New("other-secret", time.Hour, "test").IssueToken("user-1")
	require.NoError(t, err)
	w = do(r, http.MethodGet, "Bearer "+other)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	j := jwt.New("secret", time.Hour, "test")
	token, err := j.IssueToken("user-2")
	require.NoError(t, err)

	r := newEngine(OptionalAuth(j))

	assert.Equal(t, "user=user-2", do(r, http.MethodGet, "Bearer "+token).Body.String())
	assert.Equal(t, "user=", do(r, http.MethodGet, "").Body.String())
	assert.Equal(t, "user=", do(r, http.MethodGet, "Bearer broken").Body.String())
}

func TestCorsPreflight(t *testing.T) {
	r := newEngine()
	w := do(r, http.MethodOptions, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Session-ID")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
