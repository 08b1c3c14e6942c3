package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/technaptix/site-api/internal/api/constants"
	"github.com/technaptix/site-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			if isTooLarge(err) {
				c.String(http.StatusRequestEntityTooLarge, "too large")
				return
			}
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusOK, "ok")
	})
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/pdf", true},
		{"Application/PDF", true},
		{"application/pdf; name=cv.pdf", true},
		{"application/x-pdf", false},
		{"application/octet-stream", false},
		{"", false},
		{"not a media type;;", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, isPDF(tt.contentType))
		})
	}
}

func TestCORS_AllowList(t *testing.T) {
	r := newRouter(CORS("https://a.example, https://b.example"))

	for _, origin := range []string{"https://a.example", "https://b.example"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", origin)
		w := serve(r, req)
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://c.example")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	r := newRouter(CORS("*"))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightEchoesRequestedHeaders(t *testing.T) {
	r := newRouter(CORS(""))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://a.example")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Content-Type, X-Custom", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := newRouter(RateLimitMiddleware(RateLimitConfig{}))
		for i := 0; i < 50; i++ {
			require.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
		}
	})

	t.Run("burst exhausted", func(t *testing.T) {
		r := newRouter(RateLimitMiddleware(RateLimitConfig{RPS: 1, Burst: 2}))

		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, common.MsgRateLimited, w.Body.String())
	})
}

func TestMaxBodySize(t *testing.T) {
	r := newRouter(MaxBodySize(8))

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345678")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 200))
	w = serve(r, req)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, common.MsgInternalServerError, w.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	w := serve(newRouter(SecurityHeaders()), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
