package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garagat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(utils.UserIDKey))
	})
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
		{"garbage header", map[string]string{"X-Forwarded-For": "unknown"}, "192.0.2.1"},
		{"remote addr", nil, "192.0.2.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			r := gin.New()
			r.GET("/ping", func(c *gin.Context) { got = getClientIP(c) })
			do(r, tc.header)
			if got != tc.want {
				t.Fatalf("getClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newRouter(RateLimitMiddleware(2))
	h := map[string]string{"X-Real-IP": "198.51.100.9"}

	for i := 0; i < 2; i++ {
		if rec := do(r, h); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
	if rec := do(r, h); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: status %d, want 429", rec.Code)
	}
	if rec := do(r, map[string]string{"X-Real-IP": "198.51.100.10"}); rec.Code != http.StatusOK {
		t.Fatalf("other client: status %d", rec.Code)
	}
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	defer utils.SetJWTSecret("")

	r := newRouter(RequestLogger(zap.NewNop()), JWTAuthUserMiddleware())

	if rec := do(r, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d", rec.Code)
	}
	if rec := do(r, map[string]string{"Authorization": "Bearer nope"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d", rec.Code)
	}

	tok, err := utils.GenerateToken("u1", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	rec := do(r, map[string]string{"Authorization": "Bearer " + tok})
	if rec.Code != http.StatusOK || rec.Body.String() != "u1" {
		t.Fatalf("valid token: status %d body %q", rec.Code, rec.Body.String())
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := newRouter(RequestLogger(zap.NewNop()))

	rec := do(r, map[string]string{utils.RequestIDHeader: "req-1"})
	if got := rec.Header().Get(utils.RequestIDHeader); got != "req-1" {
		t.Fatalf("request id = %q, want req-1", got)
	}
	if rec := do(r, nil); rec.Header().Get(utils.RequestIDHeader) == "" {
		t.Fatalf("expected a generated request id")
	}
}
