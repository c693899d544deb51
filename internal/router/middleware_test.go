package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/banarasikart/bsk-api/internal/config"

	"github.com/gin-gonic/gin"
)

func newMiddlewareEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	engine.POST("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return engine
}

func TestRequestIDGenerated(t *testing.T) {
	engine := newMiddlewareEngine(RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("no request id issued")
	}
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	engine := newMiddlewareEngine(RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "caller-supplied-id")
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "caller-supplied-id" {
		t.Fatalf("request id: want caller-supplied-id got %s", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.CORSConfig{
		AllowedOrigins:   []string{"https://shop.example.com"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           600,
	}
	engine := newMiddlewareEngine(CORS(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status: want 204 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Fatalf("allow origin: got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("credentials header missing")
	}
}

func TestCORSUnknownOriginGetsNoHeaders(t *testing.T) {
	cfg := &config.CORSConfig{
		AllowedOrigins: []string{"https://shop.example.com"},
		AllowedMethods: []string{"GET"},
	}
	engine := newMiddlewareEngine(CORS(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	engine.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unknown origin allowed: %q", got)
	}
}

func TestCheckoutRateLimitPassThroughWithoutRedis(t *testing.T) {
	engine := newMiddlewareEngine(CheckoutRateLimit(&config.CheckoutRateLimitConfig{
		WindowSeconds: 60,
		MaxRequests:   1,
	}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d blocked without redis: %d", i, w.Code)
		}
	}
}
