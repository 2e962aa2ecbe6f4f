package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware(origins...))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func corsGet(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Refletir qualquer Origin junto com Allow-Credentials equivale a um
// wildcard com credenciais; sem allowlist o header de credenciais fica
// de fora.
func TestCORSReflectAllWithoutCredentials(t *testing.T) {
	w := corsGet(corsRouter(), "https://qualquer.example")

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://qualquer.example" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("Allow-Credentials não deveria ser emitido sem allowlist, got %q", got)
	}
}

func TestCORSAllowlistSendsCredentials(t *testing.T) {
	r := corsRouter("https://app.agendopro.com")

	w := corsGet(r, "https://app.agendopro.com")
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("origem permitida deveria receber Allow-Credentials, got %q", got)
	}

	w = corsGet(r, "https://intruso.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("origem fora da allowlist não pode ser liberada, got %q", got)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	r := corsRouter()

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://qualquer.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight deveria responder 204, got %d", w.Code)
	}
}
