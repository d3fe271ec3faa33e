package middlewares

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"ci-request-api/config"
)

const testSecret = "test-secret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/ok", func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		username, _ := c.Get("username")
		c.JSON(200, gin.H{
			"user_id":      uid,
			"username":     username,
			"reached_next": true,
		})
	})
	return r
}

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func doReq(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader_401(t *testing.T) {
	r := newTestRouter()

	w := doReq(r, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_NonBearerHeader_401(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_InvalidSignature_401(t *testing.T) {
	r := newTestRouter()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":1}`))
	bad := header + "." + payload + ".invalidsig"

	w := doReq(r, bad)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_ExpiredToken_401(t *testing.T) {
	r := newTestRouter()

	tok := signHS256(t, testSecret, jwt.MapClaims{
		"user_id":  7,
		"username": "jdoe",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	w := doReq(r, tok)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_MissingUserID_401(t *testing.T) {
	r := newTestRouter()

	tok := signHS256(t, testSecret, jwt.MapClaims{
		"username": "jdoe",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, tok)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_ValidToken_SetsContext(t *testing.T) {
	r := newTestRouter()

	tok := signHS256(t, testSecret, jwt.MapClaims{
		"user_id":  7,
		"username": "jdoe",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, tok)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	for _, want := range []string{`"user_id":7`, `"username":"jdoe"`, `"reached_next":true`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %s, got %s", want, body)
		}
	}
}

func TestAuthMiddleware_StringUserID_Accepted(t *testing.T) {
	r := newTestRouter()

	tok := signHS256(t, testSecret, jwt.MapClaims{
		"user_id":  "42",
		"username": "jdoe",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, tok)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"user_id":42`) {
		t.Fatalf("expected user_id 42, got %s", w.Body.String())
	}
}
