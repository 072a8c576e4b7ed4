package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bookably/appointment-api/internal/config"
	"github.com/bookably/appointment-api/internal/middleware"
	"github.com/bookably/appointment-api/internal/tokenstore"
)

type memoryStore struct {
	revoked map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{revoked: make(map[string]bool)}
}

func (s *memoryStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

var _ tokenstore.Store = (*memoryStore)(nil)

func newProtectedRouter(cfg *config.Config, tokens tokenstore.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", middleware.AuthMiddleware(cfg, tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(middleware.ContextUserID)})
	})
	return r
}

func mintToken(t *testing.T, secret, jti string, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(1),
		"jti": jti,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	tokens := newMemoryStore()
	r := newProtectedRouter(cfg, tokens)

	valid := mintToken(t, cfg.JWTSecret, "token-1", time.Now().Add(time.Hour))

	scenarios := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + mintToken(t, "other-secret", "token-2", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"expired", "Bearer " + mintToken(t, cfg.JWTSecret, "token-3", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}

	for _, sc := range scenarios {
		w := request(r, sc.header)
		if w.Code != sc.want {
			t.Fatalf("%s: status %d, want %d (body %s)", sc.name, w.Code, sc.want, w.Body.String())
		}
	}
}

func TestAuthMiddlewareRevokedToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	tokens := newMemoryStore()
	r := newProtectedRouter(cfg, tokens)

	signed := mintToken(t, cfg.JWTSecret, "token-1", time.Now().Add(time.Hour))

	w := request(r, "Bearer "+signed)
	if w.Code != http.StatusOK {
		t.Fatalf("before revoke: status %d body %s", w.Code, w.Body.String())
	}

	if err := tokens.Revoke(context.Background(), "token-1", time.Hour); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	w = request(r, "Bearer "+signed)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("after revoke: status %d body %s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"message":"Unauthenticated."}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthMiddlewareWithoutStore(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := newProtectedRouter(cfg, nil)

	signed := mintToken(t, cfg.JWTSecret, "token-1", time.Now().Add(time.Hour))

	w := request(r, "Bearer "+signed)
	if w.Code != http.StatusOK {
		t.Fatalf("nil store: status %d body %s", w.Code, w.Body.String())
	}
}
