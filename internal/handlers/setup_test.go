package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookably/appointment-api/internal/config"
	dbpkg "github.com/bookably/appointment-api/internal/db"
	"github.com/bookably/appointment-api/internal/routes"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "0"}

	r := gin.New()
	routes.RegisterRoutes(r, db, nil, cfg)

	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", w.Code, w.Body.String())
	}

	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("register: missing token in %s", w.Body.String())
	}
	return token
}

// dataID pulls data.id out of a mutation envelope.
func dataID(t *testing.T, w *httptest.ResponseRecorder) uint {
	t.Helper()

	data, ok := decode(t, w)["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data envelope in %s", w.Body.String())
	}
	id, ok := data["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("missing data.id in %s", w.Body.String())
	}
	return uint(id)
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	errs, ok := decode(t, w)["errors"].(map[string]any)
	if !ok {
		t.Fatalf("missing errors map in %s", w.Body.String())
	}
	return errs
}

func createClient(t *testing.T, r *gin.Engine, token, email string) uint {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/clients", token, gin.H{
		"name":  "Joana Lima",
		"email": email,
		"phone": "11999990000",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: status %d body %s", w.Code, w.Body.String())
	}
	return dataID(t, w)
}

func createProvider(t *testing.T, r *gin.Engine, token, email, document string) uint {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/providers", token, gin.H{
		"name":     "Carlos Mendes",
		"email":    email,
		"phone":    "11888880000",
		"document": document,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create provider: status %d body %s", w.Code, w.Body.String())
	}
	return dataID(t, w)
}

func createService(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name":        name,
		"description": "Standard",
		"duration":    30,
		"price":       50.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service: status %d body %s", w.Code, w.Body.String())
	}
	return dataID(t, w)
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode list %q: %v", w.Body.String(), err)
	}
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
