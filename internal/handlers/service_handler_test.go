package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestServiceLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerUser(t, r, "owner@example.com")

	w := do(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name":        "Haircut",
		"description": "Standard",
		"duration":    30,
		"price":       50.00,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service: status %d body %s", w.Code, w.Body.String())
	}
	id := dataID(t, w)

	w = do(t, r, http.MethodGet, path("/api/services/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("show service: status %d", w.Code)
	}
	got := decode(t, w)
	if got["name"] != "Haircut" || got["description"] != "Standard" {
		t.Fatalf("unexpected service body %s", w.Body.String())
	}
	if got["duration"].(float64) != 30 || got["price"].(float64) != 50.00 {
		t.Fatalf("unexpected numeric fields in %s", w.Body.String())
	}

	w = do(t, r, http.MethodPut, path("/api/services/%d", id), token, gin.H{
		"name":        "Haircut Deluxe",
		"description": "With hot towel",
		"duration":    45,
		"price":       80.00,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("replace service: status %d body %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPatch, path("/api/services/%d", id), token, gin.H{
		"price": 75.00,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch service: status %d body %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, path("/api/services/%d", id), token, nil)
	got = decode(t, w)
	if got["name"] != "Haircut Deluxe" || got["price"].(float64) != 75.00 {
		t.Fatalf("patch not applied: %s", w.Body.String())
	}

	w = do(t, r, http.MethodDelete, path("/api/services/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete service: status %d", w.Code)
	}

	// Hard delete: the id is gone for good.
	w = do(t, r, http.MethodGet, path("/api/services/%d", id), token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("show after delete: status %d", w.Code)
	}
}

func TestServiceValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerUser(t, r, "owner@example.com")

	w := do(t, r, http.MethodPost, "/api/services", token, gin.H{
		"description": "No name",
		"duration":    0,
		"price":       -1.0,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid service: status %d body %s", w.Code, w.Body.String())
	}

	errs := fieldErrors(t, w)
	for _, field := range []string{"name", "duration", "price"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error on %s, got %s", field, w.Body.String())
		}
	}

	// Zero price is a legal price.
	w = do(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name":        "Consultation",
		"description": "Free intro",
		"duration":    15,
		"price":       0.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("zero-price service: status %d body %s", w.Code, w.Body.String())
	}
}

func TestServiceNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerUser(t, r, "owner@example.com")

	w := do(t, r, http.MethodGet, "/api/services/999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("show missing: status %d", w.Code)
	}
	if msg := decode(t, w)["message"]; msg != "Service not found" {
		t.Fatalf("unexpected message %v", msg)
	}
}
