package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// The filter checks run before any database work, so a handler with no
// connection behind it is enough to exercise the rejection paths.
func listProducts(t *testing.T, rawQuery string) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewProductHandler(nil, nil, nil)
	r := gin.New()
	r.GET("/products", h.List)

	req := httptest.NewRequest(http.MethodGet, "/products?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body struct {
		ErrorCode string `json:"error_code"`
	}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec.Code, body.ErrorCode
}

func TestProductListRejectsNonNumericCategory(t *testing.T) {
	status, code := listProducts(t, "category=painkillers")

	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if code != "invalid_request" {
		t.Errorf("error_code = %q, want invalid_request", code)
	}
}

func TestProductListRejectsUnknownStatusFilter(t *testing.T) {
	status, code := listProducts(t, "status=archived")

	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if code != "invalid_request" {
		t.Errorf("error_code = %q, want invalid_request", code)
	}
}
