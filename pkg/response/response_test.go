package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"exact division", 1, 10, 100, 10},
		{"rounds up", 2, 10, 73, 8},
		{"empty result", 1, 36, 0, 0},
		{"single partial page", 1, 36, 5, 1},
		{"zero limit", 1, 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestPaginatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Paginated(rec, []string{"a", "b"}, 2, NewPagination(1, 36, 2))

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])

	p, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), p["page"])
	assert.Equal(t, float64(1), p["pages"])
}

func TestListKeepsZeroCount(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, []string{}, 0)

	body := decode(t, rec)
	count, present := body["count"]
	assert.True(t, present, "count must be serialized even when zero")
	assert.Equal(t, float64(0), count)
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Product not found")

	assert.Equal(t, 404, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product not found", body["message"])
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, "Validation failed", map[string]string{"name": "The name field is required."})

	assert.Equal(t, 400, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])

	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "The name field is required.", errs["name"])
}
