package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/gonkalabs/bfhl-go/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testIdentity = config.Identity{
	UserID:     "john_doe_17091999",
	Email:      "john@xyz.com",
	RollNumber: "ABCD123",
	Message:    "hello",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter builds the full middleware stack around a Handler.
func newTestRouter(t *testing.T, maxBody int64) http.Handler {
	t.Helper()
	logger := discardLogger()
	return NewRouter(New(testIdentity, maxBody, logger), "*", logger)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func TestRoot(t *testing.T) {
	w := do(t, newTestRouter(t, 1024), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	got := decode[struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}](t, w)
	assert.Equal(t, "hello", got.Message)
	assert.Contains(t, got.Endpoints, "POST /bfhl")
	assert.Contains(t, got.Endpoints, "GET /bfhl")
}

func TestGetBFHL(t *testing.T) {
	w := do(t, newTestRouter(t, 1024), http.MethodGet, "/bfhl", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"NOTE":"Kindly send data through POST"}`, w.Body.String())
}

func TestPostBFHL_Success(t *testing.T) {
	w := do(t, newTestRouter(t, 1024), http.MethodPost, "/bfhl", `{"data":["a","1","334","4","R","$"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"is_success": true,
		"user_id": "john_doe_17091999",
		"email": "john@xyz.com",
		"roll_number": "ABCD123",
		"odd_numbers": ["1"],
		"even_numbers": ["334", "4"],
		"alphabets": ["A", "R"],
		"special_characters": ["$"],
		"sum": "339",
		"concat_string": "Ra"
	}`, w.Body.String())
}

func TestPostBFHL_EmptyBucketsAreArrays(t *testing.T) {
	w := do(t, newTestRouter(t, 1024), http.MethodPost, "/bfhl", `{"data":["  "]}`)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	for _, k := range []string{"odd_numbers", "even_numbers", "alphabets", "special_characters"} {
		assert.Equal(t, []any{}, got[k], k)
	}
	assert.Equal(t, "0", got["sum"])
	assert.Equal(t, "", got["concat_string"])
}

func TestPostBFHL_InvalidJSON(t *testing.T) {
	w := do(t, newTestRouter(t, 1024), http.MethodPost, "/bfhl", `{"data": [`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"is_success":false,"message":"Invalid JSON format"}`, w.Body.String())
}

func TestPostBFHL_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		path string
	}{
		{"empty body", ``, "data"},
		{"missing data", `{}`, "data"},
		{"null data", `{"data":null}`, "data"},
		{"data not array", `{"data":"abc"}`, "data"},
		{"empty array", `{"data":[]}`, "data"},
		{"non-string element", `{"data":["a",1]}`, "data.1"},
		{"null element", `{"data":[null]}`, "data.0"},
		{"top-level array", `["a"]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestRouter(t, 1024), http.MethodPost, "/bfhl", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			got := decode[ErrorResponse](t, w)
			assert.False(t, got.IsSuccess)
			assert.Equal(t, msgRequestValidation, got.Message)
			require.Len(t, got.Errors, 1)
			assert.Equal(t, tt.path, got.Errors[0].Path)
		})
	}
}

func TestPostBFHL_BodyTooLarge(t *testing.T) {
	body := `{"data":["` + strings.Repeat("a", 200) + `"]}`
	w := do(t, newTestRouter(t, 64), http.MethodPost, "/bfhl", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	got := decode[ErrorResponse](t, w)
	assert.Equal(t, msgTooLarge, got.Message)
}

func TestPostBFHL_ResponseValidationFailure(t *testing.T) {
	logger := discardLogger()
	bad := testIdentity
	bad.Email = "not-an-email"
	router := NewRouter(New(bad, 1024, logger), "*", logger)

	w := do(t, router, http.MethodPost, "/bfhl", `{"data":["1"]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	got := decode[ErrorResponse](t, w)
	assert.Equal(t, msgResponseValidation, got.Message)
	require.NotEmpty(t, got.Errors)
	assert.Equal(t, "email", got.Errors[0].Path)
}

func TestNotFound(t *testing.T) {
	tests := []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodPut, "/bfhl"},
		{http.MethodDelete, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(t, newTestRouter(t, 1024), tt.method, tt.path, "")

			require.Equal(t, http.StatusNotFound, w.Code)
			got := decode[ErrorResponse](t, w)
			assert.False(t, got.IsSuccess)
			assert.Equal(t, msgNotFound, got.Message)
			assert.Equal(t, tt.path, got.RequestedPath)
			assert.Equal(t, tt.method, got.Method)
		})
	}
}
