package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gonkalabs/bfhl-go/internal/config"
)

// Handler implements all HTTP endpoints.
type Handler struct {
	identity     config.Identity
	maxBodyBytes int64
	log          *slog.Logger
}

// New creates a Handler. A nil logger falls back to slog.Default().
func New(id config.Identity, maxBodyBytes int64, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		identity:     id,
		maxBodyBytes: maxBodyBytes,
		log:          logger,
	}
}

// Register mounts routes on the given mux. Anything unmatched falls
// through to the JSON 404.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /bfhl", h.bfhlInfo)
	mux.HandleFunc("POST /bfhl", h.bfhl)
	mux.HandleFunc("/", h.notFound)
}

// ---------- endpoints ----------

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": h.identity.Message,
		"endpoints": map[string]string{
			"POST /bfhl": "Process array data with validation",
			"GET /bfhl":  "Use POST request to send data",
		},
	})
}

func (h *Handler) bfhlInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"NOTE": "Kindly send data through POST",
	})
}

func (h *Handler) bfhl(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.log.Warn("request body too large", "limit", tooLarge.Limit, "requestID", reqID)
			writeErr(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		h.log.Error("read body", "err", err, "requestID", reqID)
		writeErr(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	defer r.Body.Close()

	tokens, err := ParseRequest(body)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrInvalidJSON):
			h.log.Warn("malformed JSON body", "bodyLen", len(body), "requestID", reqID)
			writeErr(w, http.StatusBadRequest, msgInvalidJSON)
		case errors.As(err, &verr):
			h.log.Warn("request validation failed", "err", err, "requestID", reqID)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: msgRequestValidation, Errors: verr.Errors})
		default:
			h.log.Error("parse request", "err", err, "requestID", reqID)
			writeErr(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	resp, err := Process(h.identity, tokens)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.log.Error("response validation failed", "err", err, "requestID", reqID)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgResponseValidation, Errors: verr.Errors})
			return
		}
		h.log.Error("process", "err", err, "requestID", reqID)
		writeErr(w, http.StatusInternalServerError, msgInternal)
		return
	}

	h.log.Debug("classified", "tokens", len(tokens), "sum", resp.Sum, "requestID", reqID)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Message:       msgNotFound,
		RequestedPath: r.URL.Path,
		Method:        r.Method,
	})
}

// ---------- helpers ----------

// writeJSON encodes v before touching w so an encoding failure can still
// become a clean 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{Message: msgInternal})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Message: msg})
}
