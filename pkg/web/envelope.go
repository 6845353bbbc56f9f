// Package web provides the response envelopes, request helpers and middleware
// shared by the HTTP transport.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// APIResponse is the uniform success envelope. Status mirrors the HTTP status
// code of the response.
type APIResponse struct {
	Message string    `json:"message"`
	Payload any       `json:"payload,omitempty"`
	Status  int       `json:"status"`
	Instant time.Time `json:"instant"`
}

// Problem is the uniform error envelope, modeled after RFC 7807.
// Errors maps a field or keyword to a message.
type Problem struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Instance  string            `json:"instance"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// RespondSuccess writes the success envelope with the given status, message and payload.
func RespondSuccess(w http.ResponseWriter, logger *slog.Logger, status int, message string, payload any) {
	writeJSON(w, logger, status, APIResponse{
		Message: message,
		Payload: payload,
		Status:  status,
		Instant: time.Now(),
	})
}

// RespondProblem writes the error envelope with the given status and field errors.
func RespondProblem(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, errs map[string]string) {
	writeJSON(w, logger, status, Problem{
		Type:      "about:blank",
		Title:     http.StatusText(status),
		Status:    status,
		Instance:  r.URL.Path,
		Timestamp: time.Now(),
		Errors:    errs,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}
