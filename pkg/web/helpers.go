package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParseID extracts and validates the numeric ID from the request path.
// Returns the ID and a boolean indicating success.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	pathValueID := r.PathValue("id")
	id, err := strconv.ParseInt(pathValueID, 10, 64)
	if err != nil {
		RespondProblem(w, r, logger, http.StatusBadRequest, map[string]string{
			"id": fmt.Sprintf("Invalid product id: %s", pathValueID),
		})
		return 0, false
	}
	return id, true
}

// DecodeBody decodes the JSON request body into dst. On failure it writes the
// appropriate problem response (413 for oversized bodies, 400 otherwise) and
// returns false.
func DecodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			logger.WarnContext(r.Context(), "Request body too large", "limit", maxBytesErr.Limit)
			RespondProblem(w, r, logger, http.StatusRequestEntityTooLarge, map[string]string{
				"body": "Request body exceeds the maximum limit",
			})
			return false
		}
		logger.WarnContext(r.Context(), "Malformed request body", "error", err)
		RespondProblem(w, r, logger, http.StatusBadRequest, map[string]string{
			"json": "Malformed JSON request",
		})
		return false
	}
	return true
}
