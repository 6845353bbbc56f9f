package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParseOptionalInt32 parses an optional integer query parameter. An absent
// parameter yields nil; a present but non-numeric value is rejected with a
// 400 problem response. Range policies (defaults, minimums) belong to the
// service layer.
func ParseOptionalInt32(w http.ResponseWriter, r *http.Request, logger *slog.Logger, key string) (*int32, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, true
	}
	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		RespondProblem(w, r, logger, http.StatusBadRequest, map[string]string{
			key: fmt.Sprintf("Invalid %s number: %s", key, value),
		})
		return nil, false
	}
	parsed := int32(intValue)
	return &parsed, true
}
