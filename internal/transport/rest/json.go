package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads exactly one JSON object into dst. Unknown attributes,
// trailing data and oversized bodies are validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", "too large")
		default:
			return domain.NewValidationError("body", err.Error())
		}
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

// pathID parses a numeric path value. Anything that is not a positive
// integer cannot name a stored lawsuit, so it is reported as not found.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewNotFoundError("lawsuit", raw)
	}
	return id, nil
}

// queryFilter returns the query string after checking that it only uses
// the allowed keys, each at most once.
func queryFilter(r *http.Request, allowed ...string) (url.Values, error) {
	q := r.URL.Query()
	var errs []domain.FieldError
	for key, vals := range q {
		switch {
		case !slices.Contains(allowed, key):
			errs = append(errs, domain.FieldError{Field: key, Message: "unknown filter"})
		case len(vals) > 1:
			errs = append(errs, domain.FieldError{Field: key, Message: "given more than once"})
		}
	}
	if len(errs) > 0 {
		slices.SortFunc(errs, func(a, b domain.FieldError) int { return strings.Compare(a.Field, b.Field) })
		return nil, domain.NewValidationErrors(errs)
	}
	return q, nil
}
