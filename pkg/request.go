package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// DateLayout is the layout of day parameters, e.g. ?date=2024-01-31
const DateLayout = "2006-01-02"

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSONBody checks the content type and decodes the request body into v.
func DecodeJSONBody(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != ContentType.JSON {
		return ErrInvalidContentType
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// IntVar returns the integer path variable with the given name.
func IntVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return 0, fmt.Errorf("%s empty", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s NaN", name)
	}
	return v, nil
}

// ParseTime accepts both RFC3339 timestamps and plain dates (as UTC midnight).
func ParseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time [%s]: %w", raw, err)
	}
	return t.UTC(), nil
}

// ParseRangeEnd is ParseTime for the inclusive end of a range: a plain date
// covers that whole UTC day, so it becomes the last instant of the day.
func ParseRangeEnd(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time [%s]: %w", raw, err)
	}
	return t.UTC().AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}
