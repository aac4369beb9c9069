package api

import (
	"encoding/json"
	"errors"
	"strings"

	"rustour/internal/domain"
	"rustour/internal/domain/models"
)

// decodeTours unmarshals a tour list, first rewriting snake_case keys to the
// models' camelCase names, then defaulting absent list fields to empty.
func decodeTours(data []byte) ([]models.Tour, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.DecodeError{Err: err}
	}
	normalized, err := json.Marshal(camelizeKeys(raw))
	if err != nil {
		return nil, domain.DecodeError{Err: err}
	}

	var tours []models.Tour
	if err := json.Unmarshal(normalized, &tours); err != nil {
		var de domain.DecodeError
		if errors.As(err, &de) {
			return nil, de
		}
		return nil, domain.DecodeError{Err: err}
	}
	for i := range tours {
		tours[i].Normalize()
	}
	return tours, nil
}

// camelizeKeys rewrites snake_case object keys to camelCase, recursively.
// Keys without underscores pass through untouched.
func camelizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[snakeToCamel(k)] = camelizeKeys(inner)
		}
		return out
	case []any:
		for i := range val {
			val[i] = camelizeKeys(val[i])
		}
		return val
	default:
		return v
	}
}

func snakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
