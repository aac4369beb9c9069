package models

import (
	"encoding/json"
	"time"

	"rustour/internal/domain"
	"rustour/internal/utils"
)

// APITime decodes backend timestamps, accepting ISO-8601 with or without
// fractional seconds and the zone-less fallback shape some endpoints emit.
type APITime struct {
	time.Time
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.DecodeError{Err: err}
	}
	parsed, err := utils.ParseAPIDate(raw)
	if err != nil {
		return domain.DecodeError{Value: raw, Err: err}
	}
	t.Time = parsed
	return nil
}

func (t APITime) MarshalJSON() ([]byte, error) {
	return json.Marshal(utils.FormatAPIDate(t.Time))
}
