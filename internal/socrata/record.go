package socrata

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Record is one raw feed row with every scalar value rendered as a string,
// matching how SODA resources are served. Missing fields read as "".
type Record map[string]string

func (r Record) Get(key string) string {
	return r[key]
}

// Float parses a numeric field. Blank or malformed values read as 0; the
// feeds carry no validation guarantees and the loader stores what it gets.
func (r Record) Float(key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r[key]), 64)
	if err != nil {
		return 0
	}
	return v
}

var dateLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date parses a Socrata floating timestamp, discarding the time of day.
// Returns nil when the field is blank or unparseable.
func (r Record) Date(key string) *time.Time {
	raw := strings.TrimSpace(r[key])
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// UnmarshalJSON flattens a feed row. Numbers and booleans become their
// literal strings; nested values (location objects) are not used by any feed
// and are dropped.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rec := make(Record, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			rec[k] = val
		case float64:
			rec[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			rec[k] = strconv.FormatBool(val)
		}
	}
	*r = rec
	return nil
}
