package service

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate accepts the date forms the front end sends: RFC 3339 timestamps
// or a bare calendar date.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	var err error
	for _, layout := range dateLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, err
}

func clampNonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

func clampNonNegativeInt(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
