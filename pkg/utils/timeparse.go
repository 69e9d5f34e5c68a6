package utils

import (
	"fmt"
	"time"
)

// TimeLayout is the datetime format stored in the database. It sorts
// lexicographically and is accepted by both the mysql and sqlite drivers.
const TimeLayout = "2006-01-02 15:04:05"

// ParseTime accepts RFC3339 or TimeLayout datetimes from clients.
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(TimeLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", value)
}

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
