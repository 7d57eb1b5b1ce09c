// Package timex holds the time formats the generator deals in: the MySQL
// DATETIME text used by the meta table, the DD/MM/YYYY submission date the
// form stores in its hidden field, and a JSON-friendly Duration for config
// files.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateTimeLayout is the MySQL DATETIME layout used by date_created values.
const DateTimeLayout = "2006-01-02 15:04:05"

// DayMonthYearLayout is the DD/MM/YYYY layout of the form's submission date.
const DayMonthYearLayout = "02/01/2006"

// FormatDateTime renders t in the MySQL DATETIME form, e.g. "2025-07-21 18:30:00".
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses a MySQL DATETIME text.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: expected YYYY-MM-DD HH:MM:SS: %w", s, err)
	}
	return t, nil
}

// FormatDayMonthYear renders t as the form's DD/MM/YYYY submission date.
func FormatDayMonthYear(t time.Time) string {
	return t.Format(DayMonthYearLayout)
}

// Duration wraps time.Duration so JSON configs can spell intervals either as
// strings like "90s" or as integer nanoseconds.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts both representations.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return errors.New("invalid duration")
	}
	return nil
}

// MarshalJSON writes the string form, e.g. "1m30s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
