package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

const TimeLayout = "2006-01-02T15:04:05Z07:00"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func FormatNullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatTime(*t), Valid: true}
}

func ParseTime(raw string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return t.UTC(), nil
}

func ParseNullableTime(raw sql.NullString) (*time.Time, error) {
	if !raw.Valid {
		return nil, nil
	}
	t, err := ParseTime(raw.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
