package converter

import "time"

// Millisecond precision ISO-8601 in UTC, e.g. 2026-01-02T15:04:05.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
