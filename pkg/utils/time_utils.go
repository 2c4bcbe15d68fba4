package utils

import "time"

// FormatRFC3339UTC renders epoch seconds; non-positive values render empty.
func FormatRFC3339UTC(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}
