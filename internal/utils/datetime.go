package utils

import "time"

// ConvertDatetime renders a database timestamp (stored in UTC) in the
// client's IANA timezone using the RFC822Z layout. Unknown or empty
// timezones fall back to UTC.
func ConvertDatetime(tzone string, t time.Time) string {
	loc, err := time.LoadLocation(tzone)
	if err != nil {
		loc = time.UTC
	}
	return t.UTC().In(loc).Format(time.RFC822Z)
}
