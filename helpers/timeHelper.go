package helpers

import "time"

// DateTimeLayout is the booking time format used on every boundary: forms,
// the console and JSON responses.
const DateTimeLayout = "2006-01-02 15:04"

// ParseDateTime parses "YYYY-MM-DD HH:MM" in the server's local time zone.
func ParseDateTime(value string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, value, time.Local)
}

func FormatDateTime(value time.Time) string {
	return value.Format(DateTimeLayout)
}
