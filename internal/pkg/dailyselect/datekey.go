package dailyselect

import (
	"strconv"
	"time"
)

// DateKey encodes the calendar date of t, in t's own location, as "<year>-<month>-<day>"
// with a zero-based month and no padding (15 January 2024 is "2024-0-15").
func DateKey(t time.Time) string {
	year, month, day := t.Date()
	return strconv.Itoa(year) + "-" + strconv.Itoa(int(month)-1) + "-" + strconv.Itoa(day)
}
