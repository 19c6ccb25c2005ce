package utils

import (
	"daily-journal-service/internal/pkg/constvars"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

type ICSEvent struct {
	UID         string
	Date        time.Time
	Summary     string
	Description string
}

// Carriage returns become newlines so the TEXT encoder escapes them.
var icsLineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// WriteICS renders an iCalendar document with one all-day VEVENT per event.
// Lines end with CRLF and are folded at 75 octets.
func WriteICS(w io.Writer, calendarName string, stamp time.Time, events []ICSEvent) error {
	cal := ics.NewCalendar()
	cal.SetProductId(constvars.ICSProductID)
	cal.SetCalscale(constvars.ICSCalscale)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(icsText(calendarName))

	for _, event := range events {
		vevent := cal.AddEvent(event.UID)
		vevent.SetDtStampTime(stamp)
		vevent.SetAllDayStartAt(event.Date)
		vevent.SetAllDayEndAt(event.Date.AddDate(0, 0, 1))
		vevent.SetSummary(icsText(event.Summary))
		if event.Description != "" {
			vevent.SetDescription(icsText(event.Description))
		}
	}

	return cal.SerializeTo(w, ics.WithNewLineWindows)
}

func EntryICSUID(entryDate, category, userID string) string {
	return fmt.Sprintf("%s-%s-%s@%s", entryDate, category, userID, constvars.ICSUIDDomain)
}

func icsText(value string) string {
	return icsLineBreaks.Replace(value)
}
