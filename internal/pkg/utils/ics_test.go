package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteICS(t *testing.T) {
	stamp := time.Date(2024, time.February, 1, 8, 30, 0, 0, time.UTC)
	events := []ICSEvent{
		{
			UID:         EntryICSUID("2024-01-15", "learning", "u1"),
			Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Summary:     "Learning",
			Description: "read; wrote notes, then\nslept",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, "Journal 2024", stamp, events))

	expected := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Daily Journal//Entries//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Journal 2024",
		"BEGIN:VEVENT",
		"UID:2024-01-15-learning-u1@daily-journal",
		"DTSTAMP:20240201T083000Z",
		"DTSTART;VALUE=DATE:20240115",
		"DTEND;VALUE=DATE:20240116",
		"SUMMARY:Learning",
		`DESCRIPTION:read\; wrote notes\, then\nslept`,
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n") + "\r\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteICSEscapesCarriageReturns(t *testing.T) {
	tests := map[string]string{
		"Bare CR": "line1\rBEGIN:VEVENT",
		"CRLF":    "line1\r\nBEGIN:VEVENT",
		"LF":      "line1\nBEGIN:VEVENT",
	}

	for name, description := range tests {
		t.Run(name, func(t *testing.T) {
			events := []ICSEvent{
				{
					UID:         "cr@daily-journal",
					Date:        time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
					Summary:     "Exercise\rSUMMARY:injected",
					Description: description,
				},
			}

			var buf bytes.Buffer
			require.NoError(t, WriteICS(&buf, "Journal", time.Unix(0, 0), events))
			out := buf.String()

			assert.Equal(t, strings.Count(out, "\r\n"), strings.Count(out, "\r"), "every CR must start a CRLF line break")
			assert.Equal(t, 1, strings.Count(out, "\r\nBEGIN:VEVENT\r\n"))
			assert.Contains(t, out, "\r\n"+`DESCRIPTION:line1\nBEGIN:VEVENT`+"\r\n")
			assert.Contains(t, out, "\r\n"+`SUMMARY:Exercise\nSUMMARY:injected`+"\r\n")
		})
	}
}

func TestWriteICSFoldsLongLines(t *testing.T) {
	events := []ICSEvent{
		{
			UID:         "long@daily-journal",
			Date:        time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			Summary:     "Mindfulness",
			Description: strings.Repeat("tenang é ", 30),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, "Journal", time.Unix(0, 0), events))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	var unfolded []string
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 75, "line %q exceeds 75 octets", line)
		if strings.HasPrefix(line, " ") {
			unfolded[len(unfolded)-1] += line[1:]
			continue
		}
		unfolded = append(unfolded, line)
	}

	assert.Contains(t, unfolded, "DESCRIPTION:"+strings.Repeat("tenang é ", 30))
}
