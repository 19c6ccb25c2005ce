package models

import "time"

// JournalEvent is the payload published to the journal events exchange.
type JournalEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id,omitempty"`
	EntryDate  string    `json:"entry_date,omitempty"`
	Category   string    `json:"category,omitempty"`
	DateKey    string    `json:"date_key,omitempty"`
	QuoteIndex *int      `json:"quote_index,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
