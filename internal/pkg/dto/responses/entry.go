package responses

import "time"

type Entry struct {
	EntryID   string    `json:"entry_id"`
	EntryDate string    `json:"entry_date"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CalendarDay struct {
	Date       string          `json:"date"`
	Day        int             `json:"day"`
	Categories map[string]bool `json:"categories"`
	IsToday    bool            `json:"is_today"`
	IsFuture   bool            `json:"is_future"`
}

type Calendar struct {
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	Days          []CalendarDay  `json:"days"`
	Totals        map[string]int `json:"totals"`
	CurrentStreak int            `json:"current_streak"`
}
