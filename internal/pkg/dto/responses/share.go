package responses

import "time"

type ShareLink struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type Encouragement struct {
	EncouragementID string    `json:"encouragement_id"`
	Name            string    `json:"name"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}

type PublicPage struct {
	DisplayName          string          `json:"display_name"`
	AvatarURL            string          `json:"avatar_url,omitempty"`
	CurrentStreak        int             `json:"current_streak"`
	MonthTotals          map[string]int  `json:"month_totals"`
	Quote                *Quote          `json:"quote,omitempty"`
	RecentEncouragements []Encouragement `json:"recent_encouragements"`
}
