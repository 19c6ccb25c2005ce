package responses

type Quote struct {
	Date    string `json:"date"`
	DateKey string `json:"date_key"`
	Index   int    `json:"index"`
	Text    string `json:"text"`
	Author  string `json:"author,omitempty"`
}
