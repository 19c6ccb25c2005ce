package requests

type SaveEntry struct {
	Content     string `json:"content" validate:"required,not_blank,max=5000"`
	EntryDate   string `validate:"required,datetime=2006-01-02"`
	Category    string `validate:"required,entry_category"`
	SessionData string
}

type FindEntriesByDate struct {
	EntryDate   string `validate:"required,datetime=2006-01-02"`
	SessionData string
}

type FindEntriesByRange struct {
	From        string `validate:"required,datetime=2006-01-02"`
	To          string `validate:"required,datetime=2006-01-02"`
	SessionData string
}

type DeleteEntry struct {
	EntryDate   string `validate:"required,datetime=2006-01-02"`
	Category    string `validate:"required,entry_category"`
	SessionData string
}

type GetCalendar struct {
	Year        int `validate:"required,gte=1970,lte=9999"`
	Month       int `validate:"required,gte=1,lte=12"`
	SessionData string
}

type ExportEntries struct {
	Year        int `validate:"required,gte=1970,lte=9999"`
	SessionData string
}
