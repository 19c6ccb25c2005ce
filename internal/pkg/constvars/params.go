package constvars

const (
	URLParamEntryDate  = "entry_date"
	URLParamCategory   = "category"
	URLParamShareToken = "share_token"
	URLParamQuoteDate  = "quote_date"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamFrom     = "from"
	URLQueryParamTo       = "to"
	URLQueryYear          = "year"
	URLQueryMonth         = "month"
)
