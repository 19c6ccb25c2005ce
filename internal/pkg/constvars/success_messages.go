package constvars

const (
	ResponseUnknown = "unknown"

	RegisterSuccessMessage = "account registered successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	SaveEntrySuccessMessage     = "entry saved successfully"
	FindEntriesSuccessMessage   = "entries fetched successfully"
	DeleteEntrySuccessMessage   = "entry deleted successfully"
	GetCalendarSuccessMessage   = "calendar fetched successfully"
	GetQuoteSuccessMessage      = "quote fetched successfully"
	CreateShareLinkMessage      = "share link created successfully"
	RevokeShareLinkMessage      = "share link revoked successfully"
	GetPublicPageSuccessMessage = "encouragement page fetched successfully"
	SendEncouragementMessage    = "encouragement sent, thank you"
	ListEncouragementsMessage   = "encouragements fetched successfully"
)
