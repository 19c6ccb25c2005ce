package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "JRNL_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppShareLinkUrlFormat  = "%s/encourage/%s"
)

const DateLayout = "2006-01-02"

// Entry categories, in display order.
const (
	CategoryLearning    = "learning"
	CategoryExercise    = "exercise"
	CategoryMindfulness = "mindfulness"
)

var EntryCategories = []string{
	CategoryLearning,
	CategoryExercise,
	CategoryMindfulness,
}

const (
	EntryContentMaxLength         = 5000
	EntryRangeMaxDays             = 366
	EncouragementMessageMaxLength = 280
	EncouragementNameMaxLength    = 60
	PublicRecentEncouragements    = 10
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionEntries        = "entries"
	MongoCollectionEncouragements = "encouragements"
)

const (
	RedisKeySessionPrefix    = "session:"
	RedisKeyShareTokenPrefix = "share_token:"
	RedisKeyQuoteAnnounced   = "quote_announced:"
)

const (
	EventExchangeJournal           = "journal.events"
	EventRoutingEntrySaved         = "entry.saved"
	EventRoutingEntryDeleted       = "entry.deleted"
	EventRoutingEncouragementAdded = "encouragement.received"
	EventRoutingQuoteRotated       = "quote.rotated"
)

const (
	ImageAvatarPrefix = "avatar"
)

const (
	ResourceLimiterGroupEncouragement = "encouragement"
)

var ImageAllowedAvatarFormats = []string{".png", ".jpg", ".jpeg", ".jpe"}

const (
	ICSProductID = "-//Daily Journal//Entries//EN"
	ICSCalscale  = "GREGORIAN"
	ICSUIDDomain = "daily-journal"
)
