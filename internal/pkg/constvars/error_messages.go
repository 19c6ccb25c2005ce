package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"oneof":            "must be one of [%s]",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"datetime":         "must be a date in YYYY-MM-DD format",
	"entry_category":   "must be one of [learning, exercise, mindfulness]",
	"not_blank":        "must not be blank",
	"uuid4":            "must be a valid UUID",
	"required_without": "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"oneof":            true,
	"gte":              true,
	"lte":              true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEntryNotFound                 = "entry not found"
	ErrClientShareLinkNotFound             = "this encouragement link is no longer available"
	ErrClientInvalidDateRange              = "the requested date range is invalid"
	ErrClientFutureDate                    = "you can't write entries for days that haven't happened yet"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat              = "invalid %s format"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevUserNotExists              = "user not exists in our system"
	ErrDevEntryNotExists             = "entry not exists for the given date and category"
	ErrDevShareTokenNotExists        = "share token does not exist or was revoked"
	ErrDevDateRangeInvalid           = "date range invalid: from must be <= to and span at most %d days"
	ErrDevEntryDateInFuture          = "entry date is after today in the application timezone"
	ErrDevQuoteCandidatesEmpty       = "quote candidate list is empty"
	ErrDevQuoteFileInvalid           = "quote file cannot be parsed"
	ErrDevRequestLimitExceeded       = "request limit exceeded"
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamValidationFailed   = "parameter %s validation failed"
	ErrDevMissingRequestID           = "request id missing from request context"
	ErrDevMissingSessionData         = "session data missing from request context"
	ErrDevServerProcess              = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerParseSessionData     = "failed to parse session data"
	ErrDevUnknownPanic               = "recovered from panic with unknown value"
	ErrDevEventPublishFailed         = "failed to publish event to exchange %s"
	ErrDevEventMarshalFailed         = "failed to marshal event payload"
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevAuthTokenInvalid           = "invalid token"
	ErrDevAuthTokenInvalidOrExpired  = "invalid or expired token"
	ErrDevAuthTokenMissing           = "token missing"
	ErrDevAuthInvalidSession         = "invalid session"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCountDocuments   = "failed when counting documents on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevMinioFailedToCreateObject  = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToPresignObject = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevRedisSetData               = "failed to SET data into redis"
	ErrDevRedisGetData               = "failed to GET data from redis"
	ErrDevRedisGetNoData             = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData            = "failed to DELETE data from redis"
)

const (
	ErrDevRedisIncrementData = "failed to INCR data in redis"
	ErrDevMongoCreateIndex   = "failed to create index on collection %s"
	ErrDevRedisUnlock        = "failed to release lock in redis"
)
